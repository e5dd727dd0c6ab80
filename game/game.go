package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minaorangina/uno/deck"
	"github.com/minaorangina/uno/internal/logging"
	"github.com/minaorangina/uno/rules"
	"golang.org/x/exp/rand"
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 10 players allowed")
	ErrEngineFault    = errors.New("engine fault")
	ErrGameOver       = errors.New("game is already over")
	ErrNotSetUp       = errors.New("game has not been set up")
)

const (
	MinPlayers = 2
	MaxPlayers = 10
	HandSize   = 7
)

// Stats counts what happened during a game
type Stats struct {
	Turns      int
	Draws      int
	Reshuffles int
}

type Game struct {
	players   []*Player
	order     *TurnOrder
	dealer    *Dealer
	rules     rules.Rules
	rng       *rand.Rand
	logger    *log.Logger
	turnPause time.Duration

	stage     Stage
	plusTotal int
	winner    *Player
	stats     Stats
}

type GameOpts struct {
	// Players are cloned, so the caller's hands are never touched
	Players []Player
	Rules   rules.Rules
	// Rand drives every random choice in the game. Nil means time-seeded.
	Rand   *rand.Rand
	Logger *log.Logger
	// Deck replaces the standard 108 card deck
	Deck      *deck.Deck
	TurnPause time.Duration
}

// NewGame constructs a game that is ready to be set up
func NewGame(opts GameOpts) (*Game, error) {
	if len(opts.Players) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	rng := opts.Rand
	if rng == nil {
		rng = deck.NewRand(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	d := opts.Deck
	if d == nil {
		d = deck.New(rng)
	}

	players := make([]*Player, 0, len(opts.Players))
	for _, p := range opts.Players {
		clone := p.Clone()
		players = append(players, &clone)
	}

	return &Game{
		players:   players,
		order:     NewTurnOrder(players),
		dealer:    NewDealer(d, rng, logger),
		rules:     opts.Rules,
		rng:       rng,
		logger:    logger,
		turnPause: opts.TurnPause,
		stage:     settingUp,
	}, nil
}

// Setup shuffles, deals a hand to everyone and starts the pile
func (g *Game) Setup() error {
	if g.stage != settingUp {
		return fmt.Errorf("%w: setup called during %s", ErrEngineFault, g.stage)
	}

	g.dealer.Deck().Shuffle()
	if err := g.dealer.Deal(g.players, HandSize); err != nil {
		return err
	}
	if err := g.dealer.StartPile(); err != nil {
		return err
	}

	g.stage = normalTurn
	return nil
}

// Step plays a single turn.
// It returns the winner once somebody empties their hand.
func (g *Game) Step() (*Player, error) {
	switch g.stage {
	case settingUp:
		return nil, ErrNotSetUp
	case finished:
		return nil, ErrGameOver
	}

	if g.turnPause > 0 && g.stats.Turns > 0 {
		time.Sleep(g.turnPause)
	}

	player := g.order.Next()
	g.stats.Turns++

	var err error
	if g.stage == stackedTurn {
		err = g.stackedTurn(player)
	} else {
		err = g.normalTurn(player)
	}
	if err != nil {
		return nil, err
	}

	return g.winner, nil
}

// Play runs the game to the end and returns the winner
func (g *Game) Play() (Player, error) {
	if g.stage == settingUp {
		if err := g.Setup(); err != nil {
			return Player{}, err
		}
	}

	for {
		winner, err := g.Step()
		if err != nil {
			return Player{}, err
		}
		if winner != nil {
			return *winner, nil
		}
	}
}

func (g *Game) normalTurn(player *Player) error {
	top, err := g.dealer.Top()
	if err != nil {
		return err
	}

	decision, err := player.Strategy.Decide(top, player.Hand, g.rules, false, g.rng)
	if err != nil {
		return err
	}

	if !decision.Played {
		return g.draw(player, 1)
	}

	card := decision.Card
	g.dealer.Play(card)
	g.logger.Debug("played", "player", player.Name, "card", card, "hand", player.Hand.Len())

	if decision.HandEmptied {
		g.win(player)
		return nil
	}

	switch card.Face {
	case deck.Reverse:
		g.order.Reverse()
	case deck.Skip:
		g.order.Skip()
	case deck.PlusTwo, deck.PlusFour:
		g.plusTotal = card.PlusStackValue()
		g.stage = stackedTurn
	}

	return nil
}

func (g *Game) stackedTurn(player *Player) error {
	top, err := g.dealer.Top()
	if err != nil {
		return err
	}

	decision, err := player.Strategy.Decide(top, player.Hand, g.rules, true, g.rng)
	if err != nil {
		return err
	}

	if decision.Played {
		g.dealer.Play(decision.Card)
		g.plusTotal += decision.Card.PlusStackValue()
		g.logger.Debug("stacked", "player", player.Name, "card", decision.Card, "total", g.plusTotal)

		if decision.HandEmptied {
			g.win(player)
		}
		return nil
	}

	total := g.plusTotal
	g.plusTotal = 0
	g.stage = normalTurn
	return g.draw(player, total)
}

func (g *Game) draw(player *Player, n int) error {
	cards, err := g.dealer.Draw(n)
	if err != nil {
		return err
	}
	player.Hand.AddMany(cards)
	g.stats.Draws += n

	g.logger.Debug("drew", "player", player.Name, "cards", n, "hand", player.Hand.Len())
	return nil
}

func (g *Game) win(player *Player) {
	g.winner = player
	g.stage = finished
	g.logger.Debug("won", "player", player.Name, "turns", g.stats.Turns)
}

func (g *Game) Stage() Stage {
	return g.stage
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Stats reports the counters for the game so far
func (g *Game) Stats() Stats {
	s := g.stats
	s.Reshuffles = g.dealer.Reshuffles()
	return s
}

// CardCount is the number of cards across the deck, the pile and every hand
func (g *Game) CardCount() int {
	n := g.dealer.Deck().Len() + g.dealer.Pile().Len()
	for _, p := range g.players {
		n += p.Hand.Len()
	}
	return n
}
