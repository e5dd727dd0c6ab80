package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/minaorangina/uno/deck"
	"golang.org/x/exp/rand"
)

// Dealer owns the deck and the pile of one game
// and moves cards between them when the deck runs dry.
type Dealer struct {
	deck       *deck.Deck
	pile       *deck.Pile
	rng        *rand.Rand
	logger     *log.Logger
	reshuffles int
}

func NewDealer(d *deck.Deck, rng *rand.Rand, logger *log.Logger) *Dealer {
	return &Dealer{deck: d, pile: deck.NewPile(), rng: rng, logger: logger}
}

// Deal hands out n cards to each player in turn
func (d *Dealer) Deal(players []*Player, n int) error {
	for _, p := range players {
		cards, err := d.deck.TakeMany(n)
		if err != nil {
			return fmt.Errorf("%w: dealing to %s: %v", ErrEngineFault, p.Name, err)
		}
		p.Hand.AddMany(cards)
	}
	return nil
}

// StartPile turns over the first card of the pile.
// A Plus Four never starts the pile, and a wild starter is given a random color.
func (d *Dealer) StartPile() error {
	if !d.hasStarter() {
		return fmt.Errorf("%w: no card can start the pile", ErrEngineFault)
	}

	for {
		top, err := d.deck.Peek()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEngineFault, err)
		}
		if top.Face != deck.PlusFour {
			break
		}
		d.deck.Shuffle()
	}

	starter, err := d.deck.Take()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineFault, err)
	}
	if starter.IsUndecided() {
		if err := starter.AssignColor(deck.RandomColor(d.rng)); err != nil {
			return err
		}
	}

	d.pile.Add(starter)
	d.logger.Debug("pile started", "card", starter)
	return nil
}

func (d *Dealer) hasStarter() bool {
	for _, c := range d.deck.Cards() {
		if c.Face != deck.PlusFour {
			return true
		}
	}
	return false
}

// Draw takes n cards from the deck.
// If the deck is short, the pile is shuffled back into it first.
func (d *Dealer) Draw(n int) ([]deck.Card, error) {
	cards, err := d.deck.TakeMany(n)
	if err == nil {
		return cards, nil
	}

	var shortfall *deck.NotEnoughCardsError
	if !errors.As(err, &shortfall) {
		return nil, err
	}

	d.Reshuffle()

	cards, err = d.deck.TakeMany(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineFault, err)
	}
	return cards, nil
}

// Reshuffle returns every card on the pile except the starter to the deck.
// The starter becomes the top of the pile again.
func (d *Dealer) Reshuffle() {
	recycled := d.pile.ReduceToTop()
	d.deck.Add(recycled...)
	d.deck.Shuffle()
	d.deck.ReWild()
	d.reshuffles++

	d.logger.Debug("reshuffled", "recycled", len(recycled), "deck", d.deck.Len())
}

// Play puts a card on the pile
func (d *Dealer) Play(card deck.Card) {
	d.pile.Add(card)
}

func (d *Dealer) Top() (deck.Card, error) {
	return d.pile.Top()
}

func (d *Dealer) Deck() *deck.Deck {
	return d.deck
}

func (d *Dealer) Pile() *deck.Pile {
	return d.pile
}

func (d *Dealer) Reshuffles() int {
	return d.reshuffles
}
