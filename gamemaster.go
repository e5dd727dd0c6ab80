package uno

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minaorangina/uno/deck"
	"github.com/minaorangina/uno/game"
	"github.com/minaorangina/uno/internal/logging"
	"github.com/minaorangina/uno/rules"
	"github.com/minaorangina/uno/strategy"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTooFewPlayers  = game.ErrTooFewPlayers
	ErrTooManyPlayers = game.ErrTooManyPlayers
	ErrInvalidThreads = errors.New("at least one thread is required")
	ErrInvalidGames   = errors.New("number of games cannot be negative")
	ErrAlreadyRun     = errors.New("game master has already run")
)

// Builder collects the roster and settings for a GameMaster.
// The first error it meets is kept and returned by Build.
type Builder struct {
	players []game.Player
	rules   rules.Rules
	opts    Options
	err     error
}

func NewBuilder() *Builder {
	return &Builder{rules: rules.Default(), opts: DefaultOptions()}
}

// AddPlayer seats a player using the named strategy.
// Players are numbered from 0 in the order they are added.
func (b *Builder) AddPlayer(name, strategyID string) *Builder {
	s, err := strategy.Parse(strategyID)
	if err != nil {
		b.fail(fmt.Errorf("player %q: %w", name, err))
		return b
	}
	return b.AddPlayerWith(name, s)
}

// AddPlayerWith seats a player with an already parsed strategy
func (b *Builder) AddPlayerWith(name string, s strategy.Strategy) *Builder {
	b.players = append(b.players, game.NewPlayer(len(b.players), name, s))
	return b
}

func (b *Builder) WithRules(r rules.Rules) *Builder {
	b.rules = r
	return b
}

func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build checks the configuration and returns a GameMaster ready to run
func (b *Builder) Build() (*GameMaster, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.players) < game.MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(b.players) > game.MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if b.opts.Threads < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreads, b.opts.Threads)
	}

	logger := b.opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	roster := make([]game.Player, len(b.players))
	copy(roster, b.players)

	return &GameMaster{
		roster: roster,
		rules:  b.rules,
		opts:   b.opts,
		logger: logger,
	}, nil
}

// GameMaster plays many independent games between the same roster.
// It can only be run once.
type GameMaster struct {
	roster []game.Player
	rules  rules.Rules
	opts   Options
	logger *log.Logger

	mu  sync.Mutex
	ran bool
}

func (gm *GameMaster) Players() []game.Player {
	out := make([]game.Player, len(gm.roster))
	copy(out, gm.roster)
	return out
}

func (gm *GameMaster) Rules() rules.Rules {
	return gm.rules
}

func (gm *GameMaster) Options() Options {
	return gm.opts
}

// Run plays n games split between the configured number of workers
// and blocks until every game is over.
// If any game fails, the remaining workers stop after their current game
// and the first error is returned.
func (gm *GameMaster) Run(n int) (*ScoreBoard, error) {
	gm.mu.Lock()
	if gm.ran {
		gm.mu.Unlock()
		return nil, ErrAlreadyRun
	}
	gm.ran = true
	gm.mu.Unlock()

	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGames, n)
	}

	// a worker with no games to play is never started
	workers := min(gm.opts.Threads, n)
	seed := gm.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board := newScoreBoard(gm.roster)

	gm.logger.Info("starting run", "games", n, "workers", workers, "players", len(gm.roster))
	start := time.Now()

	group, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		first, last := span(i, n, workers)
		group.Go(func() error {
			return gm.work(ctx, board, seed, first, last)
		})
	}

	if err := group.Wait(); err != nil {
		gm.logger.Error("run failed", "err", err)
		return nil, err
	}

	board.Elapsed = time.Since(start)
	if leader, ok := board.Leader(); ok {
		gm.logger.Info("run finished", "games", board.Total(), "elapsed", board.Elapsed, "leader", leader.Name)
	}
	return board, nil
}

// work plays matches first..last-1, checking for cancellation between matches
func (gm *GameMaster) work(ctx context.Context, board *ScoreBoard, seed uint64, first, last int) error {
	for k := first; k < last; k++ {
		if ctx.Err() != nil {
			return nil
		}

		opts := game.GameOpts{
			Players:   gm.roster,
			Rules:     gm.rules,
			Rand:      deck.NewRand(matchSeed(seed, k)),
			TurnPause: gm.opts.TurnPause,
		}
		if gm.opts.Verbose {
			opts.Logger = gm.logger.With("match", k)
		}

		g, err := game.NewGame(opts)
		if err != nil {
			return err
		}
		winner, err := g.Play()
		if err != nil {
			return fmt.Errorf("match %d: %w", k, err)
		}

		board.record(winner.ID, g.Stats())
	}
	return nil
}

// span is the half-open range of matches handled by worker i of t
func span(i, n, t int) (int, int) {
	return i * n / t, (i + 1) * n / t
}

// matchSeed derives the seed of match k from the run seed with a splitmix64 step,
// so a seeded run gives the same results for any number of workers
func matchSeed(seed uint64, k int) uint64 {
	z := seed + uint64(k+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	// a zero seed would mean time-seeded
	return (z ^ (z >> 31)) | 1
}
