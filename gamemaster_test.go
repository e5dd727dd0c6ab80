package uno

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minaorangina/uno/internal/logging"
	"github.com/minaorangina/uno/internal/testutils"
	"github.com/minaorangina/uno/rules"
	"github.com/minaorangina/uno/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoNaivePlayers(opts Options) *Builder {
	return NewBuilder().
		AddPlayer("alice", "naive").
		AddPlayer("bob", "naive").
		WithRules(rules.Rules{PlusStacking: rules.Conservative}).
		WithOptions(opts)
}

func TestBuilder(t *testing.T) {
	t.Run("players get sequential ids", func(t *testing.T) {
		gm, err := NewBuilder().
			AddPlayer("alice", "Naive").
			AddPlayer("bob", "greedy").
			AddPlayerWith("carol", strategy.Naive).
			Build()
		require.NoError(t, err)

		players := gm.Players()
		require.Len(t, players, 3)
		for i, p := range players {
			assert.Equal(t, i, p.ID)
		}
		assert.Equal(t, strategy.Greedy, players[1].Strategy)
		assert.Equal(t, "carol", players[2].Name)
		assert.Equal(t, rules.Default(), gm.Rules())
		assert.Equal(t, DefaultThreads, gm.Options().Threads)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := NewBuilder().
			AddPlayer("alice", "naive").
			AddPlayer("bob", "psychic").
			AddPlayer("carol", "clairvoyant").
			Build()
		assert.True(t, errors.Is(err, strategy.ErrUnknownStrategy))
		assert.Contains(t, err.Error(), "bob")
	})

	t.Run("player count", func(t *testing.T) {
		_, err := NewBuilder().AddPlayer("alice", "naive").Build()
		assert.True(t, errors.Is(err, ErrTooFewPlayers))

		b := NewBuilder()
		for i := 0; i < 11; i++ {
			b.AddPlayer(fmt.Sprintf("p%d", i), "naive")
		}
		_, err = b.Build()
		assert.True(t, errors.Is(err, ErrTooManyPlayers))
	})

	t.Run("threads", func(t *testing.T) {
		_, err := twoNaivePlayers(Options{Threads: 0}).Build()
		assert.True(t, errors.Is(err, ErrInvalidThreads))
	})
}

func TestSpan(t *testing.T) {
	cases := []struct{ n, t int }{
		{100, 4}, {100, 3}, {7, 8}, {0, 4}, {1, 1}, {1000, 7},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d games over %d workers", c.n, c.t), func(t *testing.T) {
			next, total := 0, 0
			for i := 0; i < c.t; i++ {
				first, last := span(i, c.n, c.t)
				assert.Equal(t, next, first)
				assert.LessOrEqual(t, first, last)
				next = last
				total += last - first
			}
			assert.Equal(t, c.n, next)
			assert.Equal(t, c.n, total)
		})
	}
}

func TestGameMasterRun(t *testing.T) {
	t.Run("two naive players, one hundred games", func(t *testing.T) {
		gm, err := twoNaivePlayers(Options{Threads: 4, Seed: 7}).Build()
		require.NoError(t, err)

		var board *ScoreBoard
		testutils.Within(t, 30*time.Second, func() {
			board, err = gm.Run(100)
		})
		require.NoError(t, err)
		require.NotNil(t, board)

		assert.Equal(t, 100, board.Total())
		assert.Equal(t, 100, board.Wins(0)+board.Wins(1))
		assert.Len(t, board.Scores(), 2)
		assert.Positive(t, board.TotalTurns)
	})

	t.Run("more workers than games", func(t *testing.T) {
		gm, err := twoNaivePlayers(Options{Threads: 8, Seed: 1}).Build()
		require.NoError(t, err)

		board, err := gm.Run(3)
		require.NoError(t, err)
		assert.Equal(t, 3, board.Total())
	})

	t.Run("never starts more workers than games", func(t *testing.T) {
		var buf bytes.Buffer
		gm, err := twoNaivePlayers(Options{Threads: 2000000000, Seed: 4, Logger: logging.New(&buf, "uno", "info")}).Build()
		require.NoError(t, err)

		board, err := gm.Run(3)
		require.NoError(t, err)
		assert.Equal(t, 3, board.Total())
		assert.Contains(t, buf.String(), "workers=3")
	})

	t.Run("a failing match stops the run", func(t *testing.T) {
		t.Log("Given a player whose strategy cannot decide")
		gm, err := NewBuilder().
			AddPlayerWith("broken", strategy.Strategy(99)).
			AddPlayer("bob", "naive").
			WithOptions(Options{Threads: 3, Seed: 5}).
			Build()
		require.NoError(t, err)

		t.Log("When the games are run")
		board, err := gm.Run(30)

		t.Log("Then the first error is returned and there is no scoreboard")
		assert.True(t, errors.Is(err, strategy.ErrUnknownStrategy))
		assert.Contains(t, err.Error(), "match ")
		assert.Nil(t, board)
	})

	t.Run("no games", func(t *testing.T) {
		gm, err := twoNaivePlayers(DefaultOptions()).Build()
		require.NoError(t, err)

		board, err := gm.Run(0)
		require.NoError(t, err)
		assert.Equal(t, 0, board.Total())
		_, ok := board.Leader()
		assert.False(t, ok)
	})

	t.Run("negative games", func(t *testing.T) {
		gm, err := twoNaivePlayers(DefaultOptions()).Build()
		require.NoError(t, err)

		_, err = gm.Run(-1)
		assert.True(t, errors.Is(err, ErrInvalidGames))
	})

	t.Run("a game master only runs once", func(t *testing.T) {
		gm, err := twoNaivePlayers(DefaultOptions()).Build()
		require.NoError(t, err)

		_, err = gm.Run(1)
		require.NoError(t, err)
		_, err = gm.Run(1)
		assert.True(t, errors.Is(err, ErrAlreadyRun))
	})

	t.Run("seeded runs agree whatever the thread count", func(t *testing.T) {
		scores := [][]int{}
		for _, threads := range []int{1, 3, 5} {
			gm, err := NewBuilder().
				AddPlayer("alice", "naive").
				AddPlayer("bob", "greedy").
				AddPlayer("carol", "naive").
				WithOptions(Options{Threads: threads, Seed: 2024}).
				Build()
			require.NoError(t, err)

			board, err := gm.Run(60)
			require.NoError(t, err)
			scores = append(scores, board.Scores())
		}

		assert.Equal(t, scores[0], scores[1])
		assert.Equal(t, scores[0], scores[2])
	})

	t.Run("logs the run", func(t *testing.T) {
		var buf bytes.Buffer
		gm, err := twoNaivePlayers(Options{Threads: 1, Seed: 3, Verbose: true, Logger: logging.New(&buf, "uno", "debug")}).Build()
		require.NoError(t, err)

		_, err = gm.Run(2)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "starting run")
		assert.Contains(t, out, "run finished")
		assert.Contains(t, out, "played")
		assert.Contains(t, out, "match=")
	})
}

func TestMatchSeed(t *testing.T) {
	seen := map[uint64]bool{}
	for k := 0; k < 1000; k++ {
		seed := matchSeed(2024, k)
		assert.Equal(t, seed, matchSeed(2024, k))
		assert.Equal(t, uint64(1), seed&1, "seeds are never zero")
		assert.False(t, seen[seed], "match %d repeats a seed", k)
		seen[seed] = true
	}

	assert.NotEqual(t, matchSeed(1, 0), matchSeed(2, 0))
}
