package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minaorangina/uno/deck"
	"github.com/minaorangina/uno/rules"
	"golang.org/x/exp/rand"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is a decision policy shared by every game a player takes part in.
// Two players use the same policy exactly when their Strategy values are equal.
type Strategy int

const (
	// Naive plays a uniformly random legal card
	Naive Strategy = iota
	// Greedy gets rid of action cards first and holds on to wilds
	Greedy
)

var strategyNames = []string{
	"naive",
	"greedy",
}

// All returns every built-in strategy
func All() []Strategy {
	return []Strategy{Naive, Greedy}
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Parse looks a strategy up by name, ignoring case
func Parse(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return Naive, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Decision is the outcome of one call to Decide.
// Card is only meaningful when Played is true.
type Decision struct {
	Card        deck.Card
	Played      bool
	HandEmptied bool
}

// Decide picks a card from hand to play on top, removing it from the hand.
// When plusStack is set only cards that continue the plus stack are considered.
// A wild card is always given a concrete color before it is returned.
func (s Strategy) Decide(top deck.Card, hand *deck.Hand, r rules.Rules, plusStack bool, rng *rand.Rand) (Decision, error) {
	var candidates []int
	if plusStack {
		candidates = hand.AllPlusStackable(top, r.PlusStacking)
	} else {
		candidates = hand.AllStackableIndices(top)
	}

	if len(candidates) == 0 {
		return Decision{}, nil
	}

	switch s {
	case Naive:
		return naive(hand, candidates, rng)
	case Greedy:
		return greedy(hand, candidates, rng)
	}

	return Decision{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}

func naive(hand *deck.Hand, candidates []int, rng *rand.Rand) (Decision, error) {
	card := hand.Remove(candidates[rng.Intn(len(candidates))])
	if card.Wild {
		if err := card.AssignColor(deck.RandomColor(rng)); err != nil {
			return Decision{}, err
		}
	}
	return Decision{Card: card, Played: true, HandEmptied: hand.IsEmpty()}, nil
}

func greedy(hand *deck.Hand, candidates []int, rng *rand.Rand) (Decision, error) {
	best := []int{}
	bestScore := 0
	for _, i := range candidates {
		score := preference(hand.Get(i))
		switch {
		case len(best) == 0 || score > bestScore:
			best = []int{i}
			bestScore = score
		case score == bestScore:
			best = append(best, i)
		}
	}

	card := hand.Remove(best[rng.Intn(len(best))])
	if card.Wild {
		if err := card.AssignColor(favouriteColor(hand, rng)); err != nil {
			return Decision{}, err
		}
	}
	return Decision{Card: card, Played: true, HandEmptied: hand.IsEmpty()}, nil
}

// preference ranks cards for Greedy, higher plays first
func preference(c deck.Card) int {
	switch {
	case c.Wild:
		return 0
	case c.Face.IsNumber():
		return 1
	default:
		return 2
	}
}

// favouriteColor is the color held most often, ties broken at random
func favouriteColor(hand *deck.Hand, rng *rand.Rand) deck.Color {
	counts := map[deck.Color]int{}
	for _, c := range hand.Cards() {
		if c.Color.IsConcrete() {
			counts[c.Color]++
		}
	}

	top := []deck.Color{}
	most := 0
	for _, color := range deck.Colors() {
		switch n := counts[color]; {
		case n > most:
			top = []deck.Color{color}
			most = n
		case n == most && n > 0:
			top = append(top, color)
		}
	}

	if len(top) == 0 {
		return deck.RandomColor(rng)
	}
	return top[rng.Intn(len(top))]
}
