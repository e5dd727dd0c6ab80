package testutils

import (
	"testing"
	"time"

	"github.com/minaorangina/uno/deck"
	"golang.org/x/exp/rand"
)

// Within fails the test if fn takes longer than d.
// A timeout stops the test, so values fn is still writing are never read.
func Within(t testing.TB, d time.Duration, fn func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		fn()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Fatalf("timed out after %s", d)
	case <-done:
	}
}

// Stack builds a deck holding exactly cards, the last one on top
func Stack(rng *rand.Rand, cards ...deck.Card) *deck.Deck {
	return deck.FromCards(rng, cards...)
}

// Numbers returns n number cards of one color, cycling Zero to Nine
func Numbers(color deck.Color, n int) []deck.Card {
	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, deck.NewCard(deck.Face(i%10), color))
	}
	return cards
}
