package deck

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// StandardSize is the number of cards in a full Uno deck
const StandardSize = 108

// NotEnoughCardsError is returned when a draw asks for more cards than remain
type NotEnoughCardsError struct {
	Available int
	Requested int
}

func (e *NotEnoughCardsError) Error() string {
	return fmt.Sprintf("requested %d cards, deck only has %d", e.Requested, e.Available)
}

// NewRand returns a random source seeded with seed,
// or with the current time if seed is zero
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Deck represents the stack cards are drawn from.
// The last element of cards is the top of the deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard, unshuffled deck of 108 cards
func New(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, StandardSize)
	for _, color := range Colors() {
		cards = append(cards, NewCard(Zero, color))
		for _, face := range doubleFaces {
			cards = append(cards, NewCard(face, color), NewCard(face, color))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewWildCard(Wild), NewWildCard(PlusFour))
	}

	return FromCards(rng, cards...)
}

// NewShuffled creates a standard deck and shuffles it
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// FromCards creates a deck holding exactly the given cards, the last one on top.
// A nil rng is replaced by a time-seeded one.
func FromCards(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		rng = NewRand(0)
	}
	stack := make([]Card, len(cards))
	copy(stack, cards)
	return &Deck{cards: stack, rng: rng}
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Take removes the top card and returns it
func (d *Deck) Take() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, &NotEnoughCardsError{Available: 0, Requested: 1}
	}
	top := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return top, nil
}

// TakeMany removes the top n cards in one go.
// If fewer than n remain, the deck is left untouched.
func (d *Deck) TakeMany(n int) ([]Card, error) {
	numCardsInDeck := len(d.cards)
	if n < 0 || n > numCardsInDeck {
		return nil, &NotEnoughCardsError{Available: numCardsInDeck, Requested: n}
	}

	startingIndex := numCardsInDeck - n
	taken := make([]Card, n)
	copy(taken, d.cards[startingIndex:])
	d.cards = d.cards[:startingIndex]
	return taken, nil
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, &NotEnoughCardsError{Available: 0, Requested: 1}
	}
	return d.cards[n-1], nil
}

// Add puts cards on top of the deck
func (d *Deck) Add(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// ReWild clears the color chosen for every wild card in the deck
func (d *Deck) ReWild() {
	for i := range d.cards {
		if d.cards[i].Wild {
			d.cards[i].Color = Undecided
		}
	}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the deck, top card last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
