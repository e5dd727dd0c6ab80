package deck

import "github.com/minaorangina/uno/rules"

// Hand is an unordered bag of cards.
// Order is not preserved across removals.
type Hand struct {
	cards []Card
}

// NewHand constructs a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	h.AddMany(cards)
	return h
}

// AllStackableIndices returns the index of every card that stacks on target
func (h *Hand) AllStackableIndices(target Card) []int {
	moves := []int{}
	for i, c := range h.cards {
		if c.StacksOn(target) {
			moves = append(moves, i)
		}
	}
	return moves
}

// AllPlusStackable returns the index of every card that plus stacks on target
func (h *Hand) AllPlusStackable(target Card, policy rules.PlusStacking) []int {
	moves := []int{}
	for i, c := range h.cards {
		if c.PlusStacksOn(target, policy) {
			moves = append(moves, i)
		}
	}
	return moves
}

func (h *Hand) AddCard(card Card) {
	h.cards = append(h.cards, card)
}

func (h *Hand) AddMany(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// Remove takes out the card at index i by swapping in the last card
func (h *Hand) Remove(i int) Card {
	last := len(h.cards) - 1
	card := h.cards[i]
	h.cards[i] = h.cards[last]
	h.cards = h.cards[:last]
	return card
}

// Get returns the card at index i
func (h *Hand) Get(i int) Card {
	return h.cards[i]
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// IsEmpty is the win condition
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}
