package deck

// Pile is the discard stack. Its first card is the starter,
// which survives every reshuffle.
type Pile struct {
	cards []Card
}

func NewPile() *Pile {
	return &Pile{cards: []Card{}}
}

// Add puts a card on top of the pile
func (p *Pile) Add(card Card) {
	p.cards = append(p.cards, card)
}

// Top returns the most recently played card
func (p *Pile) Top() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	return p.cards[len(p.cards)-1], nil
}

// Starter returns the first card ever placed on the pile
func (p *Pile) Starter() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	return p.cards[0], nil
}

// ReduceToTop keeps only the starter and hands back everything played on it
func (p *Pile) ReduceToTop() []Card {
	if len(p.cards) <= 1 {
		return []Card{}
	}

	tail := make([]Card, len(p.cards)-1)
	copy(tail, p.cards[1:])
	p.cards = p.cards[:1]
	return tail
}

func (p *Pile) Len() int {
	return len(p.cards)
}

// Cards returns a copy of the pile, top card last
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}
