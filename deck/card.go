package deck

import (
	"errors"
	"fmt"

	"github.com/minaorangina/uno/rules"
)

var (
	ErrInvalidWildAssignment = errors.New("invalid wild color assignment")
	ErrEmptyPile             = errors.New("pile is empty")
)

// Card represents an Uno card.
// A wild card starts Undecided and may be given a color exactly once.
type Card struct {
	Face  Face
	Color Color
	Wild  bool
}

// NewCard constructs a colored card
func NewCard(face Face, color Color) Card {
	return Card{Face: face, Color: color}
}

// NewWildCard constructs an unassigned wild card with the given face
func NewWildCard(face Face) Card {
	return Card{Face: face, Color: Undecided, Wild: true}
}

// StacksOn reports whether c may legally be played on top of other.
// A wild card always stacks, even once it has been given a color.
func (c Card) StacksOn(other Card) bool {
	return c.Wild || c.Color == other.Color || c.Face == other.Face
}

// PlusStacksOn reports whether c may continue a plus stack topped by other
func (c Card) PlusStacksOn(other Card, policy rules.PlusStacking) bool {
	if !c.Face.IsPlus() {
		return false
	}

	switch policy {
	case rules.Banned:
		return false
	case rules.Liberal:
		return c.Face == PlusFour || c.Color == other.Color
	case rules.Conservative:
		return !(other.Face == PlusFour && c.Face == PlusTwo)
	}

	return false
}

// PlusStackValue is how many cards c adds to a plus stack
func (c Card) PlusStackValue() int {
	switch c.Face {
	case PlusFour:
		return 4
	case PlusTwo:
		return 2
	}
	return 0
}

// AssignColor fixes the color of an undecided wild card.
// Anything else is an engine bug, not bad input.
func (c *Card) AssignColor(color Color) error {
	if !c.Wild {
		return fmt.Errorf("%w: %s is not wild", ErrInvalidWildAssignment, c)
	}
	if c.Color != Undecided {
		return fmt.Errorf("%w: %s already has a color", ErrInvalidWildAssignment, c)
	}
	if !color.IsConcrete() {
		return fmt.Errorf("%w: cannot assign %s", ErrInvalidWildAssignment, color)
	}
	c.Color = color
	return nil
}

// IsUndecided reports whether c is a wild card still waiting for a color
func (c Card) IsUndecided() bool {
	return c.Wild && c.Color == Undecided
}

func (c Card) String() string {
	if !c.Wild {
		return fmt.Sprintf("%s %s", c.Color, c.Face)
	}
	if c.Color == Undecided {
		return c.Face.String()
	}
	return fmt.Sprintf("%s (%s)", c.Face, c.Color)
}
