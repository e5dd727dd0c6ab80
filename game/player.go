package game

import (
	"fmt"

	"github.com/minaorangina/uno/deck"
	"github.com/minaorangina/uno/strategy"
)

// Player is a seat at the table.
// ID is the player's position in the roster it was built from.
type Player struct {
	ID       int
	Name     string
	Hand     *deck.Hand
	Strategy strategy.Strategy
}

func NewPlayer(id int, name string, s strategy.Strategy) Player {
	return Player{ID: id, Name: name, Hand: deck.NewHand(), Strategy: s}
}

// Clone copies the player with an empty hand, ready for a new game
func (p Player) Clone() Player {
	return NewPlayer(p.ID, p.Name, p.Strategy)
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d (%s, %s)", p.ID, p.Name, p.Strategy)
}
