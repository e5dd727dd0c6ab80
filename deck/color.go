package deck

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Color represents the color of a card.
// Undecided is only valid on a wild card that has not been played yet.
type Color int

var colorNames = []string{"Undecided", "Red", "Yellow", "Green", "Blue"}

const (
	Undecided Color = iota
	Red
	Yellow
	Green
	Blue
)

// Colors returns the four concrete colors
func Colors() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

// RandomColor picks one of the concrete colors uniformly
func RandomColor(rng *rand.Rand) Color {
	colors := Colors()
	return colors[rng.Intn(len(colors))]
}

// IsConcrete reports whether c is one of Red, Yellow, Green or Blue
func (c Color) IsConcrete() bool {
	return c >= Red && c <= Blue
}

func (c Color) String() string {
	if c < Undecided || c > Blue {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}
