package deck

import "fmt"

// Face represents what is printed on a card, regardless of color
type Face int

var faceNames = []string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Skip", "Reverse", "+2", "Wild", "+4",
}

const (
	Zero Face = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	PlusTwo
	Wild
	PlusFour
)

// doubleFaces appear twice per color in a standard deck
var doubleFaces = []Face{One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Skip, Reverse, PlusTwo}

// IsPlus reports whether the face forces the next player to draw
func (f Face) IsPlus() bool {
	return f == PlusTwo || f == PlusFour
}

// IsWild reports whether cards with this face are printed without a color
func (f Face) IsWild() bool {
	return f == Wild || f == PlusFour
}

// IsNumber reports whether the face is one of Zero..Nine
func (f Face) IsNumber() bool {
	return f >= Zero && f <= Nine
}

func (f Face) String() string {
	if f < Zero || f > PlusFour {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}
