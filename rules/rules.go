package rules

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPlusStacking = errors.New("unknown plus stacking mode")

// PlusStacking represents the ways plus cards may be stacked
type PlusStacking int

const (
	// Conservative is the zero value so that an empty Rules is playable.
	// Plus Twos stack on each other and Plus Fours stack on anything,
	// but a Plus Two never lands on a Plus Four.
	Conservative PlusStacking = iota
	// Banned means plus cards never stack.
	Banned
	// Liberal is like Conservative, except a Plus Two may land on a
	// Plus Four of the same color.
	Liberal
)

var plusStackingNames = []string{
	"conservative",
	"banned",
	"liberal",
}

func (p PlusStacking) String() string {
	if p < 0 || int(p) >= len(plusStackingNames) {
		return fmt.Sprintf("PlusStacking(%d)", int(p))
	}
	return plusStackingNames[p]
}

// ParsePlusStacking maps a case-insensitive name to a PlusStacking mode.
// The empty string yields the default.
func ParsePlusStacking(name string) (PlusStacking, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Conservative, nil
	}
	for i, n := range plusStackingNames {
		if n == name {
			return PlusStacking(i), nil
		}
	}
	return Conservative, fmt.Errorf("%w: %q", ErrUnknownPlusStacking, name)
}

func (p PlusStacking) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PlusStacking) UnmarshalText(text []byte) error {
	parsed, err := ParsePlusStacking(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Rules are the house rules a game is played with.
// MustPlay and DrawUntilMatch are carried for completeness
// but the turn loop does not consult them yet.
type Rules struct {
	PlusStacking   PlusStacking `json:"plus_stacking"`
	MustPlay       bool         `json:"must_play"`
	DrawUntilMatch bool         `json:"draw_until_match"`
}

// Default returns conservative stacking with both flags off
func Default() Rules {
	return Rules{PlusStacking: Conservative}
}
