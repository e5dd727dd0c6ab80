package game

// Direction is the way play travels round the table
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) step() int {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// TurnOrder cycles through players in either direction.
// It starts just before the first player, so the first Next returns players[0].
type TurnOrder struct {
	players   []*Player
	index     int
	direction Direction
}

func NewTurnOrder(players []*Player) *TurnOrder {
	return &TurnOrder{players: players, index: -1, direction: Clockwise}
}

// Next moves to the next player and returns them
func (t *TurnOrder) Next() *Player {
	t.advance()
	return t.players[t.index]
}

// Skip moves past the next player without returning them
func (t *TurnOrder) Skip() {
	t.advance()
}

// Reverse flips the direction of play. The current player does not change.
func (t *TurnOrder) Reverse() {
	if t.direction == Clockwise {
		t.direction = CounterClockwise
	} else {
		t.direction = Clockwise
	}
}

func (t *TurnOrder) Direction() Direction {
	return t.direction
}

func (t *TurnOrder) Len() int {
	return len(t.players)
}

func (t *TurnOrder) advance() {
	n := len(t.players)
	t.index = ((t.index+t.direction.step())%n + n) % n
}
