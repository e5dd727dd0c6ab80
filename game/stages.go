package game

// Stage represents where a game is in its lifecycle
type Stage int

const (
	settingUp Stage = iota
	normalTurn
	stackedTurn // a plus stack is waiting to be continued or drawn
	finished
)

var stageNames = []string{"setting up", "normal turn", "stacked turn", "finished"}

func (s Stage) String() string {
	if s < settingUp || s > finished {
		return "unknown"
	}
	return stageNames[s]
}
