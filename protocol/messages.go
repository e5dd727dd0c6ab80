package protocol

import (
	"time"

	"github.com/minaorangina/uno"
)

// PlayerSpec names a player and the strategy it plays with
type PlayerSpec struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

// SimulateRequest describes a batch of games to run
type SimulateRequest struct {
	Players      []PlayerSpec `json:"players"`
	Games        int          `json:"games"`
	Threads      int          `json:"threads,omitempty"`
	PlusStacking string       `json:"plus_stacking,omitempty"`
	Seed         uint64       `json:"seed,omitempty"`
}

// RunResult is a finished simulation
type RunResult struct {
	ID         string          `json:"id"`
	Request    SimulateRequest `json:"request"`
	Scoreboard uno.Summary     `json:"scoreboard"`
	FinishedAt time.Time       `json:"finished_at"`
}

// InboundMessage is a message from a websocket client to the server
type InboundMessage struct {
	Command Cmd              `json:"command"`
	Request *SimulateRequest `json:"request,omitempty"`
}

// OutboundMessage is a message from the server to a websocket client
type OutboundMessage struct {
	Command Cmd        `json:"command"`
	RunID   string     `json:"run_id,omitempty"`
	Result  *RunResult `json:"result,omitempty"`
	Error   string     `json:"error,omitempty"`
}
