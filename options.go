package uno

import (
	"time"

	"github.com/charmbracelet/log"
)

const DefaultThreads = 4

// Options control how a GameMaster runs its games
type Options struct {
	// Threads is the number of workers games are split between
	Threads int
	// Verbose logs every turn of every game at debug level
	Verbose bool
	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed uint64
	// TurnPause is slept between turns, for watching verbose games
	TurnPause time.Duration
	Logger    *log.Logger
}

func DefaultOptions() Options {
	return Options{Threads: DefaultThreads}
}
