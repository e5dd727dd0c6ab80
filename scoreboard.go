package uno

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/minaorangina/uno/game"
	"github.com/minaorangina/uno/strategy"
)

// Entry is one player's line on the scoreboard
type Entry struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Strategy strategy.Strategy `json:"strategy"`
	Wins     int               `json:"wins"`
}

// Summary is the serialisable form of a ScoreBoard
type Summary struct {
	Games        int           `json:"games"`
	TotalTurns   int           `json:"total_turns"`
	Reshuffles   int           `json:"reshuffles"`
	AverageTurns float64       `json:"average_turns"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Entries      []Entry       `json:"entries"`
}

// ScoreBoard counts wins per player.
// Workers record into it while a run is in progress;
// once Run returns it is only read.
type ScoreBoard struct {
	mu      sync.Mutex
	players []game.Player
	wins    []int

	TotalTurns int
	Reshuffles int
	Elapsed    time.Duration
}

func newScoreBoard(players []game.Player) *ScoreBoard {
	return &ScoreBoard{players: players, wins: make([]int, len(players))}
}

func (s *ScoreBoard) record(winnerID int, stats game.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wins[winnerID]++
	s.TotalTurns += stats.Turns
	s.Reshuffles += stats.Reshuffles
}

// Entries lists every player in roster order
func (s *ScoreBoard) Entries() []Entry {
	entries := make([]Entry, 0, len(s.players))
	for i, p := range s.players {
		entries = append(entries, Entry{ID: p.ID, Name: p.Name, Strategy: p.Strategy, Wins: s.wins[i]})
	}
	return entries
}

// Wins returns the number of games won by the player with the given id
func (s *ScoreBoard) Wins(id int) int {
	if id < 0 || id >= len(s.wins) {
		return 0
	}
	return s.wins[id]
}

// Scores returns the win counts in roster order
func (s *ScoreBoard) Scores() []int {
	out := make([]int, len(s.wins))
	copy(out, s.wins)
	return out
}

// Total is the number of games played
func (s *ScoreBoard) Total() int {
	total := 0
	for _, w := range s.wins {
		total += w
	}
	return total
}

// Leader returns the player with the most wins, the earliest seated on a tie.
// It reports false when no games were played.
func (s *ScoreBoard) Leader() (Entry, bool) {
	if s.Total() == 0 {
		return Entry{}, false
	}

	entries := s.Entries()
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Wins > best.Wins {
			best = e
		}
	}
	return best, true
}

func (s *ScoreBoard) AverageTurns() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(total)
}

func (s *ScoreBoard) Summary() Summary {
	return Summary{
		Games:        s.Total(),
		TotalTurns:   s.TotalTurns,
		Reshuffles:   s.Reshuffles,
		AverageTurns: s.AverageTurns(),
		Elapsed:      s.Elapsed,
		Entries:      s.Entries(),
	}
}

func (s *ScoreBoard) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Summary())
}
