package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/uno/protocol"
)

var (
	ErrMissingRunID = errors.New("run has no id")
	ErrRunExists    = errors.New("run already exists")
)

type RunStore interface {
	FindRun(runID string) (protocol.RunResult, bool)
	AddRun(result protocol.RunResult) error
	Len() int
}

// InMemoryRunStore maps run id to the result of the run
type InMemoryRunStore struct {
	mu   sync.RWMutex
	runs map[string]protocol.RunResult
}

// NewInMemoryRunStore constructs an InMemoryRunStore
func NewInMemoryRunStore() *InMemoryRunStore {
	return &InMemoryRunStore{runs: map[string]protocol.RunResult{}}
}

func (s *InMemoryRunStore) FindRun(runID string) (protocol.RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.runs[runID]
	return result, ok
}

func (s *InMemoryRunStore) AddRun(result protocol.RunResult) error {
	if result.ID == "" {
		return ErrMissingRunID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[result.ID]; exists {
		return fmt.Errorf("%w: %s", ErrRunExists, result.ID)
	}
	s.runs[result.ID] = result
	return nil
}

func (s *InMemoryRunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
