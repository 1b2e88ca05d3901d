package store

import (
	"sync"

	"anotador-app/internal/model"
	"anotador-app/internal/snapshot"
)

// MemoryStore keeps the serialized slot in memory. It is the fallback when no
// database is configured; state then lives only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	payload []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadState() model.MatchState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.payload) == 0 {
		return model.NewMatchState()
	}
	state, err := snapshot.Decode(s.payload)
	if err != nil {
		return model.NewMatchState()
	}
	return state
}

func (s *MemoryStore) SaveState(state model.MatchState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = data
	return nil
}
