// internal/cart/store.go
package cart

import (
	"context"
	"sync"
	"time"
)

// Store keeps per-session cart state between requests. Get on an unknown
// session yields a fresh empty cart; carts are advisory UI state and may
// expire at any time.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	state    *State
	lastSeen time.Time
}

// MemoryStore is the default in-process store. Carts do not survive a
// process restart; use RedisStore for that.
type MemoryStore struct {
	mtx     sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}

	// Drop idle sessions every minute
	go s.cleanup()

	return s
}

func (s *MemoryStore) cleanup() {
	for {
		time.Sleep(time.Minute)
		s.mtx.Lock()
		for id, entry := range s.entries {
			if time.Since(entry.lastSeen) > s.ttl {
				delete(s.entries, id)
			}
		}
		s.mtx.Unlock()
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*State, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return NewState(), nil
	}
	entry.lastSeen = time.Now()

	// Copy out so callers never mutate the stored state outside Save.
	cp := *entry.state
	cp.Items = append([]LineItem(nil), entry.state.Items...)
	return &cp, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, state *State) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cp := *state
	cp.Items = append([]LineItem(nil), state.Items...)
	s.entries[sessionID] = &memoryEntry{state: &cp, lastSeen: time.Now()}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.entries, sessionID)
	return nil
}
