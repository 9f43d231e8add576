// Package state holds the hub's shared runtime data: named slots that
// platforms read after the integration populates them, and the latest
// snapshot of every polled entity.
// It is concurrency-safe and is read by the HTTP API while the poller writes.
package state

import (
	"sort"
	"sync"
	"time"
)

// EntityState is the last observed state of one entity.
type EntityState struct {
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Available   bool      `json:"available"`
	LastUpdated time.Time `json:"last_updated"`
	Error       string    `json:"error,omitempty"`
}

type Store struct {
	mu       sync.RWMutex
	slots    map[string]any
	entities map[string]EntityState
}

func NewStore() *Store {
	return &Store{
		slots:    make(map[string]any),
		entities: make(map[string]EntityState),
	}
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
}

// Update records the latest snapshot of an entity.
func (s *Store) Update(es EntityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[es.Name] = es
}

// Entities returns all entity snapshots ordered by name.
func (s *Store) Entities() []EntityState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EntityState, 0, len(s.entities))
	for _, es := range s.entities {
		out = append(out, es)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset clears every slot and snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make(map[string]any)
	s.entities = make(map[string]EntityState)
}
