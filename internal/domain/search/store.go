package search

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store holds live search sessions. A session stands in for the venue
// list page of the web client: created on mount, touched by every
// interaction, discarded on navigation away or after sitting idle.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

type entry struct {
	engine   *Engine
	lastSeen time.Time
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: map[uuid.UUID]*entry{},
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
}

// Run sweeps idle sessions until Close. Meant to run as a goroutine.
func (s *Store) Run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Engine
	for id, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			expired = append(expired, ent.engine)
			delete(s.entries, id)
		}
	}
	count := len(expired)
	s.mu.Unlock()

	for _, engine := range expired {
		engine.Close()
	}
	if count > 0 {
		log.Debug().Int("count", count).Msg("Expired idle search sessions")
	}
}

// Create registers an engine and returns its session ID.
func (s *Store) Create(engine *Engine) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry{engine: engine, lastSeen: time.Now()}
	return id
}

// Get returns the engine for a session and marks it as active.
func (s *Store) Get(id uuid.UUID) (*Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	ent.lastSeen = time.Now()
	return ent.engine, nil
}

// Delete discards a session and closes its engine.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	ent, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	ent.engine.Close()
	return nil
}

// Close stops the sweeper and discards all sessions.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })

	s.mu.Lock()
	engines := make([]*Engine, 0, len(s.entries))
	for _, ent := range s.entries {
		engines = append(engines, ent.engine)
	}
	s.entries = map[uuid.UUID]*entry{}
	s.mu.Unlock()

	for _, engine := range engines {
		engine.Close()
	}
}
