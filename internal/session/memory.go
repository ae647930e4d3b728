package session

import (
	"context"
	"sync"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// MemoryStore is the default single-process backend: a mutex-guarded map
// with TTL eviction. Expired entries are dropped lazily on access and
// swept by a janitor so abandoned uploads do not pile up.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	stop    chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	sess    Session
	expires time.Time
}

// NewMemoryStore builds a memory store and starts its janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Create(_ context.Context, ds *model.Dataset, opts model.ViewOptions) (*Session, error) {
	sess := Session{
		ID:        newID(),
		Dataset:   ds,
		Options:   opts,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.entries[sess.ID] = memoryEntry{sess: sess, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return &sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) SetOptions(_ context.Context, id string, opts model.ViewOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.entries, id)
		return ErrNotFound
	}
	e.sess.Options = opts
	e.expires = time.Now().Add(s.ttl) // touching a session keeps it alive
	s.entries[id] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expires) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
