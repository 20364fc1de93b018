package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Stats is a point-in-time snapshot of store counters.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Store is an in-process TTL cache. A zero TTL keeps entries until deleted.
// Every delete bumps a generation so a load that raced an invalidation is
// returned to its callers but never cached.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	generation uint64
	ttl        time.Duration
	flight     singleflight.Group
	now        func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

// setIfCurrent stores value only when no delete happened since generation
// was read.
func (s *Store) setIfCurrent(key string, value any, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation {
		s.entries[key] = s.newEntry(value)
	}
}

func (s *Store) newEntry(value any) entry {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	return entry{value: value, expiresAt: expiresAt}
}

func (s *Store) currentGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Store) Delete(_ context.Context, keys ...string) {
	s.mu.Lock()
	s.generation++
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	s.generation++
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or runs loader once per key
// across concurrent callers and caches its result. Errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		generation := s.currentGeneration()
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.setIfCurrent(key, loaded, generation)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	size := len(s.entries)
	s.mu.RUnlock()

	return Stats{
		Entries: size,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}
}
