// Package session keeps short-lived, per-client state objects in memory.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BabyBank_Go/internal/concurrency"
)

// Closer is implemented by values held in a Store.
// Close is called exactly once when the value leaves the store.
type Closer interface {
	Close()
}

// EvictFunc observes values leaving the store
type EvictFunc[V Closer] func(id string, v V)

// Store is an LRU of sessions with a sliding time-to-live.
// Expired and evicted values are closed before onEvict runs.
type Store[V Closer] struct {
	lru   *expirable.LRU[string, V]
	locks *concurrency.LockManager
}

// NewStore creates a store holding at most size sessions, each idle for at most ttl
func NewStore[V Closer](size int, ttl time.Duration, onEvict EvictFunc[V]) *Store[V] {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	evict := func(id string, v V) {
		v.Close()
		if onEvict != nil {
			onEvict(id, v)
		}
	}

	return &Store[V]{
		lru:   expirable.NewLRU[string, V](size, evict, ttl),
		locks: concurrency.NewLockManager(),
	}
}

// NewID generates a session id
func NewID() string {
	return uuid.NewString()
}

// GetOrCreate returns the session for id, creating it with create when absent.
// An empty id always creates a session under a new id.
func (s *Store[V]) GetOrCreate(id string, create func() V) (string, V, bool) {
	if id == "" {
		id = NewID()
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	if v, ok := s.lru.Get(id); ok {
		s.lru.Add(id, v)
		return id, v, false
	}

	// an expired entry may linger until the cleanup pass; drop it so it gets closed
	s.lru.Remove(id)

	v := create()
	s.lru.Add(id, v)
	return id, v, true
}

// Get returns the session for id and restarts its time-to-live
func (s *Store[V]) Get(id string) (V, bool) {
	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	v, ok := s.lru.Get(id)
	if ok {
		s.lru.Add(id, v)
	}
	return v, ok
}

// Remove closes and drops the session for id
func (s *Store[V]) Remove(id string) bool {
	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()
	return s.lru.Remove(id)
}

// Len returns the number of live sessions
func (s *Store[V]) Len() int {
	return s.lru.Len()
}

// Purge closes and drops every session
func (s *Store[V]) Purge() {
	s.lru.Purge()
}
