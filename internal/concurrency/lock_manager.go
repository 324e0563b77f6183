package concurrency

import (
	"hash/fnv"
	"sync"
)

// DefaultStripes is the number of mutexes a LockManager spreads keys over
const DefaultStripes = 256

// LockManager hands out per-key locks from a fixed pool of stripes.
// Two keys may share a stripe; a key always maps to the same one, so memory stays
// bounded no matter how many distinct keys are seen.
type LockManager struct {
	stripes []sync.Mutex
}

// NewLockManager creates a LockManager with DefaultStripes stripes
func NewLockManager() *LockManager {
	return NewLockManagerWithStripes(DefaultStripes)
}

// NewLockManagerWithStripes creates a LockManager with n stripes
func NewLockManagerWithStripes(n int) *LockManager {
	if n < 1 {
		n = 1
	}
	return &LockManager{stripes: make([]sync.Mutex, n)}
}

// GetLock returns the mutex guarding key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &lm.stripes[h.Sum32()%uint32(len(lm.stripes))]
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	fn()
}
