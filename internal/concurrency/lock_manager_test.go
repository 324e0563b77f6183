package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameLock(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("draft-1"), lm.GetLock("draft-1"))
}

func TestLockManager_SingleStripe(t *testing.T) {
	lm := NewLockManagerWithStripes(0)
	assert.Same(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lm.WithLock("shared", func() { counter++ })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
