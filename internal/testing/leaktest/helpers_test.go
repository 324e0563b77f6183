package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures failures instead of failing the enclosing test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func TestCheckNoGoroutineLeak_FinishedWorkers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForStragglers(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// exits shortly after Check starts polling
	go func() { time.Sleep(50 * time.Millisecond) }()

	checker.Check(0)
}

func TestGoroutineChecker_ToleranceAndLeak(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)
	go func() { <-stop }()

	checker.Check(1)
	assert.False(t, rec.failed, "one blocked goroutine is within tolerance")

	if testing.Short() {
		t.Skip("leak detection waits for the full settle timeout")
	}
	checker.Check(0)
	assert.True(t, rec.failed, "a goroutine blocked past the timeout is reported")
}
