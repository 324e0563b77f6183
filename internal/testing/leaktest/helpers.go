// Package leaktest reports goroutines left running by the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout  = 2 * time.Second
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline taken at creation
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines above the baseline
// are still alive once the settle timeout has passed
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.baseline + tolerance
	if current, ok := settle(limit, settleTimeout); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d\n%s",
			g.baseline, current, tolerance, stacks())
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most limit goroutines remain or the timeout passes
func settle(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= limit {
			return current, true
		}
		if time.Now().After(deadline) {
			return current, false
		}
		time.Sleep(settleInterval)
	}
}

func stacks() string {
	buf := make([]byte, 64<<10)
	return string(buf[:runtime.Stack(buf, true)])
}
