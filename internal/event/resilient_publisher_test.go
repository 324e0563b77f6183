package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// flakyBus fails the first failures[type] publishes of each event type, then delivers
type flakyBus struct {
	mu        sync.Mutex
	failures  map[Type]int
	attempts  map[Type]int
	delivered []Event
	stamps    []time.Time
}

func newFlakyBus(failures map[Type]int) *flakyBus {
	return &flakyBus{failures: failures, attempts: map[Type]int{}}
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempts[evt.Type]++
	b.stamps = append(b.stamps, time.Now())
	if b.attempts[evt.Type] <= b.failures[evt.Type] {
		return errors.New("broker unavailable")
	}
	b.delivered = append(b.delivered, evt)
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) attemptsFor(typ Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts[typ]
}

func (b *flakyBus) deliveredCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.delivered)
}

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dead-letter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	return rp, path
}

func shutdown(t *testing.T, rp *ResilientPublisher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))
}

func deadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	return entries
}

func postedEvent(id string) Event {
	return NewListingPostedEvent("d-"+id, &domain.Listing{ID: id, Category: domain.CategoryToys}, "test")
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		base    time.Duration
		attempt int
		want    time.Duration
	}{
		{2 * time.Second, 0, 2 * time.Second},
		{2 * time.Second, 1, 2 * time.Second},
		{2 * time.Second, 2, 4 * time.Second},
		{2 * time.Second, 5, 32 * time.Second},
		{2 * time.Second, 12, MaxRetryDelay},
		{time.Minute, 40, MaxRetryDelay},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(tt.base, tt.attempt), "base=%s attempt=%d", tt.base, tt.attempt)
	}
}

func TestResilientPublisher_FirstTrySucceeds(t *testing.T) {
	bus := newFlakyBus(nil)
	rp, path := newPublisher(t, bus, 3, 10*time.Millisecond)

	require.NoError(t, rp.Publish(context.Background(), postedEvent("l-1")))
	shutdown(t, rp)

	assert.Equal(t, 1, bus.attemptsFor(ListingPosted))
	assert.Equal(t, 1, bus.deliveredCount())
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_RecoversAfterTransientFailures(t *testing.T) {
	bus := newFlakyBus(map[Type]int{ListingPosted: 2})
	rp, path := newPublisher(t, bus, 5, 5*time.Millisecond)

	rp.PublishWithRetry(context.Background(), postedEvent("l-2"))

	assert.Eventually(t, func() bool { return bus.deliveredCount() == 1 }, time.Second, 5*time.Millisecond)
	shutdown(t, rp)

	assert.Equal(t, 3, bus.attemptsFor(ListingPosted))
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	bus := newFlakyBus(map[Type]int{ListingSubmissionFailed: 100})
	rp, path := newPublisher(t, bus, 3, 2*time.Millisecond)

	evt := NewListingSubmissionFailedEvent("d-9", domain.ListingDraft{Category: domain.CategoryClothing}, errors.New("502"), "test")
	rp.PublishWithRetry(context.Background(), evt)

	// one direct publish plus maxRetries queued attempts
	assert.Eventually(t, func() bool { return bus.attemptsFor(ListingSubmissionFailed) == 4 }, time.Second, 2*time.Millisecond)
	shutdown(t, rp)

	entries := deadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, ListingSubmissionFailed, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "broker unavailable", entries[0].LastError)

	payload, err := DecodePayload[ListingSubmissionFailedPayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "d-9", payload.DraftID)
	assert.Equal(t, domain.CategoryClothing, payload.Category)
}

func TestResilientPublisher_BackoffGrows(t *testing.T) {
	bus := newFlakyBus(map[Type]int{SearchPerformed: 3})
	rp, _ := newPublisher(t, bus, 5, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), NewSearchPerformedEvent("s-1", domain.SearchCriteria{}, 0))
	assert.Eventually(t, func() bool { return bus.deliveredCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	shutdown(t, rp)

	bus.mu.Lock()
	stamps := append([]time.Time(nil), bus.stamps...)
	bus.mu.Unlock()
	require.Len(t, stamps, 4)

	first := stamps[2].Sub(stamps[1])
	second := stamps[3].Sub(stamps[2])
	assert.GreaterOrEqual(t, first, 35*time.Millisecond)
	assert.Greater(t, second, first, "each retry waits longer than the last")
}

func TestResilientPublisher_ShutdownFlushesPendingRetries(t *testing.T) {
	// failures outlast the single retry the slow backoff allows before shutdown
	bus := newFlakyBus(map[Type]int{ListingPosted: 1, AccountRegistered: 10})
	rp, path := newPublisher(t, bus, 5, time.Hour)

	rp.PublishWithRetry(context.Background(), postedEvent("l-3"))
	rp.PublishWithRetry(context.Background(), NewAccountRegisteredEvent(&domain.Account{ID: "a-1", Role: domain.RoleDonor}))

	start := time.Now()
	shutdown(t, rp)
	assert.Less(t, time.Since(start), time.Second, "shutdown does not wait out the backoff")

	assert.Equal(t, 1, bus.deliveredCount(), "the listing event succeeds on its flush attempt")
	entries := deadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, AccountRegistered, entries[0].Event.Type)
}

func TestResilientPublisher_FullQueueSpillsToDeadLetter(t *testing.T) {
	bus := newFlakyBus(map[Type]int{ListingPosted: RetryQueueBufferSize * 10})
	rp, path := newPublisher(t, bus, 1, time.Hour)

	total := RetryQueueBufferSize + 25
	for i := 0; i < total; i++ {
		rp.PublishWithRetry(context.Background(), postedEvent("bulk"))
	}
	shutdown(t, rp)

	// the worker holds at most one entry while the buffer is full
	entries := deadLetters(t, path)
	assert.Equal(t, total, len(entries), "every undeliverable event ends up dead-lettered exactly once")
}

func TestResilientPublisher_ConcurrentCallers(t *testing.T) {
	bus := newFlakyBus(map[Type]int{SearchPerformed: 10})
	// more retries than total failures, so nothing can be dead-lettered
	rp, path := newPublisher(t, bus, 11, time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rp.Publish(context.Background(), NewSearchPerformedEvent("s", domain.SearchCriteria{Query: "bib"}, 1))
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return bus.deliveredCount() == 50 }, 2*time.Second, 5*time.Millisecond)
	shutdown(t, rp)
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ShutdownIsIdempotent(t *testing.T) {
	rp, _ := newPublisher(t, newFlakyBus(nil), 1, time.Millisecond)
	shutdown(t, rp)

	shutdown(t, rp)
}

func TestReadDeadLetters_ReportsBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl.jsonl")
	w, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(postedEvent("l-4"), 2, nil))
	require.NoError(t, w.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteString("\n{not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := ReadDeadLetters(f)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].LastError)
}
