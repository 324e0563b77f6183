package listing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// fakeSubmitter records calls and can hold them until released
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   []domain.ListingDraft
	count   atomic.Int32
	err     error
	gate    chan struct{}
	started chan struct{}
	nextID  int
}

func newFakeSubmitter() *fakeSubmitter {
	return &fakeSubmitter{started: make(chan struct{}, 16)}
}

// blocking makes every call wait for release
func (f *fakeSubmitter) blocking() *fakeSubmitter {
	f.gate = make(chan struct{})
	return f
}

func (f *fakeSubmitter) failing(err error) *fakeSubmitter {
	f.err = err
	return f
}

func (f *fakeSubmitter) release() {
	close(f.gate)
}

func (f *fakeSubmitter) Submit(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	f.count.Add(1)
	f.mu.Lock()
	f.calls = append(f.calls, draft)
	f.nextID++
	id := f.nextID
	f.mu.Unlock()

	f.started <- struct{}{}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.err != nil {
		return nil, f.err
	}
	return domain.NewListingFromDraft(fmt.Sprintf("listing-%d", id), draft, time.Now()), nil
}

func (f *fakeSubmitter) Calls() []domain.ListingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ListingDraft(nil), f.calls...)
}
