package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/repository/memory"
)

type recordedEvents struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recordedEvents) handle(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recordedEvents) all() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

func newTestService(t *testing.T) (Service, *recordedEvents) {
	t.Helper()

	repo := memory.NewListings()
	now := time.Now()
	seed := []domain.Listing{
		{ID: "a", Title: "City stroller", Category: domain.CategoryStrollers, Condition: domain.ConditionGood,
			Status: domain.ListingStatusAvailable, Urgency: domain.UrgencyHigh, DonorRating: 4.9, CreatedAt: now.Add(-time.Hour)},
		{ID: "b", Title: "Jogging stroller", Category: domain.CategoryStrollers, Condition: domain.ConditionFair,
			Status: domain.ListingStatusAvailable, Urgency: domain.UrgencyLow, DonorRating: 3.9, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "c", Title: "Stacking blocks", Category: domain.CategoryToys, Condition: domain.ConditionNew,
			Status: domain.ListingStatusAvailable, Urgency: domain.UrgencyLow, DonorRating: 4.7, CreatedAt: now.Add(-3 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, repo.CreateListing(context.Background(), &seed[i]))
	}

	bus := event.NewMemoryBus()
	rec := &recordedEvents{}
	bus.Subscribe(event.SearchPerformed, rec.handle)

	svc := NewService(Config{SessionLimit: 10, SessionTTL: time.Hour}, strictPolicy(), repo, bus)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc, rec
}

func TestService_SessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, state, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.False(t, state.HasCategory)

	state, err = svc.ToggleCategory(ctx, id, domain.CategoryStrollers)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryStrollers, state.Category)

	reopened, state, err := svc.OpenSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, reopened)
	assert.Equal(t, domain.CategoryStrollers, state.Category, "reopening keeps the selections")

	_, err = svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSearchSessionNotFound)
	_, err = svc.ToggleCategory(ctx, "missing", domain.CategoryToys)
	assert.ErrorIs(t, err, domain.ErrSearchSessionNotFound)
}

func TestService_Results(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, rec := newTestService(t)

	id, _, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)

	results, err := svc.Results(ctx, id, 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	_, err = svc.ToggleCategory(ctx, id, domain.CategoryStrollers)
	require.NoError(t, err)
	results, err = svc.Results(ctx, id, 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = svc.ToggleQuickFilter(ctx, id, domain.QuickFilterUrgent)
	require.NoError(t, err)
	results, err = svc.Results(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)

	// toggling the same category twice drops the category filter
	_, err = svc.ToggleCategory(ctx, id, domain.CategoryStrollers)
	require.NoError(t, err)
	_, err = svc.ToggleQuickFilter(ctx, id, domain.QuickFilterUrgent)
	require.NoError(t, err)
	_, err = svc.SetQuery(ctx, id, "blocks")
	require.NoError(t, err)
	results, err = svc.Results(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c", results[0].ID)

	events := rec.all()
	require.Len(t, events, 4)
	payload, ok := events[3].Payload.(event.SearchPerformedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "blocks", payload.Query)
	assert.Equal(t, 1, payload.ResultCount)
}

func TestService_PopularSearches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	assert.Equal(t, DefaultPopularSearches, svc.PopularSearches(ctx, 0))

	id, _, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	for _, q := range []string{"crib", "Crib", "stroller"} {
		_, err = svc.SetQuery(ctx, id, q)
		require.NoError(t, err)
		_, err = svc.Results(ctx, id, 0)
		require.NoError(t, err)
	}

	top := svc.PopularSearches(ctx, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "crib", top[0], "counts are case-insensitive and keep the first spelling")
	// "stroller" folds to the same key as the seed "Stroller"
	assert.Equal(t, "stroller", top[1])
	assert.Equal(t, DefaultPopularSearches[0], top[2])
}

func TestPopularTracker_EvictsRarest(t *testing.T) {
	t.Parallel()

	p := newPopularTracker(nil)
	p.record("keep")
	p.record("keep")
	for i := 0; i < MaxTrackedQueries+10; i++ {
		p.record(string(rune('a'+i%26)) + time.Duration(i).String())
	}

	assert.LessOrEqual(t, len(p.counts), MaxTrackedQueries)
	assert.Equal(t, "keep", p.top(1)[0])
}

func TestPopularTracker_Decay(t *testing.T) {
	t.Parallel()

	p := newPopularTracker(nil)
	for i := 0; i < 4; i++ {
		p.record("bassinet")
	}
	p.record("onesie")

	assert.Equal(t, 1, p.decay(), "single hits are forgotten")
	assert.Equal(t, []string{"bassinet"}, p.top(5))

	p.decay()
	assert.Equal(t, 0, p.decay())
	assert.Empty(t, p.top(5))
}

func TestService_DecayPopularSearches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, _, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SetQuery(ctx, id, "car seat")
	require.NoError(t, err)
	_, err = svc.Results(ctx, id, 0)
	require.NoError(t, err)
	require.Equal(t, "car seat", svc.PopularSearches(ctx, 1)[0])

	require.NoError(t, svc.DecayPopularSearches(ctx))

	assert.Equal(t, DefaultPopularSearches[:1], svc.PopularSearches(ctx, 1))
}
