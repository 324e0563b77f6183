// Package memory provides in-process repository implementations used for local
// development, tests and the default "memory" backend mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Listings is an in-memory repository.Listing
type Listings struct {
	mu       sync.RWMutex
	listings map[string]domain.Listing
	now      func() time.Time
}

// NewListings returns an empty listing store
func NewListings() *Listings {
	return &Listings{
		listings: make(map[string]domain.Listing),
		now:      time.Now,
	}
}

// CreateListing stores a copy of listing
func (r *Listings) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if listing == nil || listing.ID == "" {
		return fmt.Errorf("%w: listing id is required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ID]; exists {
		return fmt.Errorf("%w: duplicate listing id %s", domain.ErrInvalidInput, listing.ID)
	}
	r.listings[listing.ID] = cloneListing(*listing)
	return nil
}

// GetListingByID returns a copy of the stored listing
func (r *Listings) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	c := cloneListing(l)
	return &c, nil
}

// UpdateListingStatus changes the availability of a listing
func (r *Listings) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.Status = status
	l.UpdatedAt = r.now()
	r.listings[id] = l
	return nil
}

// SearchListings scans every stored listing
func (r *Listings) SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error) {
	m := newMatcher(criteria, r.now())

	r.mu.RLock()
	results := make([]domain.Listing, 0)
	for _, l := range r.listings {
		if m.matches(l) {
			results = append(results, cloneListing(l))
		}
	}
	r.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if limit := criteria.EffectiveLimit(); len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

type matcher struct {
	criteria domain.SearchCriteria
	query    string
	fold     cases.Caser
	now      time.Time
}

func newMatcher(criteria domain.SearchCriteria, now time.Time) *matcher {
	fold := cases.Fold()
	return &matcher{
		criteria: criteria,
		query:    fold.String(strings.TrimSpace(criteria.Query)),
		fold:     fold,
		now:      now,
	}
}

func (m *matcher) matches(l domain.Listing) bool {
	if l.Status != domain.ListingStatusAvailable {
		return false
	}
	if m.criteria.Category != "" && l.Category != m.criteria.Category {
		return false
	}
	if m.criteria.Has(domain.QuickFilterUrgent) && l.Urgency != domain.UrgencyHigh {
		return false
	}
	if m.criteria.Has(domain.QuickFilterNew) && m.now.Sub(l.CreatedAt) > domain.NewListingWindow {
		return false
	}
	if m.criteria.Has(domain.QuickFilterHighlyRated) && l.DonorRating < domain.HighlyRatedDonorMinimum {
		return false
	}
	if m.query == "" {
		return true
	}
	for _, field := range []string{l.Title, l.Description, l.Brand} {
		if strings.Contains(m.fold.String(field), m.query) {
			return true
		}
	}
	return false
}

func cloneListing(l domain.Listing) domain.Listing {
	l.Images = append([]string{}, l.Images...)
	return l
}
