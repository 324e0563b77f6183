package search

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
)

// quickFilterOrder is the display order of the quick filter chips
var quickFilterOrder = []domain.QuickFilter{
	domain.QuickFilterHighlyRated,
	domain.QuickFilterNew,
	domain.QuickFilterUrgent,
}

// State is a snapshot of a search screen's selections
type State struct {
	Category     string               `json:"category,omitempty"`
	HasCategory  bool                 `json:"has_category"`
	Query        string               `json:"query,omitempty"`
	QuickFilters []domain.QuickFilter `json:"quick_filters"`
}

// Filter holds the selections of one search screen.
// At most one category is selected; selecting the active category again clears it.
type Filter struct {
	mu           sync.Mutex
	policy       catalog.Policy
	category     string
	query        string
	quickFilters map[domain.QuickFilter]bool
}

// NewFilter returns a filter with nothing selected
func NewFilter(policy catalog.Policy) *Filter {
	return &Filter{
		policy:       policy,
		quickFilters: make(map[domain.QuickFilter]bool),
	}
}

// ToggleCategory selects id, or clears the selection when id is already selected
func (f *Filter) ToggleCategory(id string) error {
	if err := f.policy.CheckCategory(id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == id {
		f.category = ""
		return nil
	}
	f.category = id
	return nil
}

// CurrentSelection returns the selected category, if any
func (f *Filter) CurrentSelection() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category, f.category != ""
}

// SetQuery replaces the free-text query
func (f *Filter) SetQuery(q string) error {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return fmt.Errorf("%w: query longer than %d characters", domain.ErrInvalidInput, MaxQueryLength)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = q
	return nil
}

// ToggleQuickFilter switches a quick filter on or off and reports its new state
func (f *Filter) ToggleQuickFilter(qf domain.QuickFilter) (bool, error) {
	if !domain.ValidQuickFilters[qf] {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownQuickFilter, qf)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.quickFilters[qf] {
		delete(f.quickFilters, qf)
		return false, nil
	}
	f.quickFilters[qf] = true
	return true, nil
}

// State returns the current selections
func (f *Filter) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State{
		Category:     f.category,
		HasCategory:  f.category != "",
		Query:        f.query,
		QuickFilters: f.activeQuickFiltersLocked(),
	}
}

// Criteria converts the selections into repository search criteria
func (f *Filter) Criteria(limit int) domain.SearchCriteria {
	f.mu.Lock()
	defer f.mu.Unlock()

	return domain.SearchCriteria{
		Query:        f.query,
		Category:     f.category,
		QuickFilters: f.activeQuickFiltersLocked(),
		Limit:        limit,
	}
}

// Close satisfies session.Closer; a filter holds no resources
func (f *Filter) Close() {}

func (f *Filter) activeQuickFiltersLocked() []domain.QuickFilter {
	active := make([]domain.QuickFilter, 0, len(f.quickFilters))
	for _, qf := range quickFilterOrder {
		if f.quickFilters[qf] {
			active = append(active, qf)
		}
	}
	return active
}
