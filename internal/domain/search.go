package domain

import "time"

// QuickFilter narrows search results beyond the category selection
type QuickFilter string

const (
	QuickFilterUrgent      QuickFilter = "urgent"
	QuickFilterNew         QuickFilter = "new"
	QuickFilterHighlyRated QuickFilter = "highly-rated"
)

// ValidQuickFilters are the quick filters offered on the search screen
var ValidQuickFilters = map[QuickFilter]bool{
	QuickFilterUrgent:      true,
	QuickFilterNew:         true,
	QuickFilterHighlyRated: true,
}

// Thresholds used by quick filters
const (
	NewListingWindow        = 7 * 24 * time.Hour
	HighlyRatedDonorMinimum = 4.5
	DefaultSearchLimit      = 50
	MaxSearchLimit          = 200
)

// SearchCriteria describes a listing search
type SearchCriteria struct {
	Query        string        `json:"query,omitempty"`
	Category     string        `json:"category,omitempty"`
	QuickFilters []QuickFilter `json:"quick_filters,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

// Has reports whether the quick filter is part of the criteria
func (c SearchCriteria) Has(f QuickFilter) bool {
	for _, q := range c.QuickFilters {
		if q == f {
			return true
		}
	}
	return false
}

// EffectiveLimit clamps the limit into (0, MaxSearchLimit]
func (c SearchCriteria) EffectiveLimit() int {
	switch {
	case c.Limit <= 0:
		return DefaultSearchLimit
	case c.Limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return c.Limit
	}
}
