package catalog

import (
	"fmt"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Policy decides whether a selected identifier may be stored on a form.
// An empty identifier always passes: it clears the selection.
type Policy struct {
	catalog *Catalog
	strict  bool
}

// NewPolicy returns a policy backed by c. With strict disabled every identifier is
// accepted, which mirrors clients that never check membership.
func NewPolicy(c *Catalog, strict bool) Policy {
	return Policy{catalog: c, strict: strict}
}

// Catalog returns the catalog behind the policy
func (p Policy) Catalog() *Catalog {
	return p.catalog
}

// Strict reports whether unknown identifiers are rejected
func (p Policy) Strict() bool {
	return p.strict
}

// CheckCategory validates a category selection
func (p Policy) CheckCategory(id string) error {
	if id == "" || !p.strict || p.catalog.HasCategory(id) {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, id)
}

// CheckCondition validates a condition selection
func (p Policy) CheckCondition(id string) error {
	if id == "" || !p.strict || p.catalog.HasCondition(id) {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownCondition, id)
}

// CheckAgeGroup validates an age band selection
func (p Policy) CheckAgeGroup(label string) error {
	if label == "" || !p.strict || p.catalog.HasAgeGroup(label) {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownAgeGroup, label)
}
