package catalog

import (
	"fmt"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Catalog is the read-only reference data behind the posting and search screens.
// A Catalog is never mutated after construction and is safe for concurrent use.
type Catalog struct {
	categories    []domain.Category
	conditions    []domain.Condition
	ageGroups     []string
	clothingSizes []string

	categoryIndex  map[string]int
	conditionIndex map[string]int
	ageGroupIndex  map[string]int
}

// New builds a catalog, rejecting empty lists and duplicate identifiers
func New(categories []domain.Category, conditions []domain.Condition, ageGroups, clothingSizes []string) (*Catalog, error) {
	c := &Catalog{
		categories:     append([]domain.Category(nil), categories...),
		conditions:     append([]domain.Condition(nil), conditions...),
		ageGroups:      append([]string(nil), ageGroups...),
		clothingSizes:  append([]string(nil), clothingSizes...),
		categoryIndex:  make(map[string]int, len(categories)),
		conditionIndex: make(map[string]int, len(conditions)),
		ageGroupIndex:  make(map[string]int, len(ageGroups)),
	}

	if len(c.categories) == 0 || len(c.conditions) == 0 || len(c.ageGroups) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgEmptyList)
	}

	for i, cat := range c.categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.categoryIndex[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		c.categoryIndex[cat.ID] = i
	}
	for i, cond := range c.conditions {
		if cond.ID == "" {
			return nil, fmt.Errorf("%w: condition %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.conditionIndex[cond.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate condition %q", ErrInvalidCatalog, cond.ID)
		}
		c.conditionIndex[cond.ID] = i
	}
	for i, age := range c.ageGroups {
		if _, dup := c.ageGroupIndex[age]; dup {
			return nil, fmt.Errorf("%w: duplicate age group %q", ErrInvalidCatalog, age)
		}
		c.ageGroupIndex[age] = i
	}

	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultCategories, DefaultConditions, DefaultAgeGroups, DefaultClothingSizes)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Categories returns a copy of the category list in display order
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

// Conditions returns a copy of the condition list in display order
func (c *Catalog) Conditions() []domain.Condition {
	return append([]domain.Condition(nil), c.conditions...)
}

// AgeGroups returns a copy of the age bands, youngest first
func (c *Catalog) AgeGroups() []string {
	return append([]string(nil), c.ageGroups...)
}

// ClothingSizes returns a copy of the suggested clothing sizes
func (c *Catalog) ClothingSizes() []string {
	return append([]string(nil), c.clothingSizes...)
}

// Category looks up a category by id
func (c *Catalog) Category(id string) (domain.Category, bool) {
	i, ok := c.categoryIndex[id]
	if !ok {
		return domain.Category{}, false
	}
	return c.categories[i], true
}

// Condition looks up a condition by id
func (c *Catalog) Condition(id string) (domain.Condition, bool) {
	i, ok := c.conditionIndex[id]
	if !ok {
		return domain.Condition{}, false
	}
	return c.conditions[i], true
}

// HasCategory reports catalog membership of a category id
func (c *Catalog) HasCategory(id string) bool {
	_, ok := c.categoryIndex[id]
	return ok
}

// HasCondition reports catalog membership of a condition id
func (c *Catalog) HasCondition(id string) bool {
	_, ok := c.conditionIndex[id]
	return ok
}

// HasAgeGroup reports catalog membership of an age band label
func (c *Catalog) HasAgeGroup(label string) bool {
	_, ok := c.ageGroupIndex[label]
	return ok
}
