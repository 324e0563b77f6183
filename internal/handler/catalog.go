package handler

import (
	"net/http"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
)

// CatalogResponse is the reference data behind the posting and search screens
type CatalogResponse struct {
	Categories    []domain.Category  `json:"categories"`
	Conditions    []domain.Condition `json:"conditions"`
	AgeGroups     []string           `json:"age_groups"`
	ClothingSizes []string           `json:"clothing_sizes"`
	QuickFilters  []string           `json:"quick_filters"`
}

// HandleGetCatalog returns the catalogs in display order
// @Summary Get catalogs
// @Description Categories, conditions, age groups, clothing sizes and search quick filters
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func HandleGetCatalog(c *catalog.Catalog) http.HandlerFunc {
	resp := CatalogResponse{
		Categories:    c.Categories(),
		Conditions:    c.Conditions(),
		AgeGroups:     c.AgeGroups(),
		ClothingSizes: c.ClothingSizes(),
		QuickFilters: []string{
			string(domain.QuickFilterUrgent),
			string(domain.QuickFilterNew),
			string(domain.QuickFilterHighlyRated),
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
