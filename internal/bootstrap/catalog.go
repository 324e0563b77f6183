package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/validation"
)

// LoadCatalog reads CATALOG_PATH, validated against the embedded schema, or falls back to the
// built-in catalog. CATALOG_STRICT decides whether selections outside it are rejected.
func LoadCatalog(cfg *config.Config) (catalog.Policy, error) {
	loader, err := catalog.NewLoader(validation.NewSchemaValidator())
	if err != nil {
		return catalog.Policy{}, fmt.Errorf("%s: %w", ErrMsgFailedCatalogLoader, err)
	}

	c, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return catalog.Policy{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogReady,
		"categories", len(c.Categories()),
		"conditions", len(c.Conditions()),
		"age_groups", len(c.AgeGroups()),
		"strict", cfg.CatalogStrict)

	return catalog.NewPolicy(c, cfg.CatalogStrict), nil
}
