package main

import (
	"context"

	"github.com/osse101/BabyBank_Go/internal/bootstrap"
	"github.com/osse101/BabyBank_Go/internal/config"
)

// CheckCatalogCommand loads a catalog file through the same path the server uses
type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string { return "check-catalog" }
func (c *CheckCatalogCommand) Description() string {
	return "Validate a catalog file ([path], defaults to CATALOG_PATH)"
}

func (c *CheckCatalogCommand) Run(_ context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p := argAt(args, 0); p != "" {
		cfg.CatalogPath = p
	}
	if cfg.CatalogPath == "" {
		PrintInfo("No catalog file configured, checking the built-in catalog")
	}

	policy, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}
	cat := policy.Catalog()
	PrintSuccess("Catalog OK: %d categories, %d conditions, %d age groups (strict=%t)",
		len(cat.Categories()), len(cat.Conditions()), len(cat.AgeGroups()), policy.Strict())
	return nil
}
