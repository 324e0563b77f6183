package main

import (
	"context"
	"fmt"

	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/database"
)

// MigrateCommand applies the embedded migrations (up) or only reports the version (status)
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string        { return "migrate" }
func (c *MigrateCommand) Description() string { return "Apply database migrations (up, status)" }

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	mode := "up"
	if len(args) > 0 {
		mode = args[0]
	}
	switch mode {
	case "up", "status":
	default:
		return fmt.Errorf("unknown subcommand %q: want up or status", mode)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if mode == "up" {
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	version, err := database.MigrationVersion(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema at version %d", version)
	return nil
}
