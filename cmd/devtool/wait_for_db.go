package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/database"
)

// WaitForDBCommand blocks until postgres accepts connections, for use ahead of migrate in containers
type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string        { return "wait-for-db" }
func (c *WaitForDBCommand) Description() string { return "Wait for the database to accept connections" }

func (c *WaitForDBCommand) Run(ctx context.Context, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	PrintHeader(fmt.Sprintf("Waiting for %s:%s", cfg.DBHost, cfg.DBPort))
	return waitFor(ctx, dbWaitAttempts, dbWaitInterval, func(ctx context.Context) error {
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1, time.Minute, time.Minute)
		if err != nil {
			return err
		}
		pool.Close()
		return nil
	})
}

// waitFor calls try up to attempts times, each bounded by interval, pausing interval between failures
func waitFor(ctx context.Context, attempts int, interval time.Duration, try func(context.Context) error) error {
	var last error
	for i := 1; i <= attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, interval)
		last = try(attemptCtx)
		cancel()
		if last == nil {
			PrintSuccess("Ready after %d attempt(s)", i)
			return nil
		}
		PrintWarning("Not ready (%d/%d): %v", i, attempts, last)

		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("not ready after %d attempts: %w", attempts, last)
}
