// Command devtool bundles the operational chores around a deployment: schema
// migrations, waiting on dependencies, probing a running instance and checking
// the files it reads.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := NewRegistry(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
		&CheckCatalogCommand{},
		&DeadLettersCommand{},
	)

	err := registry.Dispatch(ctx, os.Args[1:])
	if err == nil {
		return
	}
	if !errors.Is(err, errUsage) {
		PrintError("%v", err)
	}
	stop()
	os.Exit(1)
}
