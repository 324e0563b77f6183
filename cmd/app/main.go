// Command app runs the BabyBank HTTP service.
//
// @title BabyBank API
// @version 1.0
// @description Posting, search and onboarding flows for the BabyBank donation marketplace.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BabyBank_Go/internal/auth"
	"github.com/osse101/BabyBank_Go/internal/bootstrap"
	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/internal/scheduler"
	"github.com/osse101/BabyBank_Go/internal/search"
	"github.com/osse101/BabyBank_Go/internal/server"
	"github.com/osse101/BabyBank_Go/internal/worker"
)

const (
	shutdownTimeout = 30 * time.Second
	jobPopularDecay = "popular-search-decay"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	warnings, err := config.CheckEnv()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx := context.Background()

	policy, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	images, err := bootstrap.InitializeImageStore(cfg)
	if err != nil {
		repos.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		repos.Close()
		return err
	}

	submitPool := worker.NewPool(cfg.SubmitWorkers, cfg.SubmitQueueSize).WithJobTimeout(cfg.BackendTimeout + listing.DefaultSubmitTimeout)
	submitPool.Start()

	listingService := listing.NewService(
		listing.Config{SessionLimit: cfg.DraftSessionLimit, SessionTTL: cfg.DraftSessionTTL},
		policy, repos.Submitter, publisher, images, submitPool)
	searchService := search.NewService(
		search.Config{SessionLimit: cfg.SearchSessionLimit, SessionTTL: cfg.SearchSessionTTL},
		policy, repos.Listings, publisher)
	authService := auth.NewService(repos.Accounts, publisher)

	sched := scheduler.New(submitPool)
	sched.Schedule(jobPopularDecay, cfg.PopularDecayInterval, worker.JobFunc(searchService.DecayPopularSearches))
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		BackendMode:     cfg.Backend,
		Listings:        listingService,
		Search:          searchService,
		Auth:            authService,
		ReadinessChecks: repos.ReadinessChecks,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		ListingService:     listingService,
		SearchService:      searchService,
		SubmitPool:         submitPool,
		ResilientPublisher: publisher,
		Repositories:       repos,
	})

	return runErr
}
