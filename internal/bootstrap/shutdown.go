package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/internal/scheduler"
	"github.com/osse101/BabyBank_Go/internal/search"
	"github.com/osse101/BabyBank_Go/internal/worker"
)

// stoppable is the part of server.Server used during shutdown
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             stoppable
	Scheduler          *scheduler.Scheduler
	ListingService     listing.Service
	SearchService      search.Service
	SubmitPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler, then submission workers (finish queued jobs)
// 3. Services (close open sessions)
// 4. Event publisher (flush pending retries)
// 5. Database and cache connections
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.SubmitPool != nil {
		slog.Info(LogMsgStoppingSubmitPool)
		c.SubmitPool.Stop()
	}

	shutdownService(ctx, ServiceNameListing, c.ListingService)
	shutdownService(ctx, ServiceNameSearch, c.SearchService)

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Repositories != nil {
		c.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if service == nil {
		return
	}
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(LogMsgServiceShutdownFailed, "service", name, "error", err)
	}
}
