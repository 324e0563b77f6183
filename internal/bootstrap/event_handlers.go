package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/metrics"
)

// loggedEventTypes are written to the application log as they happen
var loggedEventTypes = []event.Type{
	event.ListingPosted,
	event.ListingSubmissionFailed,
	event.AccountRegistered,
}

// RegisterEventHandlers subscribes the metrics collector and the event logger to bus
func RegisterEventHandlers(bus event.Bus) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range loggedEventTypes {
		bus.Subscribe(t, logEvent)
	}
	slog.Info(LogMsgEventLoggerInitialized, "types", loggedEventTypes)

	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	attrs := []any{"type", evt.Type, "version", evt.Version, "source", evt.GetMetadataValue(event.MetadataKeySource)}
	if evt.Type == event.ListingSubmissionFailed {
		log.Warn(LogMsgEventReceived, attrs...)
		return nil
	}
	log.Info(LogMsgEventReceived, attrs...)
	return nil
}
