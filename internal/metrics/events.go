package metrics

import (
	"context"

	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/logger"
)

// EventMetricsCollector turns bus events into Prometheus samples
type EventMetricsCollector struct{}

func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// collectedTypes lists every event type the collector counts
var collectedTypes = []event.Type{
	event.ListingPosted,
	event.ListingSubmissionFailed,
	event.SearchPerformed,
	event.AccountRegistered,
}

func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, t := range collectedTypes {
		bus.Subscribe(t, e.HandleEvent)
	}
	return nil
}

// HandleEvent never fails the publisher; an undecodable payload is counted and skipped
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ListingPosted:
		var p event.ListingPostedPayloadV1
		if p, err = event.DecodePayload[event.ListingPostedPayloadV1](evt.Payload); err == nil {
			ListingsPosted.WithLabelValues(p.Category, p.Condition).Inc()
		}
	case event.ListingSubmissionFailed:
		SubmissionFailures.Inc()
	case event.SearchPerformed:
		SearchesPerformed.Inc()
		var p event.SearchPerformedPayloadV1
		if p, err = event.DecodePayload[event.SearchPerformedPayloadV1](evt.Payload); err == nil {
			SearchResults.Observe(float64(p.ResultCount))
		}
	case event.AccountRegistered:
		var p event.AccountRegisteredPayloadV1
		if p, err = event.DecodePayload[event.AccountRegisteredPayloadV1](evt.Payload); err == nil {
			AccountsRegistered.WithLabelValues(p.Role).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
	}
	return nil
}
