package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published by the services
const (
	ListingPosted           Type = domain.EventTypeListingPosted
	ListingSubmissionFailed Type = domain.EventTypeListingSubmissionFailed
	SearchPerformed         Type = domain.EventTypeSearchPerformed
	AccountRegistered       Type = domain.EventTypeAccountRegistered
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Typed event payloads for type safety

// ListingPostedPayloadV1 is the typed payload for listing.posted
type ListingPostedPayloadV1 struct {
	ListingID  string `json:"listing_id"`
	DraftID    string `json:"draft_id,omitempty"`
	Category   string `json:"category"`
	Condition  string `json:"condition"`
	ImageCount int    `json:"image_count"`
	Timestamp  int64  `json:"timestamp"`
}

// ListingSubmissionFailedPayloadV1 is the typed payload for listing.submission_failed
type ListingSubmissionFailedPayloadV1 struct {
	DraftID   string `json:"draft_id,omitempty"`
	Category  string `json:"category"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// SearchPerformedPayloadV1 is the typed payload for search.performed
type SearchPerformedPayloadV1 struct {
	SessionID    string   `json:"session_id,omitempty"`
	Query        string   `json:"query,omitempty"`
	Category     string   `json:"category,omitempty"`
	QuickFilters []string `json:"quick_filters,omitempty"`
	ResultCount  int      `json:"result_count"`
	Timestamp    int64    `json:"timestamp"`
}

// AccountRegisteredPayloadV1 is the typed payload for account.registered
type AccountRegisteredPayloadV1 struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewListingPostedEvent creates a listing.posted event
func NewListingPostedEvent(draftID string, listing *domain.Listing, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingPosted,
		Payload: ListingPostedPayloadV1{
			ListingID:  listing.ID,
			DraftID:    draftID,
			Category:   listing.Category,
			Condition:  listing.Condition,
			ImageCount: len(listing.Images),
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewListingSubmissionFailedEvent creates a listing.submission_failed event
func NewListingSubmissionFailedEvent(draftID string, draft domain.ListingDraft, cause error, source string) Event {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingSubmissionFailed,
		Payload: ListingSubmissionFailedPayloadV1{
			DraftID:   draftID,
			Category:  draft.Category,
			Error:     msg,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewSearchPerformedEvent creates a search.performed event
func NewSearchPerformedEvent(sessionID string, criteria domain.SearchCriteria, resultCount int) Event {
	filters := make([]string, 0, len(criteria.QuickFilters))
	for _, f := range criteria.QuickFilters {
		filters = append(filters, string(f))
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchPerformed,
		Payload: SearchPerformedPayloadV1{
			SessionID:    sessionID,
			Query:        criteria.Query,
			Category:     criteria.Category,
			QuickFilters: filters,
			ResultCount:  resultCount,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewAccountRegisteredEvent creates an account.registered event
func NewAccountRegisteredEvent(account *domain.Account) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountRegistered,
		Payload: AccountRegisteredPayloadV1{
			AccountID: account.ID,
			Role:      string(account.Role),
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler reacts to one published event
type Handler func(ctx context.Context, event Event) error

// Bus fans events out to subscribers
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers events in-process. Handlers run synchronously in the order
// they subscribed, and every handler runs even when an earlier one fails.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	subscribers := b.handlers[event.Type]
	b.mu.RUnlock()

	var failed []error
	for _, h := range subscribers {
		if err := h(ctx, event); err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf(LogMsgHandlerErrorFormat, len(failed), event.Type, errors.Join(failed...))
}

func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}
