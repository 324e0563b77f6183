package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "listing.posted")
const (
	// EventTypeListingPosted is published when a draft was accepted by the backend
	EventTypeListingPosted = "listing.posted"

	// EventTypeListingSubmissionFailed is published when the backend rejected a draft
	EventTypeListingSubmissionFailed = "listing.submission_failed"

	// EventTypeSearchPerformed is published when a search session runs a query
	EventTypeSearchPerformed = "search.performed"

	// EventTypeAccountRegistered is published after a successful registration
	EventTypeAccountRegistered = "account.registered"
)
