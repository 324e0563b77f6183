package metrics

const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"

	MetricNameListingsPosted      = "listings_posted_total"
	MetricNameSubmissionFailures  = "listing_submission_failures_total"
	MetricNameSearchesPerformed   = "searches_performed_total"
	MetricNameSearchResults       = "search_results"
	MetricNameAccountsRegistered  = "accounts_registered_total"
	MetricNameDraftSessionsActive = "draft_sessions_active"
)

const (
	HelpTextHTTPRequestsTotal    = "HTTP requests by method, route and status"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds by method and route"
	HelpTextHTTPRequestsInFlight = "HTTP requests currently being served"

	HelpTextEventsPublished    = "Events seen on the bus by type"
	HelpTextEventHandlerErrors = "Events whose payload the metrics collector could not decode"

	HelpTextListingsPosted      = "Listings accepted by the backend by category and condition"
	HelpTextSubmissionFailures  = "Listing submissions the backend rejected"
	HelpTextSearchesPerformed   = "Searches run across all sessions"
	HelpTextSearchResults       = "Listings returned per search"
	HelpTextAccountsRegistered  = "Accounts registered by role"
	HelpTextDraftSessionsActive = "Posting sessions currently open"
)

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelCategory  = "category"
	LabelCondition = "condition"
	LabelRole      = "role"
)

// unmatchedRoute labels requests chi did not route, keeping raw paths out of the label set
const unmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SearchResultBuckets runs from an empty page to the largest allowed page
var SearchResultBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 200}

const LogMsgEventPayloadUnknown = "Event payload could not be decoded"
