package backend

import "time"

// Client defaults
const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "BabyBank-Go/1.0"
	HeaderAPIKey     = "X-API-Key"
)

// Backend API paths
const (
	PathListings      = "/api/v1/listings"
	PathListing       = "/api/v1/listings/{id}"
	PathListingStatus = "/api/v1/listings/{id}/status"
	PathSubmissions   = "/api/v1/listings/submissions"
)

// Search query parameters
const (
	QueryParamQuery       = "q"
	QueryParamCategory    = "category"
	QueryParamQuickFilter = "filter"
	QueryParamLimit       = "limit"
)

// Error messages
const (
	ErrMsgRequestFailed    = "backend request failed"
	ErrMsgUnexpectedStatus = "backend returned unexpected status"
)
