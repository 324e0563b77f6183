// Package backend talks to the remote marketplace API over HTTP.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// ErrUnavailable wraps transport failures and 5xx responses
var ErrUnavailable = errors.New(ErrMsgRequestFailed)

// Config configures the remote client
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusRequest struct {
	Status domain.ListingStatus `json:"status"`
}

// Client implements repository.Listing and listing.Submitter against the remote API
type Client struct {
	http *resty.Client
}

// NewClient builds a resty client with the base URL, key and retry policy applied
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}

	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", DefaultUserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// only idempotent reads are retried
			if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.APIKey != "" {
		c.SetHeader(HeaderAPIKey, cfg.APIKey)
	}

	return &Client{http: c}
}

// Submit posts a draft; the backend assigns the listing id
func (c *Client) Submit(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	var out domain.Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&out).
		SetError(&errorResponse{}).
		Post(PathSubmissions)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateListing stores a fully built listing
func (c *Client) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if listing == nil || listing.ID == "" {
		return fmt.Errorf("%w: listing id is required", domain.ErrInvalidInput)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(listing).
		SetError(&errorResponse{}).
		Post(PathListings)
	return checkResponse(resp, err)
}

// GetListingByID fetches one listing
func (c *Client) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	var out domain.Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		SetError(&errorResponse{}).
		Get(PathListing)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateListingStatus changes a listing's availability
func (c *Client) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(statusRequest{Status: status}).
		SetError(&errorResponse{}).
		Patch(PathListingStatus)
	return checkResponse(resp, err)
}

// SearchListings queries the remote search endpoint
func (c *Client) SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam(QueryParamLimit, strconv.Itoa(criteria.EffectiveLimit())).
		SetError(&errorResponse{})
	if criteria.Query != "" {
		req.SetQueryParam(QueryParamQuery, criteria.Query)
	}
	if criteria.Category != "" {
		req.SetQueryParam(QueryParamCategory, criteria.Category)
	}
	for _, qf := range criteria.QuickFilters {
		req.QueryParam.Add(QueryParamQuickFilter, string(qf))
	}

	var out []domain.Listing
	resp, err := req.SetResult(&out).Get(PathListings)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Listing{}
	}
	return out, nil
}

// checkResponse maps transport errors and status codes onto domain errors
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsError() {
		return nil
	}

	msg := http.StatusText(resp.StatusCode())
	if e, ok := resp.Error().(*errorResponse); ok && e.Error != "" {
		msg = e.Error
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrListingNotFound, msg)
	case resp.StatusCode() == http.StatusBadRequest, resp.StatusCode() == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %d %s", ErrUnavailable, resp.StatusCode(), msg)
	default:
		return fmt.Errorf("%s: %d %s", ErrMsgUnexpectedStatus, resp.StatusCode(), msg)
	}
}
