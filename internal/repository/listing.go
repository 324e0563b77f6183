package repository

import (
	"context"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Listing defines the interface for posted item persistence
type Listing interface {
	CreateListing(ctx context.Context, listing *domain.Listing) error
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error

	// SearchListings returns available listings matching the criteria, newest first
	SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error)
}
