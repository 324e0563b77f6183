package listing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/repository"
)

// RepositorySubmitter turns drafts into listings stored in a repository.Listing
type RepositorySubmitter struct {
	repo repository.Listing
	now  func() time.Time
}

// NewRepositorySubmitter creates a Submitter backed by repo
func NewRepositorySubmitter(repo repository.Listing) *RepositorySubmitter {
	return &RepositorySubmitter{repo: repo, now: time.Now}
}

// Submit stores the draft as a new available listing
func (s *RepositorySubmitter) Submit(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	listing := domain.NewListingFromDraft(uuid.NewString(), draft, s.now().UTC())
	if err := s.repo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}
