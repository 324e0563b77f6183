package listing

import (
	"context"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/logger"
)

// submitJob finishes a submission started by QueueSubmit
type submitJob struct {
	svc       *service
	form      *Form
	draftID   string
	draft     domain.ListingDraft
	requestID string
}

// Process calls the backend and applies the result to the form
func (j *submitJob) Process(ctx context.Context) error {
	if j.requestID != "" {
		ctx = logger.WithRequestID(ctx, j.requestID)
	}

	listing, err := j.svc.submitter.Submit(ctx, j.draft)
	listing, err = j.form.complete(listing, err)
	j.svc.publishOutcome(ctx, j.draftID, j.draft, listing, err, SourceAsync)
	return err
}
