package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/metrics"
	"github.com/osse101/BabyBank_Go/internal/session"
	"github.com/osse101/BabyBank_Go/internal/worker"
)

// ImageStore persists uploaded photos and returns the reference stored on the draft
type ImageStore interface {
	PutImage(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	DeleteImage(ctx context.Context, key string) error
}

// ImageUpload is a photo received from a client
type ImageUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// Config controls the draft session store
type Config struct {
	SessionLimit int
	SessionTTL   time.Duration
}

// Service defines the posting session operations
type Service interface {
	// OpenDraft returns the session for draftID, creating an empty one when needed.
	// An empty draftID always opens a new session.
	OpenDraft(ctx context.Context, draftID string) (string, State, error)
	GetDraft(ctx context.Context, draftID string) (State, error)
	DiscardDraft(ctx context.Context, draftID string) error

	SetField(ctx context.Context, draftID, name, value string) error
	SetCategory(ctx context.Context, draftID, categoryID string) error
	SetCondition(ctx context.Context, draftID, conditionID string) error
	SetAgeGroup(ctx context.Context, draftID, ageGroup string) error
	AddImage(ctx context.Context, draftID, ref string) (bool, error)
	UploadImage(ctx context.Context, draftID string, upload ImageUpload) (string, bool, error)
	RemoveImage(ctx context.Context, draftID string, index int) error
	Validate(ctx context.Context, draftID string) ([]string, error)

	Submit(ctx context.Context, draftID string) (*domain.Listing, error)
	// QueueSubmit validates synchronously and hands the backend call to the worker pool
	QueueSubmit(ctx context.Context, draftID string) error

	Catalog() *catalog.Catalog
	Shutdown(ctx context.Context) error
}

type service struct {
	policy    catalog.Policy
	submitter Submitter
	bus       event.Bus
	images    ImageStore
	pool      *worker.Pool
	drafts    *session.Store[*Form]
	wg        sync.WaitGroup
}

// NewService creates the posting service.
// images and pool may be nil: uploads then fail with domain.ErrStorageUnavailable and
// queued submissions run on their own goroutine.
func NewService(cfg Config, policy catalog.Policy, submitter Submitter, bus event.Bus, images ImageStore, pool *worker.Pool) Service {
	s := &service{
		policy:    policy,
		submitter: submitter,
		bus:       bus,
		images:    images,
		pool:      pool,
	}
	s.drafts = session.NewStore[*Form](cfg.SessionLimit, cfg.SessionTTL, func(id string, _ *Form) {
		metrics.DraftSessionsActive.Dec()
		logger.FromContext(context.Background()).Debug(LogMsgDraftEvicted, "draft_id", id)
	})
	return s
}

func (s *service) Catalog() *catalog.Catalog {
	return s.policy.Catalog()
}

func (s *service) form(draftID string) (*Form, error) {
	f, ok := s.drafts.Get(draftID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDraftNotFound, draftID)
	}
	return f, nil
}

func (s *service) OpenDraft(ctx context.Context, draftID string) (string, State, error) {
	id, f, created := s.drafts.GetOrCreate(draftID, func() *Form {
		return NewForm(s.policy, s.submitter)
	})
	if created {
		metrics.DraftSessionsActive.Inc()
		logger.FromContext(ctx).Info(LogMsgDraftOpened, "draft_id", id)
	}
	return id, f.State(), nil
}

func (s *service) GetDraft(ctx context.Context, draftID string) (State, error) {
	f, err := s.form(draftID)
	if err != nil {
		return State{}, err
	}
	return f.State(), nil
}

func (s *service) DiscardDraft(ctx context.Context, draftID string) error {
	if !s.drafts.Remove(draftID) {
		return fmt.Errorf("%w: %s", domain.ErrDraftNotFound, draftID)
	}
	logger.FromContext(ctx).Info(LogMsgDraftDiscarded, "draft_id", draftID)
	return nil
}

func (s *service) SetField(ctx context.Context, draftID, name, value string) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}
	return f.SetField(name, value)
}

func (s *service) SetCategory(ctx context.Context, draftID, categoryID string) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}
	return f.SetCategory(categoryID)
}

func (s *service) SetCondition(ctx context.Context, draftID, conditionID string) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}
	return f.SetCondition(conditionID)
}

func (s *service) SetAgeGroup(ctx context.Context, draftID, ageGroup string) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}
	return f.SetAgeGroup(ageGroup)
}

func (s *service) AddImage(ctx context.Context, draftID, ref string) (bool, error) {
	f, err := s.form(draftID)
	if err != nil {
		return false, err
	}
	return f.AddImage(ref), nil
}

// UploadImage stores the photo and appends its reference.
// When the slots filled up while the upload was running the stored object is deleted again.
func (s *service) UploadImage(ctx context.Context, draftID string, upload ImageUpload) (string, bool, error) {
	f, err := s.form(draftID)
	if err != nil {
		return "", false, err
	}
	if s.images == nil {
		return "", false, domain.ErrStorageUnavailable
	}

	ext, ok := AllowedImageTypes[upload.ContentType]
	if !ok {
		return "", false, fmt.Errorf("%w: "+ErrMsgUnsupportedImageType, domain.ErrInvalidInput, upload.ContentType)
	}
	if upload.Size > MaxImageUploadBytes {
		return "", false, fmt.Errorf("%w: "+ErrMsgImageTooLarge, domain.ErrInvalidInput, MaxImageUploadBytes)
	}
	if f.ImageSlotsLeft() <= 0 {
		return "", false, nil
	}

	key := path.Join(ImageKeyPrefix, draftID, uuid.NewString()+ext)
	ref, err := s.images.PutImage(ctx, key, upload.ContentType, upload.Body, upload.Size)
	if err != nil {
		return "", false, err
	}

	log := logger.FromContext(ctx)
	if !f.AddImage(ref) {
		if delErr := s.images.DeleteImage(ctx, key); delErr != nil {
			log.Warn(LogMsgImageCleanupFailed, "key", key, "error", delErr)
		}
		return "", false, nil
	}

	log.Info(LogMsgImageUploaded, "draft_id", draftID, "key", key, "size", upload.Size)
	return ref, true, nil
}

func (s *service) RemoveImage(ctx context.Context, draftID string, index int) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}
	_, err = f.RemoveImage(index)
	return err
}

func (s *service) Validate(ctx context.Context, draftID string) ([]string, error) {
	f, err := s.form(draftID)
	if err != nil {
		return nil, err
	}
	return f.Validate(), nil
}

func (s *service) Submit(ctx context.Context, draftID string) (*domain.Listing, error) {
	f, err := s.form(draftID)
	if err != nil {
		return nil, err
	}

	snapshot, err := f.begin()
	if err != nil {
		return nil, err
	}

	listing, err := s.submitter.Submit(ctx, snapshot)
	listing, err = f.complete(listing, err)
	s.publishOutcome(ctx, draftID, snapshot, listing, err, SourceSync)
	return listing, err
}

func (s *service) QueueSubmit(ctx context.Context, draftID string) error {
	f, err := s.form(draftID)
	if err != nil {
		return err
	}

	snapshot, err := f.begin()
	if err != nil {
		return err
	}

	job := &submitJob{svc: s, form: f, draftID: draftID, draft: snapshot, requestID: logger.GetRequestID(ctx)}
	if s.pool == nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), DefaultSubmitTimeout)
			defer cancel()
			_ = job.Process(ctx)
		}()
	} else if err := s.pool.TryEnqueue(job); err != nil {
		f.abort()
		return err
	}

	logger.FromContext(ctx).Info(LogMsgSubmissionQueued, "draft_id", draftID)
	return nil
}

func (s *service) publishOutcome(ctx context.Context, draftID string, draft domain.ListingDraft, listing *domain.Listing, err error, source string) {
	log := logger.FromContext(ctx)

	var evt event.Event
	if err != nil {
		// the cause is unwrapped so consumers see the backend's own message
		var subErr *domain.SubmissionError
		cause := err
		if errors.As(err, &subErr) && subErr.Err != nil {
			cause = subErr.Err
		}
		log.Warn(LogMsgSubmissionRejected, "draft_id", draftID, "error", cause, "source", source)
		evt = event.NewListingSubmissionFailedEvent(draftID, draft, cause, source)
	} else {
		if listing == nil {
			return
		}
		log.Info(LogMsgDraftSubmitted, "draft_id", draftID, "listing_id", listing.ID, "source", source)
		evt = event.NewListingPostedEvent(draftID, listing, source)
	}

	if s.bus == nil {
		return
	}
	if pubErr := s.bus.Publish(ctx, evt); pubErr != nil {
		log.Error(LogMsgPublishFailed, "type", evt.Type, "error", pubErr)
	}
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServiceShutdown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.drafts.Purge()
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
