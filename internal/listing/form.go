package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Submitter hands a complete draft to the marketplace backend
type Submitter interface {
	Submit(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error)
}

// SubmitResult is the outcome delivered by SubmitAsync
type SubmitResult struct {
	Listing *domain.Listing
	Err     error
}

// Outcome records how the most recent submission ended
type Outcome struct {
	ListingID string `json:"listing_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// State is a consistent view of a form taken under one lock acquisition
type State struct {
	Draft       domain.ListingDraft `json:"draft"`
	Missing     []string            `json:"missing"`
	Submitting  bool                `json:"submitting"`
	LastOutcome *Outcome            `json:"last_outcome,omitempty"`
}

// Form holds one in-progress listing draft.
// Mutations are serialized by mu; the backend call in Submit runs without holding it,
// so edits made while a submission is pending never block and never alter the
// payload that was captured.
type Form struct {
	mu          sync.Mutex
	policy      catalog.Policy
	submitter   Submitter
	draft       domain.ListingDraft
	submitting  bool
	closed      bool
	lastOutcome *Outcome
}

// NewForm returns an empty form
func NewForm(policy catalog.Policy, submitter Submitter) *Form {
	return &Form{
		policy:    policy,
		submitter: submitter,
		draft:     domain.ListingDraft{Images: []string{}},
	}
}

// SetField assigns one of the free-text fields
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return domain.ErrDraftClosed
	}

	switch name {
	case domain.FieldTitle:
		f.draft.Title = value
	case domain.FieldDescription:
		f.draft.Description = value
	case domain.FieldBrand:
		f.draft.Brand = value
	case domain.FieldSize:
		f.draft.Size = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	return nil
}

// SetCategory selects a category; an empty id clears the selection
func (f *Form) SetCategory(id string) error {
	if err := f.policy.CheckCategory(id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrDraftClosed
	}
	f.draft.Category = id
	return nil
}

// SetCondition selects a condition grade; an empty id clears the selection
func (f *Form) SetCondition(id string) error {
	if err := f.policy.CheckCondition(id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrDraftClosed
	}
	f.draft.Condition = id
	return nil
}

// SetAgeGroup selects an age band; an empty label clears the selection
func (f *Form) SetAgeGroup(label string) error {
	if err := f.policy.CheckAgeGroup(label); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrDraftClosed
	}
	f.draft.AgeGroup = label
	return nil
}

// AddImage appends an image reference.
// It reports false, leaving the draft unchanged, when all slots are taken.
func (f *Form) AddImage(ref string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || len(f.draft.Images) >= domain.MaxListingImages {
		return false
	}
	f.draft.Images = append(f.draft.Images, ref)
	return true
}

// RemoveImage drops the image at index, shifting later images down
func (f *Form) RemoveImage(index int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", domain.ErrDraftClosed
	}
	if index < 0 || index >= len(f.draft.Images) {
		return "", fmt.Errorf("%w: %d", domain.ErrImageIndex, index)
	}

	removed := f.draft.Images[index]
	images := make([]string, 0, len(f.draft.Images)-1)
	images = append(images, f.draft.Images[:index]...)
	f.draft.Images = append(images, f.draft.Images[index+1:]...)
	return removed, nil
}

// ImageSlotsLeft returns how many more images the draft accepts
func (f *Form) ImageSlotsLeft() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.MaxListingImages - len(f.draft.Images)
}

// Validate returns the required fields that are still empty, in display order.
// An empty result means the draft can be submitted.
func (f *Form) Validate() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return missingFields(f.draft)
}

// Snapshot returns a copy of the draft
func (f *Form) Snapshot() domain.ListingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Clone()
}

// Submitting reports whether a submission is pending
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// State returns the draft together with its validation and submission status
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := State{
		Draft:      f.draft.Clone(),
		Missing:    missingFields(f.draft),
		Submitting: f.submitting,
	}
	if f.lastOutcome != nil {
		o := *f.lastOutcome
		s.LastOutcome = &o
	}
	return s
}

// Submit validates the draft and hands a snapshot of it to the Submitter.
// Validation failures return *domain.ValidationError without calling the backend.
// A backend failure leaves the draft untouched and returns *domain.SubmissionError.
// On success the draft is reset to empty.
func (f *Form) Submit(ctx context.Context) (*domain.Listing, error) {
	snapshot, err := f.begin()
	if err != nil {
		return nil, err
	}

	listing, err := f.submitter.Submit(ctx, snapshot)
	return f.complete(listing, err)
}

// SubmitAsync behaves like Submit but returns immediately.
// The returned channel receives exactly one result and is then closed.
func (f *Form) SubmitAsync(ctx context.Context) <-chan SubmitResult {
	out := make(chan SubmitResult, 1)

	snapshot, err := f.begin()
	if err != nil {
		out <- SubmitResult{Err: err}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		listing, err := f.submitter.Submit(ctx, snapshot)
		listing, err = f.complete(listing, err)
		out <- SubmitResult{Listing: listing, Err: err}
	}()
	return out
}

// Close detaches the form. Results of a submission still in flight are discarded.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// Closed reports whether Close was called
func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// begin marks the form as submitting and captures the payload
func (f *Form) begin() (domain.ListingDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return domain.ListingDraft{}, domain.ErrDraftClosed
	}
	if f.submitting {
		return domain.ListingDraft{}, domain.ErrSubmissionInProgress
	}
	if missing := missingFields(f.draft); len(missing) > 0 {
		return domain.ListingDraft{}, &domain.ValidationError{Missing: missing}
	}

	f.submitting = true
	return f.draft.Clone(), nil
}

// complete applies a backend result captured by begin
func (f *Form) complete(listing *domain.Listing, err error) (*domain.Listing, error) {
	if err != nil {
		err = &domain.SubmissionError{Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	if f.closed {
		return listing, err
	}

	if err != nil {
		f.lastOutcome = &Outcome{Error: err.Error()}
		return nil, err
	}

	f.draft = domain.ListingDraft{Images: []string{}}
	f.lastOutcome = &Outcome{}
	if listing != nil {
		f.lastOutcome.ListingID = listing.ID
	}
	return listing, nil
}

// abort releases a submission that never reached the backend
func (f *Form) abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

func missingFields(d domain.ListingDraft) []string {
	missing := make([]string, 0, len(domain.RequiredDraftFields))
	values := map[string]string{
		domain.FieldTitle:       d.Title,
		domain.FieldDescription: d.Description,
		domain.FieldCategory:    d.Category,
		domain.FieldCondition:   d.Condition,
	}
	for _, name := range domain.RequiredDraftFields {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
