package listing_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/mocks"
)

type deps struct {
	submitter *mocks.MockSubmitter
	bus       *mocks.MockEventBus
	images    *mocks.MockImageStore
}

func newMockedService(t *testing.T) (listing.Service, deps) {
	t.Helper()
	d := deps{
		submitter: mocks.NewMockSubmitter(t),
		bus:       mocks.NewMockEventBus(t),
		images:    mocks.NewMockImageStore(t),
	}
	svc := listing.NewService(listing.Config{SessionLimit: 10},
		catalog.NewPolicy(catalog.Default(), true), d.submitter, d.bus, d.images, nil)
	return svc, d
}

func completeDraft(t *testing.T, svc listing.Service) string {
	t.Helper()
	ctx := context.Background()
	id, _, err := svc.OpenDraft(ctx, "")
	require.NoError(t, err)
	require.NoError(t, svc.SetField(ctx, id, domain.FieldTitle, "High chair"))
	require.NoError(t, svc.SetField(ctx, id, domain.FieldDescription, "Folds flat, tray included"))
	require.NoError(t, svc.SetCategory(ctx, id, domain.CategoryFurniture))
	require.NoError(t, svc.SetCondition(ctx, id, domain.ConditionGood))
	return id
}

func isType(typ event.Type) interface{} {
	return mock.MatchedBy(func(evt event.Event) bool { return evt.Type == typ })
}

func TestService_SubmitPublishesPosted(t *testing.T) {
	svc, d := newMockedService(t)
	id := completeDraft(t, svc)

	posted := &domain.Listing{ID: "listing-9", Title: "High chair", Status: domain.ListingStatusAvailable}
	d.submitter.On("Submit", mock.Anything, mock.MatchedBy(func(draft domain.ListingDraft) bool {
		return draft.Title == "High chair" && draft.Category == domain.CategoryFurniture
	})).Return(posted, nil).Once()
	d.bus.On("Publish", mock.Anything, isType(event.ListingPosted)).Return(nil).Once()

	got, err := svc.Submit(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "listing-9", got.ID)

	state, err := svc.GetDraft(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, state.Draft.IsEmpty(), "a posted draft is reset")
	require.NotNil(t, state.LastOutcome)
	assert.Equal(t, "listing-9", state.LastOutcome.ListingID)
}

func TestService_SubmitBackendFailureKeepsDraft(t *testing.T) {
	svc, d := newMockedService(t)
	id := completeDraft(t, svc)

	d.submitter.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("backend 502")).Once()
	d.bus.On("Publish", mock.Anything, isType(event.ListingSubmissionFailed)).Return(nil).Once()

	_, err := svc.Submit(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	state, err := svc.GetDraft(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "High chair", state.Draft.Title)
	assert.False(t, state.Submitting)
	require.NotNil(t, state.LastOutcome)
	assert.Contains(t, state.LastOutcome.Error, "backend 502")
}

func TestService_SubmitIncompleteNeverReachesBackend(t *testing.T) {
	svc, d := newMockedService(t)
	id, _, err := svc.OpenDraft(context.Background(), "")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, domain.RequiredDraftFields, verr.Missing)
	d.submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	d.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_UploadImageStoresUnderDraftPrefix(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := context.Background()
	id, _, err := svc.OpenDraft(ctx, "")
	require.NoError(t, err)

	body := []byte("\xff\xd8\xff\xe0 fake jpeg")
	d.images.On("PutImage", mock.Anything,
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, listing.ImageKeyPrefix+"/"+id+"/") && strings.HasSuffix(key, ".jpg")
		}),
		"image/jpeg", mock.Anything, int64(len(body)),
	).Return("https://cdn.example.org/photo.jpg", nil).Once()

	ref, added, err := svc.UploadImage(ctx, id, listing.ImageUpload{
		ContentType: "image/jpeg",
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
	})

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "https://cdn.example.org/photo.jpg", ref)

	state, err := svc.GetDraft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{ref}, state.Draft.Images)
}

func TestService_UploadImageStoreFailure(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := context.Background()
	id, _, err := svc.OpenDraft(ctx, "")
	require.NoError(t, err)

	d.images.On("PutImage", mock.Anything, mock.Anything, "image/png", mock.Anything, int64(3)).
		Return("", errors.New("bucket unavailable")).Once()

	_, added, err := svc.UploadImage(ctx, id, listing.ImageUpload{
		ContentType: "image/png",
		Size:        3,
		Body:        bytes.NewReader([]byte("png")),
	})

	require.Error(t, err)
	assert.False(t, added)
	state, err := svc.GetDraft(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Images)
}

func TestService_UploadImageRejectsBeforeStoring(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := context.Background()
	id, _, err := svc.OpenDraft(ctx, "")
	require.NoError(t, err)

	_, _, err = svc.UploadImage(ctx, id, listing.ImageUpload{ContentType: "image/gif", Size: 10, Body: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = svc.UploadImage(ctx, id, listing.ImageUpload{ContentType: "image/png", Size: listing.MaxImageUploadBytes + 1, Body: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	d.images.AssertNotCalled(t, "PutImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRepositorySubmitter(t *testing.T) {
	draft := domain.ListingDraft{
		Title:       "Cot",
		Description: "Solid pine",
		Category:    domain.CategoryFurniture,
		Condition:   domain.ConditionFair,
		Images:      []string{"a.jpg"},
	}

	t.Run("stores an available listing", func(t *testing.T) {
		repo := mocks.NewMockListingRepository(t)
		repo.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.ID != "" && l.Title == "Cot" && l.Status == domain.ListingStatusAvailable
		})).Return(nil).Once()

		got, err := listing.NewRepositorySubmitter(repo).Submit(context.Background(), draft)

		require.NoError(t, err)
		assert.Equal(t, "Cot", got.Title)
		assert.Equal(t, []string{"a.jpg"}, got.Images)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockListingRepository(t)
		repo.On("CreateListing", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		got, err := listing.NewRepositorySubmitter(repo).Submit(context.Background(), draft)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
