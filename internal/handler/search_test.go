package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/backend"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/search"
	"github.com/osse101/BabyBank_Go/mocks"
)

const testSessionID = "session-1"

func newSearchRouter(svc search.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/search", NewSearchHandler(svc).Routes)
	return r
}

func TestSearchHandler_OpenSession(t *testing.T) {
	svc := mocks.NewMockSearchService(t)
	svc.On("OpenSession", mock.Anything, "").Return(testSessionID, search.State{QuickFilters: []domain.QuickFilter{}}, nil)

	rec := doJSON(t, newSearchRouter(svc), http.MethodPost, "/search/sessions", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SearchSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testSessionID, resp.SessionID)
	assert.False(t, resp.State.HasCategory)
}

func TestSearchHandler_ToggleCategory(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockSearchService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "selects",
			body: ToggleCategoryRequest{Category: domain.CategoryToys},
			setupMock: func(m *mocks.MockSearchService) {
				m.On("ToggleCategory", mock.Anything, testSessionID, domain.CategoryToys).
					Return(search.State{Category: domain.CategoryToys, HasCategory: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"has_category":true`,
		},
		{
			name: "same category clears",
			body: ToggleCategoryRequest{Category: domain.CategoryToys},
			setupMock: func(m *mocks.MockSearchService) {
				m.On("ToggleCategory", mock.Anything, testSessionID, domain.CategoryToys).
					Return(search.State{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"has_category":false`,
		},
		{
			name: "unknown category",
			body: ToggleCategoryRequest{Category: "boats"},
			setupMock: func(m *mocks.MockSearchService) {
				m.On("ToggleCategory", mock.Anything, testSessionID, "boats").
					Return(search.State{}, domain.ErrUnknownCategory)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownCategoryError,
		},
		{
			name:           "missing category",
			body:           ToggleCategoryRequest{},
			setupMock:      func(m *mocks.MockSearchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"category"`,
		},
		{
			name: "expired session",
			body: ToggleCategoryRequest{Category: domain.CategoryToys},
			setupMock: func(m *mocks.MockSearchService) {
				m.On("ToggleCategory", mock.Anything, testSessionID, domain.CategoryToys).
					Return(search.State{}, domain.ErrSearchSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgSearchSessionNotFoundErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSearchService(t)
			tt.setupMock(svc)

			rec := doJSON(t, newSearchRouter(svc), http.MethodPost, "/search/sessions/"+testSessionID+"/category", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestSearchHandler_SetQueryAndQuickFilter(t *testing.T) {
	svc := mocks.NewMockSearchService(t)
	svc.On("SetQuery", mock.Anything, testSessionID, "stroller").
		Return(search.State{Query: "stroller"}, nil)
	svc.On("ToggleQuickFilter", mock.Anything, testSessionID, domain.QuickFilterUrgent).
		Return(search.State{Query: "stroller", QuickFilters: []domain.QuickFilter{domain.QuickFilterUrgent}}, nil)
	router := newSearchRouter(svc)

	rec := doJSON(t, router, http.MethodPut, "/search/sessions/"+testSessionID+"/query", SetQueryRequest{Query: "stroller"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"query":"stroller"`)

	rec = doJSON(t, router, http.MethodPost, "/search/sessions/"+testSessionID+"/quick-filters", ToggleQuickFilterRequest{Filter: "urgent"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quick_filters":["urgent"]`)

	// Rejected by the request validator before reaching the service
	rec = doJSON(t, router, http.MethodPost, "/search/sessions/"+testSessionID+"/quick-filters", ToggleQuickFilterRequest{Filter: "nearby"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown quick filter")
}

func TestSearchHandler_Results(t *testing.T) {
	listings := []domain.Listing{{ID: "l-2", Title: "Crib"}, {ID: "l-1", Title: "Cot"}}

	t.Run("returns results with state", func(t *testing.T) {
		svc := mocks.NewMockSearchService(t)
		svc.On("Results", mock.Anything, testSessionID, 10).Return(listings, nil)
		svc.On("GetSession", mock.Anything, testSessionID).Return(search.State{Category: domain.CategoryFurniture, HasCategory: true}, nil)

		rec := doJSON(t, newSearchRouter(svc), http.MethodGet, "/search/sessions/"+testSessionID+"/results?limit=10", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SearchResultsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "l-2", resp.Results[0].ID)
		assert.Equal(t, domain.CategoryFurniture, resp.State.Category)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		svc := mocks.NewMockSearchService(t)
		svc.On("Results", mock.Anything, testSessionID, 0).Return(nil, nil)
		svc.On("GetSession", mock.Anything, testSessionID).Return(search.State{}, nil)

		rec := doJSON(t, newSearchRouter(svc), http.MethodGet, "/search/sessions/"+testSessionID+"/results", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"results":[]`)
	})

	t.Run("invalid limit", func(t *testing.T) {
		svc := mocks.NewMockSearchService(t)
		rec := doJSON(t, newSearchRouter(svc), http.MethodGet, "/search/sessions/"+testSessionID+"/results?limit=-3", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidLimit)
	})

	t.Run("backend down", func(t *testing.T) {
		svc := mocks.NewMockSearchService(t)
		svc.On("Results", mock.Anything, testSessionID, 0).Return(nil, backend.ErrUnavailable)

		rec := doJSON(t, newSearchRouter(svc), http.MethodGet, "/search/sessions/"+testSessionID+"/results", nil)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestSearchHandler_PopularSearches(t *testing.T) {
	svc := mocks.NewMockSearchService(t)
	svc.On("PopularSearches", mock.Anything, search.DefaultPopularCount).Return(search.DefaultPopularSearches)
	svc.On("PopularSearches", mock.Anything, 2).Return(search.DefaultPopularSearches[:2])
	router := newSearchRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/search/popular", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp PopularSearchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, search.DefaultPopularSearches, resp.Searches)

	rec = doJSON(t, router, http.MethodGet, "/search/popular?n=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Baby clothes 0-6M")
	assert.NotContains(t, rec.Body.String(), "High chair")
}
