package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/search"
)

// SearchHandler serves the search screen
type SearchHandler struct {
	service search.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service search.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// Routes mounts the search endpoints on r
func (h *SearchHandler) Routes(r chi.Router) {
	r.Get("/popular", h.HandlePopularSearches)
	r.Post("/sessions", h.HandleOpenSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGetSession)
		r.Post("/category", h.HandleToggleCategory)
		r.Put("/query", h.HandleSetQuery)
		r.Post("/quick-filters", h.HandleToggleQuickFilter)
		r.Get("/results", h.HandleResults)
	})
}

// SearchSessionResponse is a search session and its selections
type SearchSessionResponse struct {
	SessionID string       `json:"session_id"`
	State     search.State `json:"state"`
}

// ToggleCategoryRequest selects a category, or clears it when it is already selected
type ToggleCategoryRequest struct {
	Category string `json:"category" validate:"required,max=64"`
}

// SetQueryRequest replaces the search text; empty clears it
type SetQueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// ToggleQuickFilterRequest switches a quick filter on or off
type ToggleQuickFilterRequest struct {
	Filter string `json:"filter" validate:"required,quickfilter"`
}

// SearchResultsResponse lists matching listings, newest first
type SearchResultsResponse struct {
	State   search.State     `json:"state"`
	Count   int              `json:"count"`
	Results []domain.Listing `json:"results"`
}

// PopularSearchesResponse lists suggested searches
type PopularSearchesResponse struct {
	Searches []string `json:"searches"`
}

// HandleOpenSession opens a search session with nothing selected
// @Summary Open a search session
// @Tags search
// @Produce json
// @Success 201 {object} SearchSessionResponse
// @Router /search/sessions [post]
func (h *SearchHandler) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	id, state, err := h.service.OpenSession(r.Context(), "")
	if err != nil {
		respondServiceError(w, r, "Open search session", err)
		return
	}
	logger.FromContext(r.Context()).Debug("Search session opened", "session_id", id)
	respondJSON(w, http.StatusCreated, SearchSessionResponse{SessionID: id, State: state})
}

// HandleGetSession returns the current selections
// @Summary Get search selections
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SearchSessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /search/sessions/{id} [get]
func (h *SearchHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	state, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get search session", err)
		return
	}
	respondJSON(w, http.StatusOK, SearchSessionResponse{SessionID: id, State: state})
}

// HandleToggleCategory toggles the category selection
// @Summary Toggle a category
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ToggleCategoryRequest true "Category"
// @Success 200 {object} SearchSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /search/sessions/{id}/category [post]
func (h *SearchHandler) HandleToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req ToggleCategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toggle category"); err != nil {
		return
	}
	id := pathID(r)
	state, err := h.service.ToggleCategory(r.Context(), id, req.Category)
	if err != nil {
		respondServiceError(w, r, "Toggle category", err)
		return
	}
	respondJSON(w, http.StatusOK, SearchSessionResponse{SessionID: id, State: state})
}

// HandleSetQuery sets the search text
// @Summary Set search text
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetQueryRequest true "Query"
// @Success 200 {object} SearchSessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /search/sessions/{id}/query [put]
func (h *SearchHandler) HandleSetQuery(w http.ResponseWriter, r *http.Request) {
	var req SetQueryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set query"); err != nil {
		return
	}
	id := pathID(r)
	state, err := h.service.SetQuery(r.Context(), id, req.Query)
	if err != nil {
		respondServiceError(w, r, "Set query", err)
		return
	}
	respondJSON(w, http.StatusOK, SearchSessionResponse{SessionID: id, State: state})
}

// HandleToggleQuickFilter toggles one quick filter
// @Summary Toggle a quick filter
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ToggleQuickFilterRequest true "Quick filter"
// @Success 200 {object} SearchSessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /search/sessions/{id}/quick-filters [post]
func (h *SearchHandler) HandleToggleQuickFilter(w http.ResponseWriter, r *http.Request) {
	var req ToggleQuickFilterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toggle quick filter"); err != nil {
		return
	}
	id := pathID(r)
	state, err := h.service.ToggleQuickFilter(r.Context(), id, domain.QuickFilter(req.Filter))
	if err != nil {
		respondServiceError(w, r, "Toggle quick filter", err)
		return
	}
	respondJSON(w, http.StatusOK, SearchSessionResponse{SessionID: id, State: state})
}

// HandleResults runs the search for the session's selections
// @Summary Search listings
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Maximum results"
// @Success 200 {object} SearchResultsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search/sessions/{id}/results [get]
func (h *SearchHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, 0, ErrMsgInvalidLimit)
	if !ok {
		return
	}

	id := pathID(r)
	results, err := h.service.Results(r.Context(), id, limit)
	if err != nil {
		respondServiceError(w, r, "Search", err)
		return
	}
	state, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Search", err)
		return
	}
	if results == nil {
		results = []domain.Listing{}
	}
	respondJSON(w, http.StatusOK, SearchResultsResponse{State: state, Count: len(results), Results: results})
}

// HandlePopularSearches lists suggested searches
// @Summary Popular searches
// @Tags search
// @Produce json
// @Param n query int false "Number of suggestions"
// @Success 200 {object} PopularSearchesResponse
// @Router /search/popular [get]
func (h *SearchHandler) HandlePopularSearches(w http.ResponseWriter, r *http.Request) {
	n, ok := GetOptionalIntQueryParam(r, w, QueryParamCount, search.DefaultPopularCount, ErrMsgInvalidLimit)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, PopularSearchesResponse{Searches: h.service.PopularSearches(r.Context(), n)})
}
