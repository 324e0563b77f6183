package handler

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/internal/logger"
)

// uploadOverhead leaves room for multipart boundaries and headers around the image
const uploadOverhead = 64 << 10

// DraftHandler serves the item posting screen
type DraftHandler struct {
	service listing.Service
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(service listing.Service) *DraftHandler {
	return &DraftHandler{service: service}
}

// Routes mounts the draft endpoints on r
func (h *DraftHandler) Routes(r chi.Router) {
	r.Post("/", h.HandleOpenDraft)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGetDraft)
		r.Delete("/", h.HandleDiscardDraft)
		r.Patch("/fields", h.HandleSetFields)
		r.Put("/category", h.HandleSetCategory)
		r.Put("/condition", h.HandleSetCondition)
		r.Put("/age-group", h.HandleSetAgeGroup)
		r.Post("/images", h.HandleAddImage)
		r.Post("/images/upload", h.HandleUploadImage)
		r.Delete("/images/{index}", h.HandleRemoveImage)
		r.Get("/validate", h.HandleValidate)
		r.Post("/submit", h.HandleSubmit)
	})
}

// DraftResponse is a draft session and its current state
type DraftResponse struct {
	DraftID string        `json:"draft_id"`
	State   listing.State `json:"state"`
}

// SetFieldsRequest assigns free-text fields by name
type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,dive,max=2000"`
}

// SetCategoryRequest selects a category; empty clears it
type SetCategoryRequest struct {
	Category string `json:"category" validate:"max=64"`
}

// SetConditionRequest selects a condition; empty clears it
type SetConditionRequest struct {
	Condition string `json:"condition" validate:"max=64"`
}

// SetAgeGroupRequest selects an age group; empty clears it
type SetAgeGroupRequest struct {
	AgeGroup string `json:"age_group" validate:"max=64"`
}

// AddImageRequest attaches an already hosted image
type AddImageRequest struct {
	Ref string `json:"ref" validate:"required,max=2048"`
}

// AddImageResponse reports whether a slot was free
type AddImageResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
	Ref     string `json:"ref,omitempty"`
}

// ValidateResponse lists the required fields that are still empty
type ValidateResponse struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
	Message string   `json:"message"`
}

// SubmitResponse carries the posted listing
type SubmitResponse struct {
	Message string          `json:"message"`
	Listing *domain.Listing `json:"listing,omitempty"`
}

// HandleOpenDraft opens an empty posting session
// @Summary Open a draft
// @Tags drafts
// @Produce json
// @Success 201 {object} DraftResponse
// @Router /drafts [post]
func (h *DraftHandler) HandleOpenDraft(w http.ResponseWriter, r *http.Request) {
	id, state, err := h.service.OpenDraft(r.Context(), "")
	if err != nil {
		respondServiceError(w, r, "Open draft", err)
		return
	}
	respondJSON(w, http.StatusCreated, DraftResponse{DraftID: id, State: state})
}

// HandleGetDraft returns the draft snapshot, missing fields and submitting flag
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id} [get]
func (h *DraftHandler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	state, err := h.service.GetDraft(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get draft", err)
		return
	}
	respondJSON(w, http.StatusOK, DraftResponse{DraftID: id, State: state})
}

// HandleDiscardDraft closes the session
// @Summary Discard a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id} [delete]
func (h *DraftHandler) HandleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DiscardDraft(r.Context(), pathID(r)); err != nil {
		respondServiceError(w, r, "Discard draft", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftDiscarded})
}

// HandleSetFields assigns free-text fields.
// Fields are applied in name order and the first rejected one stops the update.
// @Summary Set draft fields
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body SetFieldsRequest true "Field values"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/fields [patch]
func (h *DraftHandler) HandleSetFields(w http.ResponseWriter, r *http.Request) {
	var req SetFieldsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set fields"); err != nil {
		return
	}

	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	id := pathID(r)
	for _, name := range names {
		if err := h.service.SetField(r.Context(), id, name, req.Fields[name]); err != nil {
			respondServiceError(w, r, "Set field", err)
			return
		}
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftUpdated})
}

// HandleSetCategory selects the draft category
// @Summary Set draft category
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body SetCategoryRequest true "Category"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{id}/category [put]
func (h *DraftHandler) HandleSetCategory(w http.ResponseWriter, r *http.Request) {
	var req SetCategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set category"); err != nil {
		return
	}
	if err := h.service.SetCategory(r.Context(), pathID(r), req.Category); err != nil {
		respondServiceError(w, r, "Set category", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftUpdated})
}

// HandleSetCondition selects the draft condition
// @Summary Set draft condition
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body SetConditionRequest true "Condition"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{id}/condition [put]
func (h *DraftHandler) HandleSetCondition(w http.ResponseWriter, r *http.Request) {
	var req SetConditionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set condition"); err != nil {
		return
	}
	if err := h.service.SetCondition(r.Context(), pathID(r), req.Condition); err != nil {
		respondServiceError(w, r, "Set condition", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftUpdated})
}

// HandleSetAgeGroup selects the draft age group
// @Summary Set draft age group
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body SetAgeGroupRequest true "Age group"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{id}/age-group [put]
func (h *DraftHandler) HandleSetAgeGroup(w http.ResponseWriter, r *http.Request) {
	var req SetAgeGroupRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set age group"); err != nil {
		return
	}
	if err := h.service.SetAgeGroup(r.Context(), pathID(r), req.AgeGroup); err != nil {
		respondServiceError(w, r, "Set age group", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftUpdated})
}

// HandleAddImage appends an image reference when a slot is free
// @Summary Add an image reference
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body AddImageRequest true "Image reference"
// @Success 200 {object} AddImageResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/images [post]
func (h *DraftHandler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	var req AddImageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add image"); err != nil {
		return
	}
	added, err := h.service.AddImage(r.Context(), pathID(r), req.Ref)
	if err != nil {
		respondServiceError(w, r, "Add image", err)
		return
	}
	respondJSON(w, http.StatusOK, imageResponse(req.Ref, added))
}

// HandleUploadImage stores a photo in object storage and attaches it
// @Summary Upload an image
// @Tags drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param image formData file true "Photo"
// @Success 201 {object} AddImageResponse
// @Success 200 {object} AddImageResponse "All slots in use"
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Router /drafts/{id}/images/upload [post]
func (h *DraftHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	const limit = listing.MaxImageUploadBytes + uploadOverhead
	if r.ContentLength > limit {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgUploadTooBig)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(MaxUploadMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgUploadTooBig)
			return
		}
		log.Warn("Failed to parse upload", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := listing.AllowedImageTypes[contentType]; !ok {
		// Clients often send application/octet-stream; trust the bytes instead
		sniff := make([]byte, 512)
		n, _ := file.Read(sniff)
		contentType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			respondServiceError(w, r, "Upload image", err)
			return
		}
	}

	ref, added, err := h.service.UploadImage(r.Context(), pathID(r), listing.ImageUpload{
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondServiceError(w, r, "Upload image", err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	respondJSON(w, status, imageResponse(ref, added))
}

// HandleRemoveImage frees the image slot at {index}
// @Summary Remove an image
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Image position"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{id}/images/{index} [delete]
func (h *DraftHandler) HandleRemoveImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, PathParamIndex))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIndex)
		return
	}
	if err := h.service.RemoveImage(r.Context(), pathID(r), index); err != nil {
		respondServiceError(w, r, "Remove image", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImageRemoved})
}

// HandleValidate reports the missing required fields without submitting
// @Summary Validate a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} ValidateResponse
// @Router /drafts/{id}/validate [get]
func (h *DraftHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	missing, err := h.service.Validate(r.Context(), pathID(r))
	if err != nil {
		respondServiceError(w, r, "Validate draft", err)
		return
	}
	resp := ValidateResponse{Valid: len(missing) == 0, Missing: missing, Message: MsgDraftComplete}
	if resp.Missing == nil {
		resp.Missing = []string{}
	}
	if !resp.Valid {
		resp.Message = MsgDraftIncomplete
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleSubmit posts the draft. With ?async=true the backend call is queued and 202 is returned.
// @Summary Submit a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param async query bool false "Queue the submission"
// @Success 201 {object} SubmitResponse
// @Success 202 {object} SubmitResponse
// @Failure 409 {object} ErrorResponse "Submission in progress"
// @Failure 422 {object} ErrorResponse "Missing fields"
// @Failure 502 {object} ErrorResponse "Backend rejected the listing"
// @Failure 503 {object} ErrorResponse "Submission queue full"
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	async, ok := GetOptionalBoolQueryParam(r, w, QueryParamAsync, ErrMsgInvalidAsyncFlag)
	if !ok {
		return
	}

	id := pathID(r)
	if async {
		if err := h.service.QueueSubmit(r.Context(), id); err != nil {
			respondServiceError(w, r, "Queue submission", err)
			return
		}
		respondJSON(w, http.StatusAccepted, SubmitResponse{Message: MsgSubmissionQueued})
		return
	}

	posted, err := h.service.Submit(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Submit draft", err)
		return
	}
	respondJSON(w, http.StatusCreated, SubmitResponse{Message: MsgListingPosted, Listing: posted})
}

func imageResponse(ref string, added bool) AddImageResponse {
	if !added {
		return AddImageResponse{Message: MsgImageSlotsFull}
	}
	return AddImageResponse{Message: MsgImageAdded, Added: true, Ref: ref}
}
