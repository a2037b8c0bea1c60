package handler

import (
	"net/http"
	"strconv"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxInquiryLimit = 500

// InquiryHandler lists recorded order inquiries.
type InquiryHandler struct {
	repo   repository.InquiryRepository
	logger zerolog.Logger
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(repo repository.InquiryRepository, logger zerolog.Logger) *InquiryHandler {
	return &InquiryHandler{
		repo:   repo,
		logger: logger.With().Str("handler", "inquiry").Logger(),
	}
}

// List handles GET /api/inquiries?limit= requests.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxInquiryLimit {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid limit parameter", h.logger)
			return
		}
	}

	inquiries, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, model.MsgLoadFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, inquiries)
}

// Get handles GET /api/inquiries/{id} requests.
func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid inquiry ID", h.logger)
		return
	}

	inquiry, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, model.MsgLoadFailed, h.logger)
		return
	}
	if inquiry == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "inquiry not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, inquiry)
}
