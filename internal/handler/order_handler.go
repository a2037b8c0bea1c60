package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"
	"alloy-catalog/internal/validation"

	"github.com/rs/zerolog"
)

const maxOrderBody = 64 << 10

// OrderHandler handles order inquiry HTTP requests.
type OrderHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.CatalogService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOrderBody)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := validation.ValidateOrder(&req); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			writeErrorResponse(w, r, http.StatusBadRequest, model.ErrorResponse{
				Error:   model.ErrCodeValidation,
				Message: "invalid order request",
				Fields:  fields,
			}, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, model.MsgOrderFailed, h.logger)
		return
	}

	respond(w, r, h.service.PlaceOrder(r.Context(), &req), http.StatusCreated, h.logger)
}
