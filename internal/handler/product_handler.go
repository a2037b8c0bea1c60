package handler

import (
	"net/http"
	"strings"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.service.Products(r.Context()), http.StatusOK, h.logger)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "product ID is required", h.logger)
		return
	}

	respond(w, r, h.service.Product(r.Context(), id), http.StatusOK, h.logger)
}

// ByCategory handles GET /api/products/category/{category} requests. An
// unknown category answers an empty list, the same as the static backend.
func (h *ProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "category")
	category, err := model.ParseCategory(raw)
	if err != nil {
		h.logger.Debug().Str("category", raw).Msg("unknown category requested")
		category = model.Category(raw)
	}

	respond(w, r, h.service.ProductsByCategory(r.Context(), category), http.StatusOK, h.logger)
}

// Search handles GET /api/products/search?q= requests. A blank query
// yields an empty list.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.service.Search(r.Context(), r.URL.Query().Get("q")), http.StatusOK, h.logger)
}
