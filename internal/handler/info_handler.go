package handler

import (
	"net/http"

	"alloy-catalog/internal/service"

	"github.com/rs/zerolog"
)

// InfoHandler serves the contact and home screen content.
type InfoHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(service service.CatalogService, logger zerolog.Logger) *InfoHandler {
	return &InfoHandler{
		service: service,
		logger:  logger.With().Str("handler", "info").Logger(),
	}
}

// Contacts handles GET /api/contacts requests.
func (h *InfoHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.service.ContactInfo(r.Context()), http.StatusOK, h.logger)
}

// Home handles GET /api/home requests.
func (h *InfoHandler) Home(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.service.HomeData(r.Context()), http.StatusOK, h.logger)
}
