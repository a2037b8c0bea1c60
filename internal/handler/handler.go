package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already sent.
		return
	}
}

// writeError writes the error envelope with the request id attached.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	writeErrorResponse(w, r, status, model.ErrorResponse{Error: code, Message: message}, logger)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, body model.ErrorResponse, logger zerolog.Logger) {
	body.RequestID = chimw.GetReqID(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("request_id", body.RequestID).
		Str("code", body.Error).
		Str("error", body.Message).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, body)
}

// respond waits for the terminal state of stream and renders it.
// Success is written with status ok; not-found maps to 404 and any other
// failure to 500.
func respond[T any](w http.ResponseWriter, r *http.Request, stream <-chan service.Result[T], ok int, logger zerolog.Logger) {
	result := service.Await(r.Context(), stream)

	service.Match(result,
		func() struct{} {
			writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, model.MsgLoadFailed, logger)
			return struct{}{}
		},
		func(v T) struct{} {
			writeJSON(w, ok, v)
			return struct{}{}
		},
		func(qe *service.QueryError) struct{} {
			status, code := classify(qe)
			writeError(w, r, status, code, qe.Message, logger)
			return struct{}{}
		},
	)
}

func classify(qe *service.QueryError) (int, string) {
	if qe.NotFound() {
		return http.StatusNotFound, model.ErrCodeProductNotFound
	}

	var de *model.DomainError
	if errors.As(qe, &de) && de.Code != "" {
		return http.StatusInternalServerError, de.Code
	}
	return http.StatusInternalServerError, model.ErrCodeInternalError
}

// NotFound answers requests that match no route.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "route not found", logger)
	}
}

// MethodNotAllowed answers requests whose route exists for other methods.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", logger)
	}
}
