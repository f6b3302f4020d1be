package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-desk/internal/middleware"
	"order-desk/internal/model"
	"order-desk/internal/repository"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// writeError writes a standardised error body and logs it.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.CorrelationIDFrom(r.Context()),
	})
}

// writeServiceError maps service-layer errors onto HTTP responses. Upstream
// failures surface as 502 with a notification-friendly body; domain errors
// keep their code.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	switch {
	case errors.As(err, &domainErr):
		status := http.StatusBadRequest
		if domainErr.Code == model.ErrCodeUpdateInFlight {
			status = http.StatusConflict
		}
		writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
	case errors.Is(err, repository.ErrOrderNotFound):
		writeError(w, r, http.StatusNotFound, model.ErrCodeOrderNotFound, "Order not found", logger)
	case errors.Is(err, repository.ErrNoToken):
		writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Missing bearer token", logger)
	default:
		var upstream *repository.UpstreamError
		if errors.As(err, &upstream) {
			writeError(w, r, http.StatusBadGateway, model.ErrCodeUpstreamFailure, "Orders API request failed", logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "Internal error", logger)
	}
}
