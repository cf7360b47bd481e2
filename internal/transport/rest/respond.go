package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// envelope is the uniform response shape of the JSON API.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeDataMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// handleError maps domain errors to HTTP statuses. Policy and validation
// rejections carry their user-facing message through; everything else is
// logged and hidden behind a generic 500.
func handleError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, userMessage(err, "cerere invalidă"))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, userMessage(err, "autentificare necesară"))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, userMessage(err, "acces interzis"))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "nu a fost găsit")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, userMessage(err, "există deja"))
	case errors.Is(err, domain.ErrRateLimited), errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusTooManyRequests, userMessage(err, "prea multe cereri"))
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, userMessage(err, "serviciu indisponibil"))
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "eroare internă")
	}
}

// userMessage extracts a message safe to show users: the reason of a
// policy rejection or the field message of a validation error. Wrapped
// infrastructure errors fall back to the generic text.
func userMessage(err error, fallback string) string {
	var policyErr *domain.PolicyError
	if errors.As(err, &policyErr) {
		return policyErr.Reason
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Errors) > 0 {
		return validationErr.Errors[0].Message
	}
	return fallback
}
