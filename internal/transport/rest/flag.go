package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// flagService defines the flagging operations the handler needs.
type flagService interface {
	Submit(ctx context.Context, wordKey, reason string) (*domain.Flag, error)
}

// FlagHandler serves the error-report endpoint.
type FlagHandler struct {
	flags flagService
	log   *slog.Logger
}

// NewFlagHandler creates a FlagHandler.
func NewFlagHandler(svc flagService, logger *slog.Logger) *FlagHandler {
	return &FlagHandler{
		flags: svc,
		log:   logger.With("handler", "flag"),
	}
}

type flagRequest struct {
	Reason string `json:"reason"`
}

type flagResponse struct {
	ID        string `json:"id"`
	WordKey   string `json:"wordKey"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Submit files an error report against a word.
func (h *FlagHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req flagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corp JSON invalid")
		return
	}

	flag, err := h.flags.Submit(r.Context(), r.PathValue("key"), req.Reason)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeDataMessage(w, http.StatusCreated, flagResponse{
		ID:        flag.ID.String(),
		WordKey:   flag.WordKey,
		Status:    string(flag.Status),
		CreatedAt: flag.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, "Mulțumim, raportul tău a fost înregistrat.")
}
