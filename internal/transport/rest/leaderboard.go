package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// pointsService defines the points operations the handler needs.
type pointsService interface {
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
}

// LeaderboardHandler serves the contributor ranking endpoint.
type LeaderboardHandler struct {
	points pointsService
	log    *slog.Logger
}

// NewLeaderboardHandler creates a LeaderboardHandler.
func NewLeaderboardHandler(svc pointsService, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		points: svc,
		log:    logger.With("handler", "leaderboard"),
	}
}

type leaderboardRowResponse struct {
	UserID          string  `json:"userId"`
	DisplayName     string  `json:"displayName"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	TotalPoints     float64 `json:"totalPoints"`
	WordsDiscovered int     `json:"wordsDiscovered"`
	Rank            int     `json:"rank"`
}

// Top returns the highest ranked contributors. Limit defaults to 10,
// capped at 100 by the service.
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit trebuie să fie un număr")
			return
		}
		limit = n
	}

	rows, err := h.points.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]leaderboardRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboardRowResponse{
			UserID:          row.UserID.String(),
			DisplayName:     row.DisplayName,
			AvatarURL:       row.AvatarURL,
			TotalPoints:     row.TotalPoints,
			WordsDiscovered: row.WordsDiscovered,
			Rank:            row.Rank,
		})
	}
	writeData(w, http.StatusOK, out)
}
