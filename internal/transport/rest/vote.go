package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/internal/service/vote"
)

// voteService defines the voting operations the handler needs.
type voteService interface {
	Cast(ctx context.Context, wordKey string, kind *domain.VoteKind) (*vote.State, error)
	StateFor(ctx context.Context, wordKey string) (*vote.State, error)
}

// VoteHandler serves the voting endpoints.
type VoteHandler struct {
	votes voteService
	log   *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		votes: svc,
		log:   logger.With("handler", "vote"),
	}
}

type castRequest struct {
	// VoteType is null to retract the current vote.
	VoteType *string `json:"voteType"`
}

type voteStateResponse struct {
	WordKey           string  `json:"wordKey"`
	LikesCount        int     `json:"likesCount"`
	DislikesCount     int     `json:"dislikesCount"`
	ValidationsCount  int     `json:"validationsCount"`
	ErrorsCount       int     `json:"errorsCount"`
	UserVote          *string `json:"userVote"`
	Verified          bool    `json:"verified"`
	CommunityVerified bool    `json:"communityVerified"`
}

// Cast records, changes, or retracts the caller's vote on a word.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corp JSON invalid")
		return
	}

	var kind *domain.VoteKind
	if req.VoteType != nil {
		k := domain.VoteKind(*req.VoteType)
		kind = &k
	}

	state, err := h.votes.Cast(r.Context(), r.PathValue("key"), kind)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeData(w, http.StatusOK, toVoteStateResponse(state))
}

// State returns the vote counters and the caller's current vote, if any.
func (h *VoteHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.votes.StateFor(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeData(w, http.StatusOK, toVoteStateResponse(state))
}

func toVoteStateResponse(s *vote.State) voteStateResponse {
	resp := voteStateResponse{
		WordKey:           s.WordKey,
		LikesCount:        s.Counts.Likes,
		DislikesCount:     s.Counts.Dislikes,
		ValidationsCount:  s.Counts.Validations,
		ErrorsCount:       s.Counts.Errors,
		Verified:          s.Verified,
		CommunityVerified: s.CommunityVerified,
	}
	if s.UserVote != nil {
		v := string(*s.UserVote)
		resp.UserVote = &v
	}
	return resp
}
