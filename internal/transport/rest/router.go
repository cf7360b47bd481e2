package rest

import (
	"log/slog"
	"net/http"

	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Dictionary  dictionaryService
	Votes       voteService
	Flags       flagService
	Points      pointsService
	DB          dbPinger
	Auth        middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Version     string
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Log         *slog.Logger
}

// NewRouter builds the HTTP handler tree with the shared middleware chain.
// The search endpoint carries an extra per-IP rate limit because it is the
// only one that can trigger paid AI calls.
func NewRouter(deps RouterDeps) http.Handler {
	words := NewWordHandler(deps.Dictionary, deps.Log)
	votes := NewVoteHandler(deps.Votes, deps.Log)
	flags := NewFlagHandler(deps.Flags, deps.Log)
	leaderboard := NewLeaderboardHandler(deps.Points, deps.Log)
	health := NewHealthHandler(deps.DB, deps.Version)

	searchLimit := deps.RateLimiter.Limit(deps.RateLimit.SearchPerMinute)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.Handle("POST /api/words/search", searchLimit(http.HandlerFunc(words.Search)))
	mux.HandleFunc("GET /api/words/autocomplete", words.Autocomplete)
	mux.HandleFunc("GET /api/words/{key}", words.Get)
	mux.HandleFunc("POST /api/words/{key}/regenerate", words.Regenerate)

	mux.HandleFunc("POST /api/words/{key}/vote", votes.Cast)
	mux.HandleFunc("GET /api/words/{key}/vote", votes.State)

	mux.HandleFunc("POST /api/words/{key}/flag", flags.Submit)

	mux.HandleFunc("GET /api/leaderboard", leaderboard.Top)

	return middleware.Chain(
		middleware.Recovery(deps.Log),
		middleware.RequestID,
		middleware.ClientIP,
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Log),
		middleware.Auth(deps.Auth),
	)(mux)
}
