package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserAccount holds the gamification aggregates of a user. The aggregates
// are a fast-path cache maintained alongside the Contribution ledger; the
// ledger remains the source of truth and aggregates can be recomputed from
// it (see the points service Reconcile operation).
type UserAccount struct {
	ID              uuid.UUID
	DisplayName     string
	AvatarURL       *string
	TotalPoints     float64
	DailyPoints     float64
	WordsDiscovered int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PointsDelta is an atomic aggregate adjustment applied at the storage
// layer in a single update.
type PointsDelta struct {
	Points          float64
	WordsDiscovered int
}

// LeaderboardRow is one ranked leaderboard position.
type LeaderboardRow struct {
	UserID          uuid.UUID
	DisplayName     string
	AvatarURL       *string
	TotalPoints     float64
	WordsDiscovered int
	Rank            int
}
