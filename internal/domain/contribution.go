package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is one append-only ledger record of a rewarded action.
// Records are never mutated or deleted; the ledger doubles as the audit
// trail and as the source of truth for duplicate-discovery and daily-quota
// checks (always queried, never cached).
type Contribution struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WordKey   string
	Kind      ContributionKind
	Points    float64
	Payload   map[string]any
	CreatedAt time.Time
}

// Flag is a user report that a word entry has a problem.
type Flag struct {
	ID         uuid.UUID
	WordKey    string
	UserID     uuid.UUID
	Reason     string
	Status     FlagStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
	ResolvedBy *uuid.UUID
	Notes      *string
}

// SearchLog records a single search request, found or not.
type SearchLog struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	Term           string
	NormalizedTerm string
	Found          bool
	WordKey        *string
	CreatedAt      time.Time
}
