package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single user's vote on a word. Identity is the (WordKey, UserID)
// pair; casting a different kind updates the record in place, casting a nil
// kind deletes it. Every mutation of a Vote must be paired with the matching
// counter adjustment on the owning WordEntry.
type Vote struct {
	WordKey   string
	UserID    uuid.UUID
	Kind      VoteKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CounterDeltas computes the per-counter adjustments for a vote transition
// from oldKind to newKind. A nil kind means no vote on that side.
func CounterDeltas(oldKind, newKind *VoteKind) VoteCounts {
	var d VoteCounts
	if oldKind != nil {
		d.add(*oldKind, -1)
	}
	if newKind != nil {
		d.add(*newKind, 1)
	}
	return d
}

func (c *VoteCounts) add(kind VoteKind, delta int) {
	switch kind {
	case VoteKindLike:
		c.Likes += delta
	case VoteKindDislike:
		c.Dislikes += delta
	case VoteKindValidate:
		c.Validations += delta
	case VoteKindReportError:
		c.Errors += delta
	}
}

// IsZero reports whether no counter would change.
func (c VoteCounts) IsZero() bool {
	return c.Likes == 0 && c.Dislikes == 0 && c.Validations == 0 && c.Errors == 0
}

// ConsensusThresholds are the counters at which community verification
// flips. Deterministic: an entry can gain and lose verified status
// repeatedly as votes change.
type ConsensusThresholds struct {
	MinValidations int
	MaxErrors      int
}

// MeetsConsensus reports whether the counts satisfy community verification:
// validations at or above the floor while errors stay below the ceiling.
func (t ConsensusThresholds) MeetsConsensus(c VoteCounts) bool {
	return c.Validations >= t.MinValidations && c.Errors < t.MaxErrors
}
