package domain

import "testing"

func kindPtr(k VoteKind) *VoteKind { return &k }

func TestCounterDeltas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		oldKind *VoteKind
		newKind *VoteKind
		want    VoteCounts
	}{
		{
			name:    "first vote increments one counter",
			newKind: kindPtr(VoteKindLike),
			want:    VoteCounts{Likes: 1},
		},
		{
			name:    "switch like to dislike pairs the adjustments",
			oldKind: kindPtr(VoteKindLike),
			newKind: kindPtr(VoteKindDislike),
			want:    VoteCounts{Likes: -1, Dislikes: 1},
		},
		{
			name:    "retraction only decrements",
			oldKind: kindPtr(VoteKindValidate),
			want:    VoteCounts{Validations: -1},
		},
		{
			name:    "same kind nets to zero",
			oldKind: kindPtr(VoteKindReportError),
			newKind: kindPtr(VoteKindReportError),
			want:    VoteCounts{},
		},
		{
			name: "no old no new",
			want: VoteCounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CounterDeltas(tt.oldKind, tt.newKind)
			if got != tt.want {
				t.Errorf("CounterDeltas() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVoteCounts_IsZero(t *testing.T) {
	t.Parallel()

	if !(VoteCounts{}).IsZero() {
		t.Error("empty counts should be zero")
	}
	if (VoteCounts{Likes: -1, Dislikes: 1}).IsZero() {
		t.Error("non-empty counts should not be zero")
	}
}

func TestConsensusThresholds_MeetsConsensus(t *testing.T) {
	t.Parallel()

	th := ConsensusThresholds{MinValidations: 5, MaxErrors: 3}

	tests := []struct {
		name   string
		counts VoteCounts
		want   bool
	}{
		{name: "below validation floor", counts: VoteCounts{Validations: 4}, want: false},
		{name: "at validation floor", counts: VoteCounts{Validations: 5}, want: true},
		{name: "above floor few errors", counts: VoteCounts{Validations: 8, Errors: 2}, want: true},
		{name: "error ceiling reached", counts: VoteCounts{Validations: 8, Errors: 3}, want: false},
		{name: "likes are irrelevant", counts: VoteCounts{Likes: 100, Validations: 4}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := th.MeetsConsensus(tt.counts); got != tt.want {
				t.Errorf("MeetsConsensus(%+v) = %v, want %v", tt.counts, got, tt.want)
			}
		})
	}
}
