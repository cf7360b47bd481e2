package domain

import "testing"

func TestVoteKind_IsValid(t *testing.T) {
	t.Parallel()

	valid := []VoteKind{VoteKindLike, VoteKindDislike, VoteKindValidate, VoteKindReportError}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("%s should be valid", k)
		}
	}
	for _, k := range []VoteKind{"", "upvote", "LIKE"} {
		if k.IsValid() {
			t.Errorf("%q should be invalid", k)
		}
	}
}

func TestContributionKind_Points(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind ContributionKind
		want float64
	}{
		{ContributionDiscovery, 1.0},
		{ContributionExampleAdd, 0.5},
		{ContributionSynonymAdd, 0.5},
		{ContributionAntonymAdd, 0.5},
		{ContributionDefinitionEnhance, 0.7},
		{ContributionReportError, 0.0},
	}

	for _, tt := range tests {
		if got := tt.kind.Points(); got != tt.want {
			t.Errorf("%s.Points() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestPartOfSpeech_IsValid(t *testing.T) {
	t.Parallel()

	if !PartOfSpeechSubstantiv.IsValid() {
		t.Error("substantiv should be valid")
	}
	if PartOfSpeech("noun").IsValid() {
		t.Error("english tag should be invalid")
	}
}

func TestTranslationLanguage_IsValid(t *testing.T) {
	t.Parallel()

	for _, l := range []TranslationLanguage{LanguageEnglish, LanguageFrench, LanguageSpanish, LanguageGerman, LanguageHungarian} {
		if !l.IsValid() {
			t.Errorf("%s should be valid", l)
		}
	}
	if TranslationLanguage("it").IsValid() {
		t.Error("it is outside the bounded language set")
	}
}

func TestWordOrigin_IsValid(t *testing.T) {
	t.Parallel()

	for _, o := range []WordOrigin{WordOriginAI, WordOriginUser, WordOriginImport} {
		if !o.IsValid() {
			t.Errorf("%s should be valid", o)
		}
	}
	if WordOrigin("bot").IsValid() {
		t.Error("bot should be invalid")
	}
}
