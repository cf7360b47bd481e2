package domain

// PartOfSpeech represents the grammatical category of a Romanian word.
type PartOfSpeech string

const (
	PartOfSpeechSubstantiv  PartOfSpeech = "substantiv"
	PartOfSpeechVerb        PartOfSpeech = "verb"
	PartOfSpeechAdjectiv    PartOfSpeech = "adjectiv"
	PartOfSpeechAdverb      PartOfSpeech = "adverb"
	PartOfSpeechPronume     PartOfSpeech = "pronume"
	PartOfSpeechPrepozitie  PartOfSpeech = "prepozitie"
	PartOfSpeechConjunctie  PartOfSpeech = "conjunctie"
	PartOfSpeechInterjectie PartOfSpeech = "interjectie"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechSubstantiv, PartOfSpeechVerb, PartOfSpeechAdjectiv,
		PartOfSpeechAdverb, PartOfSpeechPronume, PartOfSpeechPrepozitie,
		PartOfSpeechConjunctie, PartOfSpeechInterjectie:
		return true
	}
	return false
}

// VoteKind is the kind of a community vote on a word.
// Each user holds at most one active vote per word.
type VoteKind string

const (
	VoteKindLike        VoteKind = "like"
	VoteKindDislike     VoteKind = "dislike"
	VoteKindValidate    VoteKind = "validate"
	VoteKindReportError VoteKind = "report_error"
)

func (k VoteKind) String() string { return string(k) }

func (k VoteKind) IsValid() bool {
	switch k {
	case VoteKindLike, VoteKindDislike, VoteKindValidate, VoteKindReportError:
		return true
	}
	return false
}

// ContributionKind is the kind of a point-earning action.
type ContributionKind string

const (
	ContributionDiscovery         ContributionKind = "discovery"
	ContributionExampleAdd        ContributionKind = "example_add"
	ContributionSynonymAdd        ContributionKind = "synonym_add"
	ContributionAntonymAdd        ContributionKind = "antonym_add"
	ContributionDefinitionEnhance ContributionKind = "definition_enhance"
	ContributionReportError       ContributionKind = "report_error"
)

func (k ContributionKind) String() string { return string(k) }

func (k ContributionKind) IsValid() bool {
	switch k {
	case ContributionDiscovery, ContributionExampleAdd, ContributionSynonymAdd,
		ContributionAntonymAdd, ContributionDefinitionEnhance, ContributionReportError:
		return true
	}
	return false
}

// Points returns the point value of the contribution kind.
// Error reports are intentionally unrewarded; they feed quality signals.
func (k ContributionKind) Points() float64 {
	switch k {
	case ContributionDiscovery:
		return 1.0
	case ContributionExampleAdd, ContributionSynonymAdd, ContributionAntonymAdd:
		return 0.5
	case ContributionDefinitionEnhance:
		return 0.7
	default:
		return 0.0
	}
}

// WordOrigin records how a word entry came into existence.
type WordOrigin string

const (
	WordOriginAI     WordOrigin = "ai"
	WordOriginUser   WordOrigin = "user"
	WordOriginImport WordOrigin = "import"
)

func (o WordOrigin) String() string { return string(o) }

func (o WordOrigin) IsValid() bool {
	switch o {
	case WordOriginAI, WordOriginUser, WordOriginImport:
		return true
	}
	return false
}

// ExampleSource is the provenance of a usage example.
type ExampleSource string

const (
	ExampleSourceAI   ExampleSource = "ai"
	ExampleSourceUser ExampleSource = "user"
)

func (s ExampleSource) IsValid() bool {
	return s == ExampleSourceAI || s == ExampleSourceUser
}

// TranslationLanguage is the bounded set of translation target languages.
type TranslationLanguage string

const (
	LanguageEnglish   TranslationLanguage = "en"
	LanguageFrench    TranslationLanguage = "fr"
	LanguageSpanish   TranslationLanguage = "es"
	LanguageGerman    TranslationLanguage = "de"
	LanguageHungarian TranslationLanguage = "hu"
)

func (l TranslationLanguage) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageFrench, LanguageSpanish, LanguageGerman, LanguageHungarian:
		return true
	}
	return false
}

// UsageNoteType classifies a usage note.
type UsageNoteType string

const (
	UsageNoteGrammar       UsageNoteType = "grammar"
	UsageNoteRegister      UsageNoteType = "register"
	UsageNoteCommonMistake UsageNoteType = "common_mistake"
	UsageNoteContext       UsageNoteType = "context"
)

func (t UsageNoteType) IsValid() bool {
	switch t {
	case UsageNoteGrammar, UsageNoteRegister, UsageNoteCommonMistake, UsageNoteContext:
		return true
	}
	return false
}

// FrequencyLevel classifies how common a word is.
type FrequencyLevel string

const (
	FrequencyVeryRare   FrequencyLevel = "very_rare"
	FrequencyRare       FrequencyLevel = "rare"
	FrequencyCommon     FrequencyLevel = "common"
	FrequencyVeryCommon FrequencyLevel = "very_common"
)

func (f FrequencyLevel) IsValid() bool {
	switch f {
	case FrequencyVeryRare, FrequencyRare, FrequencyCommon, FrequencyVeryCommon:
		return true
	}
	return false
}

// DifficultyLevel is the CEFR difficulty classification.
type DifficultyLevel string

const (
	DifficultyA1 DifficultyLevel = "A1"
	DifficultyA2 DifficultyLevel = "A2"
	DifficultyB1 DifficultyLevel = "B1"
	DifficultyB2 DifficultyLevel = "B2"
	DifficultyC1 DifficultyLevel = "C1"
	DifficultyC2 DifficultyLevel = "C2"
)

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyA1, DifficultyA2, DifficultyB1, DifficultyB2, DifficultyC1, DifficultyC2:
		return true
	}
	return false
}

// FlagStatus is the moderation state of a flag.
type FlagStatus string

const (
	FlagStatusOpen     FlagStatus = "open"
	FlagStatusResolved FlagStatus = "resolved"
	FlagStatusRejected FlagStatus = "rejected"
)

func (s FlagStatus) IsValid() bool {
	switch s {
	case FlagStatusOpen, FlagStatusResolved, FlagStatusRejected:
		return true
	}
	return false
}
