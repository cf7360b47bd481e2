package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordEntry is a dictionary entry. Its identity is the canonical key:
// the normalized, diacritic-stripped, hyphenated form of the lemma.
// Exactly one entry exists per key; entries are created once and only
// mutated afterwards (vote counters, verification flags, regenerated
// content) — never deleted.
type WordEntry struct {
	Key          string
	Lemma        string
	Display      string
	PartOfSpeech PartOfSpeech

	Definitions  []Definition
	Examples     []Example
	Synonyms     []string
	Antonyms     []string
	RelatedWords []string

	Pronunciation string
	Syllables     []string
	Etymology     string
	Tags          []string

	NounForms      *NounForms
	VerbForms      *VerbForms
	AdjectiveForms *AdjectiveForms

	Translations []WordTranslation
	Collocations []Collocation
	UsageNotes   []UsageNote

	FrequencyLevel  *FrequencyLevel
	DifficultyLevel *DifficultyLevel

	CreatedBy       WordOrigin
	CreatedByUserID *uuid.UUID
	AIVersion       *string
	CreatedAt       time.Time

	Verified          bool
	CommunityVerified bool

	Counts VoteCounts

	RegenerationCount int
	LastRegeneratedAt *time.Time
}

// VoteCounts holds the aggregate vote counters of a word.
// All counters are non-negative.
type VoteCounts struct {
	Likes       int
	Dislikes    int
	Validations int
	Errors      int
}

// Definition is one sense of a word. ShortText is required; the rest is
// optional AI-provided detail.
type Definition struct {
	ShortText string  `json:"shortDef"`
	LongText  *string `json:"longDef,omitempty"`
	Register  *string `json:"register,omitempty"`
	Domain    *string `json:"domain,omitempty"`
}

// Example is a usage example with provenance.
type Example struct {
	Text         string        `json:"text"`
	Source       ExampleSource `json:"source"`
	AuthorUserID *uuid.UUID    `json:"authorUserId,omitempty"`
}

// NounForms is the Romanian noun declension table.
type NounForms struct {
	SingularIndefinit    *string `json:"singularIndefinit,omitempty"`
	SingularDefinit      *string `json:"singularDefinit,omitempty"`
	PluralIndefinit      *string `json:"pluralIndefinit,omitempty"`
	PluralDefinit        *string `json:"pluralDefinit,omitempty"`
	GenitivDativSingular *string `json:"genitivDativSingular,omitempty"`
	GenitivDativPlural   *string `json:"genitivDativPlural,omitempty"`
}

// ConjugationPersons holds one tense/mood row across the six persons.
type ConjugationPersons struct {
	Eu  *string `json:"eu,omitempty"`
	Tu  *string `json:"tu,omitempty"`
	El  *string `json:"el,omitempty"`
	Noi *string `json:"noi,omitempty"`
	Voi *string `json:"voi,omitempty"`
	Ei  *string `json:"ei,omitempty"`
}

// ImperativeForms holds the two imperative persons.
type ImperativeForms struct {
	Tu  *string `json:"tu,omitempty"`
	Voi *string `json:"voi,omitempty"`
}

// VerbForms is the Romanian verb conjugation table.
type VerbForms struct {
	Infinitiv  *string `json:"infinitiv,omitempty"`
	Participiu *string `json:"participiu,omitempty"`
	Gerunziu   *string `json:"gerunziu,omitempty"`
	Supin      *string `json:"supin,omitempty"`

	IndicativPrezent          *ConjugationPersons `json:"indicativPrezent,omitempty"`
	IndicativImperfect        *ConjugationPersons `json:"indicativImperfect,omitempty"`
	IndicativPerfectSimplu    *ConjugationPersons `json:"indicativPerfectSimplu,omitempty"`
	IndicativPerfectCompus    *ConjugationPersons `json:"indicativPerfectCompus,omitempty"`
	IndicativMaiMultCaPerfect *ConjugationPersons `json:"indicativMaiMultCaPerfect,omitempty"`
	IndicativViitor           *ConjugationPersons `json:"indicativViitor,omitempty"`

	ConjunctivPrezent *ConjugationPersons `json:"conjunctivPrezent,omitempty"`
	ConjunctivPerfect *ConjugationPersons `json:"conjunctivPerfect,omitempty"`

	ConditionalPrezent *ConjugationPersons `json:"conditionalPrezent,omitempty"`
	ConditionalPerfect *ConjugationPersons `json:"conditionalPerfect,omitempty"`

	Imperativ *ImperativeForms `json:"imperativ,omitempty"`
}

// AdjectiveForms is the Romanian adjective agreement table.
type AdjectiveForms struct {
	MasculinSingular *string `json:"masculinSingular,omitempty"`
	FemininSingular  *string `json:"femininSingular,omitempty"`
	NeutruSingular   *string `json:"neutruSingular,omitempty"`
	Plural           *string `json:"plural,omitempty"`
}

// WordTranslation is a translation into one of the supported languages.
type WordTranslation struct {
	Language TranslationLanguage `json:"language"`
	Word     string              `json:"word"`
	Note     *string             `json:"note,omitempty"`
}

// Collocation is a common phrase the word appears in.
type Collocation struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
}

// UsageNote is a grammar/register/context note for learners.
type UsageNote struct {
	Type UsageNoteType `json:"type"`
	Note string        `json:"note"`
}

// Suggestion is one autocomplete result.
type Suggestion struct {
	Key          string
	Lemma        string
	Display      string
	PartOfSpeech PartOfSpeech
}
