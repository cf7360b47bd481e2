package ai

import (
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// WordAnalysis is the structured record the generation model must return.
// Field names mirror the JSON contract in the prompt.
type WordAnalysis struct {
	Lemma        string              `json:"lemma"`
	PartOfSpeech domain.PartOfSpeech `json:"partOfSpeech"`
	Definitions  []domain.Definition `json:"definitions"`
	Examples     []string            `json:"examples"`
	Synonyms     []string            `json:"synonyms"`
	Antonyms     []string            `json:"antonyms"`
	RelatedWords []string            `json:"relatedWords"`

	Etymology     string   `json:"etymology"`
	Pronunciation string   `json:"pronunciation"`
	Syllables     []string `json:"syllables"`
	Tags          []string `json:"tags"`

	NounForms      *domain.NounForms      `json:"nounForms,omitempty"`
	VerbForms      *domain.VerbForms      `json:"verbForms,omitempty"`
	AdjectiveForms *domain.AdjectiveForms `json:"adjectiveForms,omitempty"`

	Translations []domain.WordTranslation `json:"translations,omitempty"`
	Collocations []domain.Collocation     `json:"collocations,omitempty"`
	UsageNotes   []domain.UsageNote       `json:"usageNotes,omitempty"`

	FrequencyLevel  *domain.FrequencyLevel  `json:"frequencyLevel,omitempty"`
	DifficultyLevel *domain.DifficultyLevel `json:"difficultyLevel,omitempty"`

	IsValid    bool    `json:"isValid"`
	Confidence float64 `json:"confidence"`
}

// Validate checks the analysis against the output contract. Any violation
// makes the whole record untrusted; callers must never persist a record
// that failed validation.
//
// The business confidence threshold is NOT enforced here — only the
// numeric range. Callers decide what confidence they require.
func (a *WordAnalysis) Validate() error {
	if a.Lemma == "" {
		return fmt.Errorf("lemma is empty")
	}
	if !a.PartOfSpeech.IsValid() {
		return fmt.Errorf("invalid part of speech %q", a.PartOfSpeech)
	}
	if len(a.Definitions) == 0 {
		return fmt.Errorf("no definitions")
	}
	for i, d := range a.Definitions {
		if d.ShortText == "" {
			return fmt.Errorf("definition %d has empty short text", i)
		}
	}
	if a.Examples == nil {
		return fmt.Errorf("examples list missing")
	}
	if a.Synonyms == nil || a.Antonyms == nil || a.RelatedWords == nil {
		return fmt.Errorf("relation lists missing")
	}
	if a.Etymology == "" {
		return fmt.Errorf("etymology is empty")
	}
	if a.Pronunciation == "" {
		return fmt.Errorf("pronunciation is empty")
	}
	if a.Syllables == nil {
		return fmt.Errorf("syllables list missing")
	}
	if a.Tags == nil {
		return fmt.Errorf("tags list missing")
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return fmt.Errorf("confidence %v outside [0,1]", a.Confidence)
	}

	for i, tr := range a.Translations {
		if !tr.Language.IsValid() {
			return fmt.Errorf("translation %d has unsupported language %q", i, tr.Language)
		}
		if tr.Word == "" {
			return fmt.Errorf("translation %d has empty word", i)
		}
	}
	for i, n := range a.UsageNotes {
		if !n.Type.IsValid() {
			return fmt.Errorf("usage note %d has invalid type %q", i, n.Type)
		}
	}
	if a.FrequencyLevel != nil && !a.FrequencyLevel.IsValid() {
		return fmt.Errorf("invalid frequency level %q", *a.FrequencyLevel)
	}
	if a.DifficultyLevel != nil && !a.DifficultyLevel.IsValid() {
		return fmt.Errorf("invalid difficulty level %q", *a.DifficultyLevel)
	}

	return nil
}
