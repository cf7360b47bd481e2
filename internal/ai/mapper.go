package ai

import (
	"time"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ToWordEntry converts a validated analysis into a dictionary entry.
// key is the canonical key the caller looked up; display is the original
// user input before normalization. The caller is responsible for having
// validated the analysis first.
func ToWordEntry(a *WordAnalysis, key, display, aiVersion string, discoveredBy *uuid.UUID, now time.Time) *domain.WordEntry {
	examples := make([]domain.Example, 0, len(a.Examples))
	for _, text := range a.Examples {
		examples = append(examples, domain.Example{
			Text:   text,
			Source: domain.ExampleSourceAI,
		})
	}

	entry := &domain.WordEntry{
		Key:          key,
		Lemma:        a.Lemma,
		Display:      display,
		PartOfSpeech: a.PartOfSpeech,

		Definitions:  a.Definitions,
		Examples:     examples,
		Synonyms:     a.Synonyms,
		Antonyms:     a.Antonyms,
		RelatedWords: a.RelatedWords,

		Pronunciation: a.Pronunciation,
		Syllables:     a.Syllables,
		Etymology:     a.Etymology,
		Tags:          a.Tags,

		NounForms:      a.NounForms,
		VerbForms:      a.VerbForms,
		AdjectiveForms: a.AdjectiveForms,

		Translations: a.Translations,
		Collocations: a.Collocations,
		UsageNotes:   a.UsageNotes,

		FrequencyLevel:  a.FrequencyLevel,
		DifficultyLevel: a.DifficultyLevel,

		CreatedBy:       domain.WordOriginAI,
		CreatedByUserID: discoveredBy,
		AIVersion:       &aiVersion,
		CreatedAt:       now,
	}
	return entry
}
