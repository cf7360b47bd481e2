package ai

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

const validAnswer = `{
	"lemma": "carte",
	"partOfSpeech": "substantiv",
	"definitions": [{"shortDef": "Scriere tipărită legată în volum"}],
	"examples": ["Am citit o carte bună."],
	"synonyms": ["volum"],
	"antonyms": [],
	"relatedWords": ["bibliotecă"],
	"etymology": "Din latinescul charta",
	"pronunciation": "CAR-te",
	"syllables": ["car", "te"],
	"tags": ["comun"],
	"isValid": true,
	"confidence": 0.95
}`

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "markdown fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding prose", in: "Iată analiza: {\"a\":1} Sper că ajută.", want: `{"a":1}`},
		{name: "no object", in: "nu pot analiza acest cuvânt", wantErr: true},
		{name: "only opening brace", in: "{broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSON: %v", err)
			}
			if got != tt.want {
				t.Fatalf("extractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("valid answer", func(t *testing.T) {
		t.Parallel()
		a, err := parseAnalysis(validAnswer)
		if err != nil {
			t.Fatalf("parseAnalysis: %v", err)
		}
		if a.Lemma != "carte" || a.Confidence != 0.95 || !a.IsValid {
			t.Fatalf("unexpected analysis: %+v", a)
		}
	})

	t.Run("self-reported non-word skips schema checks", func(t *testing.T) {
		t.Parallel()
		a, err := parseAnalysis(`{"isValid": false, "confidence": 0.0}`)
		if err != nil {
			t.Fatalf("parseAnalysis: %v", err)
		}
		if a.IsValid {
			t.Fatal("IsValid should be false")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := parseAnalysis(`{"lemma": `)
		if !errors.Is(err, ErrInvalidAnalysis) {
			t.Fatalf("err = %v, want ErrInvalidAnalysis", err)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		t.Parallel()
		broken := strings.Replace(validAnswer, `"confidence": 0.95`, `"confidence": 1.4`, 1)
		_, err := parseAnalysis(broken)
		if !errors.Is(err, ErrInvalidAnalysis) {
			t.Fatalf("err = %v, want ErrInvalidAnalysis", err)
		}
	})
}

func TestWordAnalysis_Validate(t *testing.T) {
	t.Parallel()

	base := func() WordAnalysis {
		return WordAnalysis{
			Lemma:         "carte",
			PartOfSpeech:  domain.PartOfSpeechSubstantiv,
			Definitions:   []domain.Definition{{ShortText: "Scriere tipărită"}},
			Examples:      []string{"Am citit o carte."},
			Synonyms:      []string{},
			Antonyms:      []string{},
			RelatedWords:  []string{},
			Etymology:     "lat. charta",
			Pronunciation: "CAR-te",
			Syllables:     []string{"car", "te"},
			Tags:          []string{},
			IsValid:       true,
			Confidence:    0.9,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*WordAnalysis)
		wantErr bool
	}{
		{name: "complete", mutate: func(*WordAnalysis) {}},
		{name: "empty lemma", mutate: func(a *WordAnalysis) { a.Lemma = "" }, wantErr: true},
		{name: "bad part of speech", mutate: func(a *WordAnalysis) { a.PartOfSpeech = "noun" }, wantErr: true},
		{name: "no definitions", mutate: func(a *WordAnalysis) { a.Definitions = nil }, wantErr: true},
		{name: "empty short def", mutate: func(a *WordAnalysis) { a.Definitions[0].ShortText = "" }, wantErr: true},
		{name: "missing examples", mutate: func(a *WordAnalysis) { a.Examples = nil }, wantErr: true},
		{name: "missing synonyms", mutate: func(a *WordAnalysis) { a.Synonyms = nil }, wantErr: true},
		{name: "empty etymology", mutate: func(a *WordAnalysis) { a.Etymology = "" }, wantErr: true},
		{name: "confidence above one", mutate: func(a *WordAnalysis) { a.Confidence = 1.01 }, wantErr: true},
		{name: "confidence below zero", mutate: func(a *WordAnalysis) { a.Confidence = -0.1 }, wantErr: true},
		{
			name: "unsupported translation language",
			mutate: func(a *WordAnalysis) {
				a.Translations = []domain.WordTranslation{{Language: "jp", Word: "hon"}}
			},
			wantErr: true,
		},
		{
			name: "supported translation language",
			mutate: func(a *WordAnalysis) {
				a.Translations = []domain.WordTranslation{{Language: domain.LanguageEnglish, Word: "book"}}
			},
		},
		{
			name: "bad usage note type",
			mutate: func(a *WordAnalysis) {
				a.UsageNotes = []domain.UsageNote{{Type: "style", Note: "..."}}
			},
			wantErr: true,
		},
		{
			name: "bad difficulty level",
			mutate: func(a *WordAnalysis) {
				lvl := domain.DifficultyLevel("D1")
				a.DifficultyLevel = &lvl
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := base()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestToWordEntry(t *testing.T) {
	t.Parallel()

	a, err := parseAnalysis(validAnswer)
	if err != nil {
		t.Fatalf("parseAnalysis: %v", err)
	}

	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := ToWordEntry(a, "carte", "Carte", "claude-sonnet-4-5", &userID, now)

	if entry.Key != "carte" || entry.Display != "Carte" || entry.Lemma != "carte" {
		t.Fatalf("identity fields wrong: %+v", entry)
	}
	if entry.CreatedBy != domain.WordOriginAI {
		t.Fatalf("CreatedBy = %q, want ai", entry.CreatedBy)
	}
	if entry.CreatedByUserID == nil || *entry.CreatedByUserID != userID {
		t.Fatal("discoverer not recorded")
	}
	if entry.AIVersion == nil || *entry.AIVersion != "claude-sonnet-4-5" {
		t.Fatal("AI version not recorded")
	}
	if len(entry.Examples) != 1 || entry.Examples[0].Source != domain.ExampleSourceAI {
		t.Fatalf("examples not mapped with AI provenance: %+v", entry.Examples)
	}
	if entry.Verified || entry.CommunityVerified {
		t.Fatal("new entries start unverified")
	}
	if !entry.Counts.IsZero() {
		t.Fatal("new entries start with zero counters")
	}
}
