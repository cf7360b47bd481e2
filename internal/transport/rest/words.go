package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/internal/service/dictionary"
)

// dictionaryService defines the dictionary operations the handler needs.
type dictionaryService interface {
	Search(ctx context.Context, term string) (*dictionary.SearchResult, error)
	Get(ctx context.Context, term string) (*domain.WordEntry, error)
	Autocomplete(ctx context.Context, prefix string) ([]domain.Suggestion, error)
	Regenerate(ctx context.Context, term string) (*domain.WordEntry, error)
}

// WordHandler serves the dictionary endpoints.
type WordHandler struct {
	dictionary dictionaryService
	log        *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc dictionaryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		dictionary: svc,
		log:        logger.With("handler", "word"),
	}
}

type searchRequest struct {
	Word string `json:"word"`
}

type searchResponse struct {
	Word          *wordResponse `json:"word"`
	IsNew         bool          `json:"isNew"`
	PointsAwarded float64       `json:"pointsAwarded"`
}

// Search looks a word up, generating a new entry when the dictionary
// does not have it yet.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corp JSON invalid")
		return
	}

	result, err := h.dictionary.Search(r.Context(), req.Word)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeDataMessage(w, http.StatusOK, searchResponse{
		Word:          toWordResponse(result.Entry),
		IsNew:         result.IsNew,
		PointsAwarded: result.PointsAwarded,
	}, result.Message)
}

// Get returns an existing entry by word or key. 404 when unknown.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.dictionary.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeData(w, http.StatusOK, toWordResponse(entry))
}

type suggestionResponse struct {
	Key          string `json:"key"`
	Lemma        string `json:"lemma"`
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// Autocomplete returns prefix suggestions for the search box.
func (h *WordHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.dictionary.Autocomplete(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]suggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionResponse{
			Key:          s.Key,
			Lemma:        s.Lemma,
			Word:         s.Display,
			PartOfSpeech: string(s.PartOfSpeech),
		})
	}
	writeData(w, http.StatusOK, out)
}

// Regenerate re-analyzes an existing entry. Development environments only.
func (h *WordHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	entry, err := h.dictionary.Regenerate(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeDataMessage(w, http.StatusOK, toWordResponse(entry), "Cuvântul a fost regenerat.")
}

// wordResponse is the wire form of a dictionary entry.
type wordResponse struct {
	Key          string `json:"key"`
	Word         string `json:"word"`
	Lemma        string `json:"lemma"`
	PartOfSpeech string `json:"partOfSpeech"`

	Definitions  []domain.Definition `json:"definitions"`
	Examples     []domain.Example    `json:"examples"`
	Synonyms     []string            `json:"synonyms"`
	Antonyms     []string            `json:"antonyms"`
	RelatedWords []string            `json:"relatedWords"`

	Pronunciation string   `json:"pronunciation"`
	Syllables     []string `json:"syllables"`
	Etymology     string   `json:"etymology"`
	Tags          []string `json:"tags"`

	NounForms      *domain.NounForms      `json:"nounForms,omitempty"`
	VerbForms      *domain.VerbForms      `json:"verbForms,omitempty"`
	AdjectiveForms *domain.AdjectiveForms `json:"adjectiveForms,omitempty"`

	Translations []domain.WordTranslation `json:"translations"`
	Collocations []domain.Collocation     `json:"collocations"`
	UsageNotes   []domain.UsageNote       `json:"usageNotes"`

	FrequencyLevel  *domain.FrequencyLevel  `json:"frequencyLevel,omitempty"`
	DifficultyLevel *domain.DifficultyLevel `json:"difficultyLevel,omitempty"`

	CreatedBy       string    `json:"createdBy"`
	CreatedByUserID *string   `json:"createdByUserId,omitempty"`
	AIVersion       *string   `json:"aiVersion,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	Verified          bool `json:"verified"`
	CommunityVerified bool `json:"communityVerified"`

	LikesCount       int `json:"likesCount"`
	DislikesCount    int `json:"dislikesCount"`
	ValidationsCount int `json:"validationsCount"`
	ErrorsCount      int `json:"errorsCount"`

	RegenerationCount int        `json:"regenerationCount"`
	LastRegeneratedAt *time.Time `json:"lastRegeneratedAt,omitempty"`
}

func toWordResponse(e *domain.WordEntry) *wordResponse {
	if e == nil {
		return nil
	}
	resp := &wordResponse{
		Key:               e.Key,
		Word:              e.Display,
		Lemma:             e.Lemma,
		PartOfSpeech:      string(e.PartOfSpeech),
		Definitions:       e.Definitions,
		Examples:          e.Examples,
		Synonyms:          e.Synonyms,
		Antonyms:          e.Antonyms,
		RelatedWords:      e.RelatedWords,
		Pronunciation:     e.Pronunciation,
		Syllables:         e.Syllables,
		Etymology:         e.Etymology,
		Tags:              e.Tags,
		NounForms:         e.NounForms,
		VerbForms:         e.VerbForms,
		AdjectiveForms:    e.AdjectiveForms,
		Translations:      e.Translations,
		Collocations:      e.Collocations,
		UsageNotes:        e.UsageNotes,
		FrequencyLevel:    e.FrequencyLevel,
		DifficultyLevel:   e.DifficultyLevel,
		CreatedBy:         string(e.CreatedBy),
		AIVersion:         e.AIVersion,
		CreatedAt:         e.CreatedAt,
		Verified:          e.Verified,
		CommunityVerified: e.CommunityVerified,
		LikesCount:        e.Counts.Likes,
		DislikesCount:     e.Counts.Dislikes,
		ValidationsCount:  e.Counts.Validations,
		ErrorsCount:       e.Counts.Errors,
		RegenerationCount: e.RegenerationCount,
		LastRegeneratedAt: e.LastRegeneratedAt,
	}
	if e.CreatedByUserID != nil {
		id := e.CreatedByUserID.String()
		resp.CreatedByUserID = &id
	}
	return resp
}
