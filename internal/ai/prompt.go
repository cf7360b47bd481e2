package ai

import "fmt"

// buildPrompt creates the analysis prompt for a single word. The model is
// instructed to always answer with one JSON object matching the
// WordAnalysis contract and to self-report invalid words via isValid.
func buildPrompt(word string) string {
	return fmt.Sprintf(`Ești un asistent pentru analiză de cuvinte românești. Primești un cuvânt și trebuie să-l analizezi în detaliu.

IMPORTANT:
1. Verifică dacă cuvântul este valid în limba română
2. Returnează ÎNTOTDEAUNA un JSON valid, exact în acest format
3. Dacă cuvântul nu este valid sau nu este românesc, setează "isValid": false și "confidence": 0.0

Format JSON necesar:
{
  "lemma": "forma de dicționar",
  "partOfSpeech": "substantiv|verb|adjectiv|adverb|pronume|prepozitie|conjunctie|interjectie",
  "definitions": [
    {"shortDef": "Definiție scurtă", "longDef": "Definiție detaliată (opțional)", "register": "curent|arhaic|regional|argou|neologism (opțional)", "domain": "juridic|medical|tehnic|etc. (opțional)"}
  ],
  "examples": ["Exemplu 1", "Exemplu 2", "Exemplu 3"],
  "synonyms": ["sinonim1", "sinonim2"],
  "antonyms": ["antonim1", "antonim2"],
  "relatedWords": ["cuvânt înrudit1", "cuvânt înrudit2"],
  "etymology": "Etimologia cuvântului",
  "pronunciation": "pronunție fonetică",
  "syllables": ["si", "la", "be"],
  "tags": ["neologism", "argou"],
  "nounForms": {"singularIndefinit": "...", "singularDefinit": "...", "pluralIndefinit": "...", "pluralDefinit": "...", "genitivDativSingular": "...", "genitivDativPlural": "..."},
  "verbForms": {"infinitiv": "...", "participiu": "...", "gerunziu": "...", "supin": "...", "indicativPrezent": {"eu": "...", "tu": "...", "el": "...", "noi": "...", "voi": "...", "ei": "..."}},
  "adjectiveForms": {"masculinSingular": "...", "femininSingular": "...", "neutruSingular": "...", "plural": "..."},
  "translations": [{"language": "en|fr|es|de|hu", "word": "...", "note": "opțional"}],
  "collocations": [{"phrase": "...", "meaning": "..."}],
  "usageNotes": [{"type": "grammar|register|common_mistake|context", "note": "..."}],
  "frequencyLevel": "very_rare|rare|common|very_common",
  "difficultyLevel": "A1|A2|B1|B2|C1|C2",
  "isValid": true,
  "confidence": 0.95
}

Include nounForms doar pentru substantive, verbForms doar pentru verbe, adjectiveForms doar pentru adjective. Returnează DOAR obiectul JSON, fără markdown și fără explicații.

Analizează cuvântul următor: %s`, word)
}
