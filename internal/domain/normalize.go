package domain

import (
	"strings"
	"unicode"
)

// diacriticMap maps the five Romanian diacritic letters to their base
// Latin letters. Both comma-below (U+0218..U+021B) and legacy cedilla
// (U+015E..U+0163) spellings of ș/ț are handled, since user input mixes
// the two.
var diacriticMap = map[rune]rune{
	'ă': 'a', 'â': 'a', 'î': 'i', 'ș': 's', 'ț': 't',
	'ş': 's', 'ţ': 't',
}

// Normalize converts raw search text into the canonical lookup key:
// lowercase, trimmed, diacritics stripped, internal whitespace runs
// collapsed into single hyphens. Total and deterministic for any input;
// Normalize(Normalize(x)) == Normalize(x).
//
// Normalization is intentionally lossy: distinct diacritic spellings
// collide on the same key, which is what makes search diacritic-insensitive.
// The first discovered spelling of a word wins.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune('-')
			continue
		}
		prevSpace = false
		if base, ok := diacriticMap[r]; ok {
			r = base
		}
		b.WriteRune(r)
	}
	return b.String()
}

const (
	minWordLen = 2
	maxWordLen = 50
)

// IsWellFormed reports whether text looks like a Romanian word or phrase:
// 2–50 runes, only Romanian letters, whitespace and hyphens, and at least
// one vowel. It guards every lookup and AI call, keeping junk input from
// reaching the generation service.
func IsWellFormed(text string) bool {
	n := 0
	hasVowel := false
	for _, r := range text {
		n++
		if n > maxWordLen {
			return false
		}
		if !isRomanianLetter(r) && !unicode.IsSpace(r) && r != '-' {
			return false
		}
		if isVowel(r) {
			hasVowel = true
		}
	}
	return n >= minWordLen && hasVowel
}

func isRomanianLetter(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	switch unicode.ToLower(r) {
	case 'ă', 'â', 'î', 'ș', 'ț', 'ş', 'ţ':
		return true
	}
	return false
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'ă', 'â', 'î':
		return true
	}
	return false
}
