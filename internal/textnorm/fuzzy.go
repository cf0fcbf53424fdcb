package textnorm

import "strings"

// fuzzyWordMatch compares token against whole words and returns the first
// acceptable word in document order. Mismatches are counted as position-wise
// character differences over the overlapping prefix plus the absolute length
// difference. This is deliberately not Levenshtein distance: it is a cheap
// heuristic tuned for single-character OCR substitutions, and the rule
// thresholds were calibrated against it.
func fuzzyWordMatch(token string, words []string, maxDistance int) (string, bool) {
	tokenRunes := []rune(token)
	for _, word := range words {
		wordRunes := []rune(word)
		lenDiff := len(wordRunes) - len(tokenRunes)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}
		minLen := len(tokenRunes)
		if len(wordRunes) < minLen {
			minLen = len(wordRunes)
		}
		mismatches := lenDiff
		for i := 0; i < minLen; i++ {
			if tokenRunes[i] != wordRunes[i] {
				mismatches++
			}
		}
		if mismatches <= maxDistance {
			return word, true
		}
	}
	return "", false
}

// FuzzyTokenMatch reports whether token appears in text, allowing up to
// maxDistance character differences. Exact substring containment always
// matches; otherwise only whole words are considered, so short tokens cannot
// match inside unrelated longer words.
func FuzzyTokenMatch(token, text string, maxDistance int) bool {
	if token == "" || text == "" {
		return false
	}
	if strings.Contains(text, token) {
		return true
	}
	_, ok := fuzzyWordMatch(token, strings.Fields(text), maxDistance)
	return ok
}

// FuzzyTokenFind is like FuzzyTokenMatch but returns the actual word from
// text that matched, so callers can show what OCR produced.
func FuzzyTokenFind(token, text string, maxDistance int) (string, bool) {
	if token == "" || text == "" {
		return "", false
	}
	if strings.Contains(text, token) {
		return token, true
	}
	return fuzzyWordMatch(token, strings.Fields(text), maxDistance)
}
