package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rmarchuk/labelvet/internal/extract"
	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/textnorm"
)

// minUsableTextLen is the shortest trimmed OCR output considered usable
const minUsableTextLen = 5

// ocrEmptyText fails when OCR produced no usable text. The pipeline halts
// after this failure since every later check would spuriously fail too.
func ocrEmptyText(ctx *Context) Outcome {
	if len(strings.TrimSpace(ctx.RawText)) < minUsableTextLen {
		return fail(model.FieldOCR, model.RuleOCREmptyText,
			"OCR produced no usable text from this image.", "")
	}
	return pass("")
}

// declaredTextContains is the shared brand-name/designation algorithm: exact
// containment of the loose-normalized value, or all-but-one of its >=2 char
// tokens fuzzy-matching individually at distance 1.
func declaredTextContains(ctx *Context, declared string) (evidence string, ok bool, snippet string) {
	expected := textnorm.NormalizeLoose(declared)
	snippet = findSnippet(expected, ctx.RawText)

	if strings.Contains(ctx.LooseText, expected) {
		if snippet != "" {
			return snippet, true, snippet
		}
		return declared, true, snippet
	}

	var tokens []string
	for _, t := range strings.Fields(expected) {
		if len(t) >= 2 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return snippet, true, snippet
	}

	hits := 0
	for _, t := range tokens {
		if textnorm.FuzzyTokenMatch(t, ctx.LooseText, 1) {
			hits++
		}
	}
	threshold := len(tokens) - 1
	if threshold < 1 {
		threshold = 1
	}
	if hits >= threshold {
		if snippet != "" {
			return snippet, true, snippet
		}
		return "(fuzzy match)", true, snippet
	}

	return "", false, snippet
}

func brandNameContains(ctx *Context) Outcome {
	evidence, ok, snippet := declaredTextContains(ctx, ctx.Form.BrandName)
	if ok {
		return pass(evidence)
	}
	found := snippet
	if found == "" {
		found = "Not detected"
	}
	return fail(model.FieldBrandName, model.RuleBrandNameContains,
		"Brand name not found or does not match.", found)
}

func designationContains(ctx *Context) Outcome {
	evidence, ok, snippet := declaredTextContains(ctx, ctx.Form.ClassTypeDesignation)
	if ok {
		return pass(evidence)
	}
	found := snippet
	if found == "" {
		found = "Not detected"
	}
	return fail(model.FieldClassType, model.RuleDesignationContains,
		"Class/type designation not found or does not match.", found)
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// netContentsPresent checks the declared net contents against every candidate
// the extractor found: loose containment in either direction, space-stripped
// equality, then digit-only equality.
func netContentsPresent(ctx *Context) Outcome {
	candidates := ctx.Facts.Candidates
	if len(candidates) == 0 {
		return fail(model.FieldNetContents, model.RuleNetContentsPresent,
			"Net contents statement not detected on label.", "Not detected")
	}

	submittedNorm := textnorm.NormalizeLoose(ctx.Form.NetContents)
	submittedCompact := strings.ReplaceAll(submittedNorm, " ", "")

	for _, candidate := range candidates {
		candidateNorm := textnorm.NormalizeLoose(candidate)
		candidateCompact := strings.ReplaceAll(candidateNorm, " ", "")
		// Both directions plus compact equality handles "12 fl oz" vs "12floz"
		if strings.Contains(candidateNorm, submittedNorm) ||
			strings.Contains(submittedNorm, candidateNorm) ||
			submittedCompact == candidateCompact {
			return pass(candidate)
		}
	}

	submittedNum := nonNumeric.ReplaceAllString(ctx.Form.NetContents, "")
	for _, candidate := range candidates {
		candidateNum := nonNumeric.ReplaceAllString(candidate, "")
		if submittedNum != "" && candidateNum != "" && submittedNum == candidateNum {
			return pass(candidate)
		}
	}

	all := strings.Join(candidates, ", ")
	return fail(model.FieldNetContents, model.RuleNetContentsPresent,
		fmt.Sprintf("Net contents mismatch: label shows %q but form declares %q.",
			all, ctx.Form.NetContents),
		all)
}

// nameAddressContains checks producer name/address tokens. Short tokens
// (3-4 chars) require exact containment to avoid false positives; longer
// tokens allow one character of fuzz. Addresses are long and OCR-noisy, so
// one third of the tokens hitting is enough.
func nameAddressContains(ctx *Context) Outcome {
	submitted := textnorm.NormalizeLoose(ctx.Form.NameAddress)
	var tokens []string
	for _, t := range strings.Fields(submitted) {
		if len(t) >= 3 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return pass("")
	}

	type pair struct{ submitted, found string }
	var matched []pair
	for _, token := range tokens {
		if len(token) <= 4 {
			if strings.Contains(ctx.LooseText, token) {
				matched = append(matched, pair{token, token})
			}
			continue
		}
		if word, ok := textnorm.FuzzyTokenFind(token, ctx.LooseText, 1); ok {
			matched = append(matched, pair{token, word})
		}
	}

	hits := len(matched)
	threshold := len(tokens) / 3
	if threshold < 1 {
		threshold = 1
	}

	// Show "submitted→matched" for fuzzy hits so the caller can see what
	// OCR word satisfied each token.
	var matchStrs []string
	for _, p := range matched {
		if p.submitted == p.found {
			matchStrs = append(matchStrs, p.submitted)
		} else {
			matchStrs = append(matchStrs, p.submitted+"→"+p.found)
		}
	}
	foundStr := "none"
	if len(matchStrs) > 0 {
		foundStr = strings.Join(matchStrs, ", ")
	}
	summary := fmt.Sprintf("Matched: %s (%d/%d tokens)", foundStr, hits, len(tokens))

	if hits >= threshold {
		return pass(summary)
	}
	return fail(model.FieldNameAddress, model.RuleNameAddressContains,
		fmt.Sprintf("Producer/bottler name and address not found (matched %d/%d tokens).",
			hits, len(tokens)),
		summary)
}

var nonLetters = regexp.MustCompile(`[^A-Za-z]`)

// warningKeywordFallback is the lower bar applied once the header is present:
// at least this many of the 8 key words.
const warningKeywordFallback = 3

// govWarningExact verifies the government warning statement. The header must
// be present (with a strip-all-non-letters fallback for heavily garbled
// spacing); after that, a canonical match, the body signal, or at least 3 of
// the 8 key words is accepted.
func govWarningExact(ctx *Context) Outcome {
	headerPresent := ctx.Facts.HeaderPresent
	if !headerPresent {
		stripped := nonLetters.ReplaceAllString(ctx.RawText, "")
		headerPresent = strings.Contains(stripped, "GOVERNMENTWARNING")
	}

	lower := strings.ToLower(ctx.RawText)
	var foundWords []string
	for _, word := range extract.WarningKeyWords {
		if strings.Contains(lower, word) {
			foundWords = append(foundWords, word)
		}
	}
	wordList := "none"
	if len(foundWords) > 0 {
		wordList = strings.Join(foundWords, ", ")
	}

	if !headerPresent {
		return fail(model.FieldGovernmentWarning, model.RuleGovWarningExact,
			`Government warning header "GOVERNMENT WARNING" not found in required uppercase.`,
			fmt.Sprintf("Header: not found, Keywords: %s", wordList))
	}

	summary := fmt.Sprintf("Header: found, Keywords: %s (%d/8)", wordList, len(foundWords))
	if ctx.Facts.CanonicalMatch || ctx.Facts.BodyPresent {
		return pass(summary)
	}
	if len(foundWords) >= warningKeywordFallback {
		return pass(summary)
	}

	return fail(model.FieldGovernmentWarning, model.RuleGovWarningExact,
		"Government warning statement text not sufficiently detected.", summary)
}
