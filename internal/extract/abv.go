package extract

import (
	"regexp"
	"strconv"
)

// abvPatterns are tried in order; the first match wins and its first non-nil
// captured group is the ABV value. The families cover common OCR variations:
// "40% ALC/VOL", "40%ALC/VOL", "ALC. 40% BY VOL", "ALCOHOL 40% BY VOLUME",
// "40 % ALC" (OCR-inserted space before the percent sign), "40 PER CENT".
var abvPatterns = []*regexp.Regexp{
	// "40% ALC/VOL", "40% ALC BY VOL", "40%ABV"
	regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d{1,2})?)\s*%\s*(?:alc(?:ohol)?[\s./]*(?:by\s*)?vol(?:ume)?|abv)`),
	// "ALC 40%", "ALC. 40%", "ALCOHOL: 40%"
	regexp.MustCompile(`(?i)(?:alc(?:ohol)?)\s*[.:]?\s*(\d{1,2}(?:\.\d{1,2})?)\s*%`),
	// "40 % ALC"
	regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d{1,2})?)\s+%\s*alc`),
	// "40 PERCENT", "40 PER CENT"
	regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d{1,2})?)\s*(?:percent|per\s*cent)`),
}

// proofPattern matches "(80 PROOF)", "80 PROOF", "PROOF: 80"; proof = 2 * ABV
var proofPattern = regexp.MustCompile(`(?i)(\d{2,3})\s*proof`)

// ABVFacts is the output of the alcohol-by-volume extractor
type ABVFacts struct {
	// ABVPercent is the detected percentage, nil when no pattern matched
	ABVPercent *float64 `json:"abv_percent"`
	// AlcoholLabelPresent reports whether any ABV or proof statement was found
	AlcoholLabelPresent bool `json:"alcohol_label_present"`
}

// ExtractABV detects the alcohol-by-volume percentage in OCR text. When no
// percent pattern matches it falls back to a proof statement and derives
// ABV = proof / 2.
func ExtractABV(text string) ABVFacts {
	for _, pattern := range abvPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if v, err := strconv.ParseFloat(group, 64); err == nil {
				return ABVFacts{ABVPercent: &v, AlcoholLabelPresent: true}
			}
		}
	}

	if m := proofPattern.FindStringSubmatch(text); m != nil {
		if proof, err := strconv.ParseFloat(m[1], 64); err == nil {
			v := proof / 2.0
			return ABVFacts{ABVPercent: &v, AlcoholLabelPresent: true}
		}
	}

	return ABVFacts{}
}
