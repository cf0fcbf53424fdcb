package extract

import (
	"regexp"
	"strings"

	"github.com/rmarchuk/labelvet/internal/textnorm"
)

// CanonicalWarning is the government health warning statement required on
// every label, verbatim. "GOVERNMENT WARNING" must be all caps and "Surgeon
// General" must keep the capital S and G.
const CanonicalWarning = "GOVERNMENT WARNING: (1) According to the Surgeon General, " +
	"women should not drink alcoholic beverages during pregnancy because of " +
	"the risk of birth defects. (2) Consumption of alcoholic beverages impairs " +
	"your ability to drive a car or operate machinery, and may cause health problems."

// headerPattern matches the uppercase header with arbitrary whitespace
// between any two letters. OCR often merges the words ("GOVERNMENTWARNING")
// or splits letters apart ("G OVERNMENT").
var headerPattern = regexp.MustCompile(
	`G\s*O\s*V\s*E\s*R\s*N\s*M\s*E\s*N\s*T\s*W\s*A\s*R\s*N\s*I\s*N\s*G`)

// WarningKeyWords are the fixed key words from the warning body. OCR garbles
// punctuation but usually gets these words right.
var WarningKeyWords = []string{
	"surgeon",
	"general",
	"pregnancy",
	"birth",
	"defects",
	"impairs",
	"machinery",
	"health",
}

// warningBodyThreshold is how many of the key words must appear for the body
// signal; very forgiving of OCR errors.
const warningBodyThreshold = 5

// GovWarningFacts carries three independent, increasingly forgiving signals
// for the presence of the government warning statement.
type GovWarningFacts struct {
	HeaderPresent  bool `json:"gov_warning_header_present"`
	BodyPresent    bool `json:"gov_warning_body_present"`
	CanonicalMatch bool `json:"gov_warning_canonical_match"`
}

// ExtractGovWarning checks the OCR text for the government warning statement
// without requiring an exact match.
func ExtractGovWarning(text string) GovWarningFacts {
	headerPresent := headerPattern.MatchString(text)

	lower := strings.ToLower(text)
	hits := 0
	for _, word := range WarningKeyWords {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	bodyPresent := hits >= warningBodyThreshold

	// Most forgiving signal: strip all whitespace and punctuation from both
	// sides and check containment.
	canonStripped := textnorm.NormalizeForWarning(CanonicalWarning)
	textStripped := textnorm.NormalizeForWarning(text)
	canonicalMatch := strings.Contains(textStripped, canonStripped)

	return GovWarningFacts{
		HeaderPresent:  headerPresent,
		BodyPresent:    bodyPresent,
		CanonicalMatch: canonicalMatch,
	}
}
