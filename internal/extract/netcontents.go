package extract

import (
	"regexp"
	"strings"
)

// netContentsPatterns are applied in a fixed priority order: fluid-ounce and
// milliliter patterns run first so a bare "oz" pattern never swallows
// "fl oz" text. Every match across every pattern is collected, preserving
// the original surface form for display.
var netContentsPatterns = []*regexp.Regexp{
	// "12 FL OZ", "12 FL. OZ.", "12FL OZ"
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:fl\.?\s*oz\.?|fluid\s*oz(?:ounces?)?)`),
	// "750 mL", "750ml" plus OCR misreads where l is read as i, 1 or |
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ml|m[il1|]|mi)`),
	// "1.75 L", "1.75 LITERS", "1 LITRE"
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:l(?:iters?|itres?)?|ltrs?)(?:\s|$|[.])`),
	// "330 cl"
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*cl`),
	// "1 GALLON", "1 GAL"
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:gal(?:lons?)?)`),
	// "1 PINT", "1 PT"
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:pints?|pts?)`),
	// "12 oz", "12 OZ."
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*oz\.?`),
}

// NetContentsFacts is the output of the net-contents extractor
type NetContentsFacts struct {
	// Candidates holds every volume statement found, as literal matched
	// substrings in pattern-priority order. Empty when nothing matched.
	Candidates []string `json:"net_contents_candidates"`
}

// ExtractNetContents collects candidate net-contents statements from OCR
// text: "750 mL", "1.75 L", "12 FL OZ", including misreads like "750 mi".
func ExtractNetContents(text string) NetContentsFacts {
	var candidates []string
	for _, pattern := range netContentsPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			candidates = append(candidates, strings.TrimSpace(m))
		}
	}
	return NetContentsFacts{Candidates: candidates}
}
