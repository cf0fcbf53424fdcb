// Package extract contains the regex-based field extractors that turn raw
// OCR text into structured facts. Each extractor is a pure function and runs
// unconditionally on every submission; RunAll merges their disjoint outputs
// into one fact set that rules read instead of re-running regex passes.
package extract

// Facts is the flat union of every extractor's output, computed once per
// submission and read-only afterward.
type Facts struct {
	ABVFacts
	NetContentsFacts
	GovWarningFacts
}

// RunAll runs every extractor once on the OCR text and merges the results
func RunAll(text string) Facts {
	return Facts{
		ABVFacts:         ExtractABV(text),
		NetContentsFacts: ExtractNetContents(text),
		GovWarningFacts:  ExtractGovWarning(text),
	}
}
