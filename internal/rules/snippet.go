package rules

import "strings"

const snippetWindow = 60

// findSnippet locates the best matching raw-text excerpt for a query so
// passing checks can still show the caller what OCR produced. Falls back to
// the first significant word of the query when the whole query is absent.
func findSnippet(query, rawText string) string {
	if query == "" || rawText == "" {
		return ""
	}
	queryLower := strings.ToLower(query)
	textLower := strings.ToLower(rawText)

	idx := strings.Index(textLower, queryLower)
	if idx == -1 {
		for _, w := range strings.Fields(queryLower) {
			if len(w) >= 3 {
				idx = strings.Index(textLower, w)
				break
			}
		}
	}
	if idx == -1 {
		return ""
	}

	start := idx - 10
	if start < 0 {
		start = 0
	}
	end := idx + snippetWindow
	if end > len(rawText) {
		end = len(rawText)
	}
	snippet := strings.TrimSpace(rawText[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(rawText) {
		snippet = snippet + "..."
	}
	return snippet
}
