// Package llm generates optional plain-language explanations of analysis
// findings. Summaries are produced after the verdict and NEVER affect it.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmarchuk/labelvet/internal/model"
)

// Provider is the contract for summary generation backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary for the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	Report    *model.Report
	Prompt    string // optional custom prompt; empty uses the default
	Model     string
	MaxTokens int
}

// SummarizeResponse contains the generated summary
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPrompt renders the default summarization prompt from a report. The
// model only sees the structured findings, never the raw images.
func BuildPrompt(report *model.Report) string {
	var b strings.Builder
	b.WriteString("You are reviewing an alcohol-beverage label compliance report.\n")
	b.WriteString("Explain the findings below in plain language for the applicant. ")
	b.WriteString("Do not second-guess the verdict; only explain it.\n\n")
	fmt.Fprintf(&b, "Beverage type: %s\n", report.BeverageType)
	fmt.Fprintf(&b, "Verdict: %s\n\n", report.Status)
	if len(report.Discrepancies) == 0 {
		b.WriteString("No discrepancies were found.\n")
		return b.String()
	}
	b.WriteString("Findings:\n")
	for _, d := range report.Discrepancies {
		fmt.Fprintf(&b, "- field=%s rule=%s severity=%s: %s (OCR found: %s)\n",
			d.Field, d.RuleID, d.Severity, d.Message, d.OCRFound)
	}
	return b.String()
}
