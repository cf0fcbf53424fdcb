package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rmarchuk/labelvet/internal/model"
)

// Renderer writes analysis reports as JSON and Markdown and prints the
// stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Label Compliance Report\n\n")
	fmt.Fprintf(&b, "**Beverage type:** %s\n\n", report.BeverageType)
	fmt.Fprintf(&b, "**Status:** %s\n\n", report.Status)
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	if len(report.Discrepancies) == 0 {
		b.WriteString("No discrepancies found.\n\n")
	} else {
		b.WriteString("## Discrepancies\n\n")
		b.WriteString("| Field | Rule | Severity | Message | OCR Found |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, d := range report.Discrepancies {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				d.Field, d.RuleID, d.Severity,
				mdEscape(d.Message), mdEscape(d.OCRFound))
		}
		b.WriteString("\n")
	}

	b.WriteString("## OCR Evidence\n\n")
	for _, row := range []struct {
		label string
		value *string
	}{
		{"Brand name", report.Evidence.BrandName},
		{"Class/type designation", report.Evidence.ClassType},
		{"Alcohol content", report.Evidence.AlcoholContent},
		{"Net contents", report.Evidence.NetContents},
		{"Name/address", report.Evidence.NameAddress},
		{"Government warning", report.Evidence.GovernmentWarning},
	} {
		value := "—"
		if row.value != nil {
			value = *row.value
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", row.label, mdEscape(value))
	}
	b.WriteString("\n")

	if len(report.Images) > 0 {
		b.WriteString("## Images\n\n")
		for _, img := range report.Images {
			fmt.Fprintf(&b, "### %s\n\n", img.ImageName)
			if img.Excerpt != "" {
				fmt.Fprintf(&b, "```\n%s\n```\n\n", img.Excerpt)
			} else {
				b.WriteString("_No text recognized._\n\n")
			}
		}
	}

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## Summary (LLM-generated, does not affect the verdict)\n\n")
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by labelvet\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// RenderSummary prints the verdict and findings to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Printf("Status: %s\n", report.Status)
	if len(report.Discrepancies) == 0 {
		fmt.Println("No discrepancies found.")
		return
	}
	fmt.Printf("Discrepancies (%d):\n", len(report.Discrepancies))
	for _, d := range report.Discrepancies {
		fmt.Printf("  [%s] %s: %s\n", d.Severity, d.Field, d.Message)
	}
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
