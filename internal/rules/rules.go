// Package rules contains the individual compliance checks. Each rule is a
// pure function of the validation context: it either passes, optionally
// reporting what OCR found for its field, or returns a discrepancy with no
// severity set. Severity is assigned by the pipeline, not the rule.
package rules

import (
	"github.com/rmarchuk/labelvet/internal/extract"
	"github.com/rmarchuk/labelvet/internal/model"
)

// Context carries everything a rule may read during validation of one
// submission. It is created once per analysis request, never shared across
// requests, and rules treat it as read-only.
type Context struct {
	Form         model.DeclaredForm
	BeverageType model.BeverageType

	RawText    string // aggregated OCR text as recognized
	LooseText  string // textnorm.NormalizeLoose(RawText)
	StrictText string // textnorm.NormalizeStrict(RawText)

	Facts extract.Facts // cached extractor outputs
}

// Outcome is what a rule returns. A nil Discrepancy means the check passed;
// Evidence then carries what OCR found for the field (may be empty when
// nothing displayable was recovered).
type Outcome struct {
	Evidence    string
	Discrepancy *model.Discrepancy
}

func pass(evidence string) Outcome {
	return Outcome{Evidence: evidence}
}

func fail(field model.Field, id model.RuleID, message, ocrFound string) Outcome {
	return Outcome{Discrepancy: &model.Discrepancy{
		Field:    field,
		RuleID:   id,
		Message:  message,
		OCRFound: ocrFound,
	}}
}

// Rule binds a check function to the field it validates
type Rule struct {
	Field model.Field
	Run   func(*Context) Outcome
}

// Lookup dispatches a rule ID to its implementation. Pipelines stay
// configured declaratively as ID lists while dispatch remains an explicit
// switch over the typed enumeration.
func Lookup(id model.RuleID) (Rule, bool) {
	switch id {
	case model.RuleOCREmptyText:
		return Rule{Field: model.FieldOCR, Run: ocrEmptyText}, true
	case model.RuleBrandNameContains:
		return Rule{Field: model.FieldBrandName, Run: brandNameContains}, true
	case model.RuleDesignationContains:
		return Rule{Field: model.FieldClassType, Run: designationContains}, true
	case model.RuleNetContentsPresent:
		return Rule{Field: model.FieldNetContents, Run: netContentsPresent}, true
	case model.RuleNameAddressContains:
		return Rule{Field: model.FieldNameAddress, Run: nameAddressContains}, true
	case model.RuleGovWarningExact:
		return Rule{Field: model.FieldGovernmentWarning, Run: govWarningExact}, true
	case model.RuleAlcPercentPresent:
		return Rule{Field: model.FieldAlcoholContent, Run: alcPercentPresent}, true
	case model.RuleAlcPercentMatch:
		return Rule{Field: model.FieldAlcoholContent, Run: alcPercentMatchExact}, true
	}
	return Rule{}, false
}
