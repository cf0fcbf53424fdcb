// Package validate executes the per-beverage-type rule pipeline over
// aggregated OCR text and derives the overall compliance status.
package validate

import (
	"fmt"

	"github.com/rmarchuk/labelvet/internal/extract"
	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/rules"
	"github.com/rmarchuk/labelvet/internal/textnorm"
)

// Definition configures one beverage type's pipeline: the ordered rule list
// plus the subset whose failures are informational. The three known types
// differ only in data, never in code path.
type Definition struct {
	Rules         []model.RuleID
	Informational map[model.RuleID]bool
}

// commonRules is the full ordered rule list shared by every beverage type
var commonRules = []model.RuleID{
	model.RuleOCREmptyText,
	model.RuleBrandNameContains,
	model.RuleDesignationContains,
	model.RuleAlcPercentPresent,
	model.RuleAlcPercentMatch,
	model.RuleNetContentsPresent,
	model.RuleNameAddressContains,
	model.RuleGovWarningExact,
}

// abvInformational marks both ABV rules informational, used by beverage
// types where alcohol-content statements are optional
var abvInformational = map[model.RuleID]bool{
	model.RuleAlcPercentPresent: true,
	model.RuleAlcPercentMatch:   true,
}

// definitions is the beverage-type configuration table. Spirits require the
// ABV checks; malt and wine run them informationally.
var definitions = map[model.BeverageType]Definition{
	model.BeverageSpirits: {Rules: commonRules},
	model.BeverageMalt:    {Rules: commonRules, Informational: abvInformational},
	model.BeverageWine:    {Rules: commonRules, Informational: abvInformational},
}

// Definitions returns the beverage-type configuration table
func Definitions() map[model.BeverageType]Definition {
	return definitions
}

// Run validates the aggregated OCR text for one submission. Rules execute in
// order; if the usable-text check fails, remaining rules are skipped since
// they would all fail meaninglessly. Every discrepancy gets its severity
// from the beverage type's informational set, and the evidence record is
// populated uniformly after each rule: a failing rule's OCRFound wins over
// evidence recorded on pass.
func Run(beverage model.BeverageType, form model.DeclaredForm, ocrText string) model.AnalysisResult {
	def, ok := definitions[beverage]
	if !ok {
		return model.AnalysisResult{
			Status: model.StatusNonCompliant,
			Discrepancies: []model.Discrepancy{{
				Field:    model.FieldBeverageType,
				RuleID:   model.RuleInvalidBeverageType,
				Message:  fmt.Sprintf("Unknown beverage type: %s", beverage),
				Severity: model.SeverityError,
			}},
		}
	}

	ctx := &rules.Context{
		Form:         form,
		BeverageType: beverage,
		RawText:      ocrText,
		LooseText:    textnorm.NormalizeLoose(ocrText),
		StrictText:   textnorm.NormalizeStrict(ocrText),
		Facts:        extract.RunAll(ocrText),
	}

	var discrepancies []model.Discrepancy
	var evidence model.EvidenceRecord

	for _, id := range def.Rules {
		rule, ok := rules.Lookup(id)
		if !ok {
			continue
		}
		out := rule.Run(ctx)
		if out.Discrepancy == nil {
			if out.Evidence != "" {
				evidence.Set(rule.Field, out.Evidence)
			}
			continue
		}

		d := *out.Discrepancy
		if def.Informational[id] {
			d.Severity = model.SeverityInfo
		} else {
			d.Severity = model.SeverityError
		}
		discrepancies = append(discrepancies, d)

		if id == model.RuleOCREmptyText {
			break
		}
	}

	// Failing-rule evidence overrides anything a passing rule recorded for
	// the same field (e.g. ALC_PERCENT_PRESENT passes, MATCH fails).
	for _, d := range discrepancies {
		evidence.Set(d.Field, d.OCRFound)
	}

	status := model.StatusCompliant
	for _, d := range discrepancies {
		if d.Severity == model.SeverityError {
			status = model.StatusNonCompliant
			break
		}
	}

	return model.AnalysisResult{
		Status:        status,
		Discrepancies: discrepancies,
		Evidence:      evidence,
	}
}
