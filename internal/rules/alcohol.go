package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmarchuk/labelvet/internal/model"
)

// abvTolerance is the absolute tolerance, in percentage points, between the
// detected and declared ABV values
const abvTolerance = 0.5

// alcPercentPresent checks that an ABV pattern was detected on the label at
// all. Whether a failure blocks compliance is a beverage-type choice: spirits
// pipelines treat it as mandatory, malt/wine as informational.
func alcPercentPresent(ctx *Context) Outcome {
	if !ctx.Facts.AlcoholLabelPresent {
		return fail(model.FieldAlcoholContent, model.RuleAlcPercentPresent,
			"Alcohol content (ABV) not detected on label.", "Not detected")
	}
	return pass(formatABV(ctx.Facts.ABVPercent))
}

// alcPercentMatchExact compares the detected ABV to the declared value with
// an absolute 0.5 point tolerance. The check is skipped (passes) when either
// side is absent; an unparsable declared value is a discrepancy on the form
// field, not a process fault.
func alcPercentMatchExact(ctx *Context) Outcome {
	if ctx.Form.AlcoholContent == "" {
		return pass("")
	}
	detected := ctx.Facts.ABVPercent
	if detected == nil {
		return pass("")
	}

	submitted := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(ctx.Form.AlcoholContent), "%"))
	declared, err := strconv.ParseFloat(submitted, 64)
	if err != nil {
		return fail(model.FieldAlcoholContent, model.RuleAlcPercentMatch,
			fmt.Sprintf("Could not parse submitted alcohol content '%s'.", ctx.Form.AlcoholContent),
			formatABV(detected))
	}

	diff := *detected - declared
	if diff < 0 {
		diff = -diff
	}
	if diff > abvTolerance {
		return fail(model.FieldAlcoholContent, model.RuleAlcPercentMatch,
			fmt.Sprintf("Alcohol content mismatch: label shows %s but form declares %s.",
				formatABV(detected), formatABV(&declared)),
			formatABV(detected))
	}

	return pass(formatABV(detected))
}

func formatABV(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64) + "%"
}
