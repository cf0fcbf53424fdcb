package validate

import (
	"testing"

	"github.com/rmarchuk/labelvet/internal/extract"
	"github.com/rmarchuk/labelvet/internal/model"
)

var testForm = model.DeclaredForm{
	BrandName:            "Old Tom Distillery",
	ClassTypeDesignation: "Kentucky Straight Bourbon Whiskey",
	NetContents:          "750 mL",
	NameAddress:          "Old Tom Distilling Co, Bardstown KY 40004",
	AlcoholContent:       "45",
}

const compliantLabel = `OLD TOM DISTILLERY
KENTUCKY STRAIGHT BOURBON WHISKEY
45% ALC/VOL (90 PROOF)
750 mL
OLD TOM DISTILLING CO, BARDSTOWN KY 40004
` + extract.CanonicalWarning

func errorCount(result model.AnalysisResult) int {
	n := 0
	for _, d := range result.Discrepancies {
		if d.Severity == model.SeverityError {
			n++
		}
	}
	return n
}

func TestRun_Compliant(t *testing.T) {
	result := Run(model.BeverageSpirits, testForm, compliantLabel)

	if result.Status != model.StatusCompliant {
		t.Errorf("status = %s, want COMPLIANT; discrepancies: %+v",
			result.Status, result.Discrepancies)
	}
	if n := errorCount(result); n != 0 {
		t.Errorf("error discrepancies = %d, want 0", n)
	}

	// Passing rules still leave evidence for display
	if result.Evidence.BrandName == nil {
		t.Error("expected brand name evidence")
	}
	if result.Evidence.AlcoholContent == nil || *result.Evidence.AlcoholContent != "45%" {
		t.Errorf("alcohol evidence = %v, want 45%%", result.Evidence.AlcoholContent)
	}
	if result.Evidence.NetContents == nil || *result.Evidence.NetContents != "750 mL" {
		t.Errorf("net contents evidence = %v, want 750 mL", result.Evidence.NetContents)
	}
	if result.Evidence.GovernmentWarning == nil {
		t.Error("expected government warning evidence")
	}
}

func TestRun_ABVMismatchSeverityByBeverageType(t *testing.T) {
	label := `OLD TOM DISTILLERY
KENTUCKY STRAIGHT BOURBON WHISKEY
50% ALC/VOL
750 mL
OLD TOM DISTILLING CO, BARDSTOWN KY 40004
` + extract.CanonicalWarning

	spirits := Run(model.BeverageSpirits, testForm, label)
	if spirits.Status != model.StatusNonCompliant {
		t.Errorf("spirits status = %s, want NON_COMPLIANT", spirits.Status)
	}
	foundError := false
	for _, d := range spirits.Discrepancies {
		if d.Field == model.FieldAlcoholContent && d.Severity == model.SeverityError {
			foundError = true
		}
	}
	if !foundError {
		t.Errorf("expected error discrepancy on alcohol_content, got %+v", spirits.Discrepancies)
	}

	malt := Run(model.BeverageMalt, testForm, label)
	for _, d := range malt.Discrepancies {
		if d.Field == model.FieldAlcoholContent && d.Severity != model.SeverityInfo {
			t.Errorf("malt alcohol_content discrepancy severity = %s, want info", d.Severity)
		}
	}
	if malt.Status != model.StatusCompliant {
		t.Errorf("malt status = %s, want COMPLIANT (only info discrepancies)", malt.Status)
	}
}

func TestRun_EmptyTextShortCircuits(t *testing.T) {
	result := Run(model.BeverageSpirits, testForm, "")

	if result.Status != model.StatusNonCompliant {
		t.Errorf("status = %s, want NON_COMPLIANT", result.Status)
	}
	if len(result.Discrepancies) != 1 {
		t.Fatalf("discrepancies = %+v, want exactly one", result.Discrepancies)
	}
	if result.Discrepancies[0].RuleID != model.RuleOCREmptyText {
		t.Errorf("rule id = %s, want OCR_EMPTY_TEXT", result.Discrepancies[0].RuleID)
	}
}

func TestRun_UnknownBeverageType(t *testing.T) {
	result := Run(model.BeverageType("cider"), testForm, compliantLabel)

	if result.Status != model.StatusNonCompliant {
		t.Errorf("status = %s, want NON_COMPLIANT", result.Status)
	}
	if len(result.Discrepancies) != 1 {
		t.Fatalf("discrepancies = %+v, want exactly one", result.Discrepancies)
	}
	d := result.Discrepancies[0]
	if d.RuleID != model.RuleInvalidBeverageType {
		t.Errorf("rule id = %s", d.RuleID)
	}
	if d.Field != model.FieldBeverageType {
		t.Errorf("field = %s", d.Field)
	}
	if d.Severity != model.SeverityError {
		t.Errorf("severity = %s", d.Severity)
	}
}

func TestRun_FailingRuleEvidenceWins(t *testing.T) {
	// ABV present (rule passes, writes evidence) but mismatched (second rule
	// fails); the discrepancy's OCRFound must win the evidence slot.
	label := `OLD TOM DISTILLERY
KENTUCKY STRAIGHT BOURBON WHISKEY
50% ALC/VOL
750 mL
OLD TOM DISTILLING CO, BARDSTOWN KY 40004
` + extract.CanonicalWarning

	result := Run(model.BeverageSpirits, testForm, label)
	if result.Evidence.AlcoholContent == nil {
		t.Fatal("expected alcohol evidence")
	}
	if *result.Evidence.AlcoholContent != "50%" {
		t.Errorf("alcohol evidence = %q, want 50%% from failing rule", *result.Evidence.AlcoholContent)
	}
}

func TestRun_EvidenceAbsentIsNil(t *testing.T) {
	// Net contents missing entirely: the discrepancy reports "Not detected"
	// and the slot carries that; brand passes with a snippet.
	label := "OLD TOM DISTILLERY\nKENTUCKY STRAIGHT BOURBON WHISKEY\n45% ALC/VOL\n" +
		"OLD TOM DISTILLING CO, BARDSTOWN KY 40004\n" + extract.CanonicalWarning
	result := Run(model.BeverageSpirits, testForm, label)

	if result.Evidence.NetContents == nil || *result.Evidence.NetContents != "Not detected" {
		t.Errorf("net contents evidence = %v, want Not detected", result.Evidence.NetContents)
	}
	if result.Status != model.StatusNonCompliant {
		t.Errorf("status = %s, want NON_COMPLIANT", result.Status)
	}
}

func TestDefinitions_Table(t *testing.T) {
	defs := Definitions()
	for _, bt := range []model.BeverageType{model.BeverageSpirits, model.BeverageMalt, model.BeverageWine} {
		def, ok := defs[bt]
		if !ok {
			t.Fatalf("no definition for %s", bt)
		}
		if len(def.Rules) == 0 || def.Rules[0] != model.RuleOCREmptyText {
			t.Errorf("%s: usable-text check must run first, got %v", bt, def.Rules)
		}
	}
	if len(defs[model.BeverageSpirits].Informational) != 0 {
		t.Error("spirits must treat every rule as mandatory")
	}
	if !defs[model.BeverageMalt].Informational[model.RuleAlcPercentMatch] {
		t.Error("malt must mark ABV match informational")
	}
}
