package extract

import (
	"strings"
	"testing"
)

func TestExtractABV(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPercent float64
		wantPresent bool
	}{
		{"percent alc vol", "40% ALC/VOL", 40.0, true},
		{"no space before marker", "40%ALC/VOL", 40.0, true},
		{"alc prefix", "ALC. 40% BY VOL", 40.0, true},
		{"alcohol by volume", "ALCOHOL 13.5% BY VOLUME", 13.5, true},
		{"abv marker", "5.2% ABV", 5.2, true},
		{"space before percent", "40 % ALC", 40.0, true},
		{"percent word", "40 PERCENT", 40.0, true},
		{"per cent word", "12 PER CENT", 12.0, true},
		{"proof fallback", "90 PROOF", 45.0, true},
		{"proof parenthesized", "AGED 8 YEARS (80 PROOF)", 40.0, true},
		{"percent wins over proof", "45% ALC/VOL (90 PROOF)", 45.0, true},
		{"lowercase", "alc 40% by vol", 40.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractABV(tt.text)
			if got.AlcoholLabelPresent != tt.wantPresent {
				t.Fatalf("AlcoholLabelPresent = %v, want %v", got.AlcoholLabelPresent, tt.wantPresent)
			}
			if got.ABVPercent == nil {
				t.Fatal("ABVPercent = nil, want value")
			}
			if *got.ABVPercent != tt.wantPercent {
				t.Errorf("ABVPercent = %v, want %v", *got.ABVPercent, tt.wantPercent)
			}
		})
	}
}

func TestExtractABV_Absent(t *testing.T) {
	for _, text := range []string{"", "PREMIUM LAGER 750 mL", "no numbers here"} {
		got := ExtractABV(text)
		if got.AlcoholLabelPresent {
			t.Errorf("ExtractABV(%q): AlcoholLabelPresent = true, want false", text)
		}
		if got.ABVPercent != nil {
			t.Errorf("ExtractABV(%q): ABVPercent = %v, want nil", text, *got.ABVPercent)
		}
	}
}

func TestExtractNetContents(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"milliliters", "NET CONTENTS 750 mL", []string{"750 mL"}},
		{"no space", "750mL", []string{"750mL"}},
		{"ocr misread l as i", "750 mi", []string{"750 mi"}},
		{"ocr misread l as 1", "750 m1", []string{"750 m1"}},
		{"fluid ounces", "12 FL. OZ.", []string{"12 FL. OZ."}},
		{"liters", "1.75 L ", []string{"1.75 L"}},
		{"centiliters", "330 cl", []string{"330 cl"}},
		{"gallon", "1 GALLON", []string{"1 GALLON"}},
		{"pint", "1 PINT", []string{"1 PINT"}},
		{"none", "KENTUCKY BOURBON", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNetContents(tt.text)
			if len(got.Candidates) != len(tt.want) {
				t.Fatalf("Candidates = %v, want %v", got.Candidates, tt.want)
			}
			for i := range tt.want {
				if got.Candidates[i] != tt.want[i] {
					t.Errorf("Candidates[%d] = %q, want %q", i, got.Candidates[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractNetContents_FlOzBeforePlainOz(t *testing.T) {
	got := ExtractNetContents("12 FL OZ")
	if len(got.Candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}
	// The fluid-ounce pattern runs first so the full statement is the
	// leading candidate, not a bare-ounce fragment.
	if got.Candidates[0] != "12 FL OZ" {
		t.Errorf("Candidates[0] = %q, want %q", got.Candidates[0], "12 FL OZ")
	}
}

func TestExtractNetContents_CollectsAllMatches(t *testing.T) {
	got := ExtractNetContents("750 mL (25.4 FL OZ)")
	if len(got.Candidates) < 2 {
		t.Fatalf("expected candidates from multiple patterns, got %v", got.Candidates)
	}
}

func TestExtractGovWarning_Canonical(t *testing.T) {
	got := ExtractGovWarning(CanonicalWarning)
	if !got.HeaderPresent {
		t.Error("HeaderPresent = false for canonical text")
	}
	if !got.BodyPresent {
		t.Error("BodyPresent = false for canonical text")
	}
	if !got.CanonicalMatch {
		t.Error("CanonicalMatch = false for canonical text")
	}
}

func TestExtractGovWarning_HeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"normal", "GOVERNMENT WARNING: do not", true},
		{"merged", "GOVERNMENTWARNING", true},
		{"split letters", "G OVERNMENT WARNING", true},
		{"every letter spaced", "G O V E R N M E N T W A R N I N G", true},
		{"lowercase rejected", "government warning", false},
		{"absent", "SURGEON GENERAL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractGovWarning(tt.text)
			if got.HeaderPresent != tt.want {
				t.Errorf("HeaderPresent = %v, want %v", got.HeaderPresent, tt.want)
			}
		})
	}
}

func TestExtractGovWarning_BodyThreshold(t *testing.T) {
	// Exactly 5 of 8 key words passes
	five := "surgeon general pregnancy birth defects"
	if got := ExtractGovWarning(five); !got.BodyPresent {
		t.Error("expected BodyPresent with 5 key words")
	}
	// 4 does not
	four := "surgeon general pregnancy birth"
	if got := ExtractGovWarning(four); got.BodyPresent {
		t.Error("expected BodyPresent=false with 4 key words")
	}
}

func TestExtractGovWarning_CanonicalMatchSurvivesReflow(t *testing.T) {
	// OCR reflows lines and drops punctuation; the stripped comparison
	// still matches as long as the characters survive.
	mangled := strings.ReplaceAll(CanonicalWarning, " ", "\n")
	mangled = strings.ReplaceAll(mangled, ",", "")
	got := ExtractGovWarning("header text\n" + mangled + "\nfooter")
	if !got.CanonicalMatch {
		t.Error("CanonicalMatch = false for reflowed canonical text")
	}
}

func TestRunAll(t *testing.T) {
	text := "OLD TOM 45% ALC/VOL 750 mL\n" + CanonicalWarning
	facts := RunAll(text)

	if facts.ABVPercent == nil || *facts.ABVPercent != 45.0 {
		t.Errorf("ABVPercent = %v, want 45", facts.ABVPercent)
	}
	if !facts.AlcoholLabelPresent {
		t.Error("AlcoholLabelPresent = false")
	}
	if len(facts.Candidates) == 0 || facts.Candidates[0] != "750 mL" {
		t.Errorf("Candidates = %v, want leading 750 mL", facts.Candidates)
	}
	if !facts.HeaderPresent || !facts.BodyPresent || !facts.CanonicalMatch {
		t.Errorf("warning facts = %+v, want all true", facts.GovWarningFacts)
	}
}
