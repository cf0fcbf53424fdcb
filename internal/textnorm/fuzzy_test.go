package textnorm

import "testing"

func TestFuzzyTokenMatch_ExactSubstring(t *testing.T) {
	// Exact containment must match regardless of the allowed distance
	for _, d := range []int{0, 1, 2, 5} {
		if !FuzzyTokenMatch("bourbon", "kentucky straight bourbon whiskey", d) {
			t.Errorf("exact substring should match with maxDistance=%d", d)
		}
	}
}

func TestFuzzyTokenMatch(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		text        string
		maxDistance int
		want        bool
	}{
		{"single substitution", "distillery", "old tom distiilery co", 1, true},
		{"ocr digit swap", "bardstown", "8ardstown ky", 1, true},
		{"two substitutions rejected", "whiskey", "wh1sk3y", 1, false},
		{"two substitutions allowed at distance 2", "whiskey", "wh1sk3y", 2, true},
		{"length difference counts", "toms", "tom", 1, true},
		{"length difference over limit", "tomson", "tom", 1, false},
		{"no match inside unrelated words", "alf", "bale of hay", 0, false},
		{"empty token", "", "anything", 1, false},
		{"empty text", "token", "", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyTokenMatch(tt.token, tt.text, tt.maxDistance)
			if got != tt.want {
				t.Errorf("FuzzyTokenMatch(%q, %q, %d) = %v, want %v",
					tt.token, tt.text, tt.maxDistance, got, tt.want)
			}
		})
	}
}

func TestFuzzyTokenFind(t *testing.T) {
	// Exact containment returns the token itself
	word, ok := FuzzyTokenFind("bourbon", "straight bourbon whiskey", 1)
	if !ok || word != "bourbon" {
		t.Errorf("expected exact match to return token, got %q ok=%v", word, ok)
	}

	// Fuzzy match returns the surface form from the text
	word, ok = FuzzyTokenFind("distillery", "old tom distiilery co", 1)
	if !ok || word != "distiilery" {
		t.Errorf("expected matched OCR word distiilery, got %q ok=%v", word, ok)
	}

	// First accepted candidate in document order wins
	word, ok = FuzzyTokenFind("cask", "casc cask", 1)
	if !ok || word != "casc" {
		t.Errorf("expected first candidate casc, got %q ok=%v", word, ok)
	}

	if _, ok := FuzzyTokenFind("nothing", "entirely unrelated text", 1); ok {
		t.Error("expected no match")
	}
}
