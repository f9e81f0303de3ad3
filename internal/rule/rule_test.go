package rule

import (
	"errors"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	r, err := Parse("A,B -> C")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if r.Antecedent.Len() != 2 {
		t.Errorf("expected 2 antecedent items, got %d", r.Antecedent.Len())
	}
	if !r.Antecedent.Contains("A") || !r.Antecedent.Contains("B") {
		t.Errorf("expected antecedent {A, B}, got %v", r.Antecedent.Items())
	}
	if r.Consequent.Len() != 1 || !r.Consequent.Contains("C") {
		t.Errorf("expected consequent {C}, got %v", r.Consequent.Items())
	}
}

func TestParse_Whitespace(t *testing.T) {
	// Arbitrary whitespace around items and the arrow yields the same sets
	r, err := Parse("  A , B  ->  C  ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !r.Antecedent.Contains("A") || !r.Antecedent.Contains("B") {
		t.Errorf("expected antecedent {A, B}, got %v", r.Antecedent.Items())
	}
	if !r.Consequent.Contains("C") {
		t.Errorf("expected consequent {C}, got %v", r.Consequent.Items())
	}
}

func TestParse_OverlapAllowed(t *testing.T) {
	r, err := Parse("A,B -> B,C")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !r.Antecedent.Contains("B") || !r.Consequent.Contains("B") {
		t.Error("expected B on both sides of the rule")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing separator", "A,B,C"},
		{"multiple separators", "A -> B -> C"},
		{"empty antecedent", " -> C"},
		{"empty consequent", "A,B -> "},
		{"only commas on one side", ", , -> C"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected Parse(%q) to fail", tt.input)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("expected *ParseError, got %T (%v)", err, err)
			}
		})
	}
}

func TestParse_DropsEmptyTokens(t *testing.T) {
	// Trailing and doubled commas are tolerated as long as real items remain
	r, err := Parse("A,,B, -> C,")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Antecedent.Len() != 2 {
		t.Errorf("expected 2 antecedent items, got %v", r.Antecedent.Items())
	}
	if r.Consequent.Len() != 1 {
		t.Errorf("expected 1 consequent item, got %v", r.Consequent.Items())
	}
}

func TestRuleString(t *testing.T) {
	r, err := Parse("milk, bread -> butter")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Items render sorted for stable output
	if got := r.String(); got != "bread,milk -> butter" {
		t.Errorf("expected 'bread,milk -> butter', got %q", got)
	}
}
