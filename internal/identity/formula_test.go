// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identity

import "testing"

func TestParseFormula(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]float64
		wantErr bool
	}{
		{"simple binary", "TiN", map[string]float64{"Ti": 1, "N": 1}, false},
		{"explicit counts", "TiO2", map[string]float64{"Ti": 1, "O": 2}, false},
		{"fractional count", "Ti0.5O1.5", map[string]float64{"Ti": 0.5, "O": 1.5}, false},
		{"magneli phase", "Ti4O7", map[string]float64{"Ti": 4, "O": 7}, false},
		{"two one-letter elements", "NO", map[string]float64{"N": 1, "O": 1}, false},
		{"repeated element", "TiOTi", map[string]float64{"Ti": 2, "O": 1}, false},
		{"surrounding whitespace", "  WC  ", map[string]float64{"W": 1, "C": 1}, false},

		{"empty", "", nil, true},
		{"lowercase", "tio2", nil, true},
		{"unknown element", "Xx2", nil, true},
		{"stray punctuation", "Ti-N", nil, true},
		{"zero count", "Ti0N", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormula(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormula(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormula(%q) error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFormula(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for sym, count := range tt.want {
				if got[sym] != count {
					t.Errorf("ParseFormula(%q)[%s] = %g, want %g", tt.input, sym, got[sym], count)
				}
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"already canonical order", "NTi", "N1Ti1", false},
		{"reversed order", "TiN", "N1Ti1", false},
		{"lowercase repaired", "tin", "N1Ti1", false},
		{"all caps repaired", "TIO2", "O2Ti1", false},
		{"mixed case repaired", "crn", "Cr1N1", false},
		{"internal whitespace", "Ti O2", "O2Ti1", false},
		{"fractional counts", "Ti0.5O1.5", "O1.5Ti0.5", false},

		{"free text", "titanium nitride", "", true},
		{"composite description", "Nb/Ti dual-layer", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonical(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Canonical(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Canonical(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Equivalent spellings must always land on the same key: the join is only
// auditable if canonicalization is a pure function of the input.
func TestCanonicalEquivalence(t *testing.T) {
	groups := [][]string{
		{"TiN", "NTi", "tin", "TIN", "N1Ti1"},
		{"TiO2", "O2Ti", "tio2", "TIO2"},
		{"Ti4O7", "O7Ti4", "ti4o7"},
	}
	for _, group := range groups {
		first, err := Canonical(group[0])
		if err != nil {
			t.Fatalf("Canonical(%q) error: %v", group[0], err)
		}
		for _, variant := range group[1:] {
			got, err := Canonical(variant)
			if err != nil {
				t.Errorf("Canonical(%q) error: %v", variant, err)
				continue
			}
			if got != first {
				t.Errorf("Canonical(%q) = %q, want %q (same as %q)", variant, got, first, group[0])
			}
		}
	}
}

func TestClassifyFormula(t *testing.T) {
	tests := []struct {
		formula string
		want    string
	}{
		{"TiO2", "oxide"},
		{"TiN", "nitride"},
		{"TiC", "carbide"},
		{"Ti4O7", "oxide"},
		// Oxygen takes precedence over nitrogen and carbon.
		{"TiNO", "oxide"},
		{"Pt", "other"},
		{"not a formula", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			if got := ClassifyFormula(tt.formula); string(got) != tt.want {
				t.Errorf("ClassifyFormula(%q) = %q, want %q", tt.formula, got, tt.want)
			}
		})
	}
}
