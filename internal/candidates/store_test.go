// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidates

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/materials-engine/pkg/types"
)

func loadTestStore(t *testing.T, rows []RawRow) *Store {
	t.Helper()
	store := NewStore()
	store.Load(rows, io.Discard)
	return store
}

func TestLoad(t *testing.T) {
	rows := []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0", "band_gap": "0.0"},
		{"composition": "CrN", "energy_above_hull": "0.02"},
		{"composition": "", "energy_above_hull": "0.01"},
		{"composition": "TiO2", "energy_above_hull": "-0.5"},
		{"composition": "WC", "energy_above_hull": "abc"},
	}

	var log strings.Builder
	store := NewStore()
	summary := store.Load(rows, &log)

	if summary.Loaded != 2 || summary.Rejected != 3 {
		t.Fatalf("summary = %+v, want loaded 2 rejected 3", summary)
	}
	if store.Len() != 2 {
		t.Errorf("store holds %d candidates, want 2", store.Len())
	}
	for _, want := range []string{"rejected row 3", "rejected row 4", "rejected row 5"} {
		if !strings.Contains(log.String(), want) {
			t.Errorf("log missing %q:\n%s", want, log.String())
		}
	}
}

func TestLoadReplacesPriorSet(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0"},
		{"composition": "CrN", "energy_above_hull": "0.02"},
	})

	store.Load([]RawRow{
		{"composition": "TiO2", "energy_above_hull": "0.0"},
	}, io.Discard)

	if store.Len() != 1 {
		t.Fatalf("store holds %d candidates after reload, want 1", store.Len())
	}
	if store.All()[0].Composition != "TiO2" {
		t.Errorf("reloaded candidate = %q, want TiO2", store.All()[0].Composition)
	}
}

func TestParseCandidateValidation(t *testing.T) {
	tests := []struct {
		name      string
		row       RawRow
		wantField string
	}{
		{"missing composition", RawRow{"energy_above_hull": "0.0"}, "composition"},
		{"missing hull energy", RawRow{"composition": "TiN"}, "energy_above_hull"},
		{"negative hull energy", RawRow{"composition": "TiN", "energy_above_hull": "-0.1"}, "energy_above_hull"},
		{"non-numeric hull energy", RawRow{"composition": "TiN", "energy_above_hull": "x"}, "energy_above_hull"},
		{"non-numeric band gap", RawRow{"composition": "TiN", "energy_above_hull": "0", "band_gap": "wide"}, "band_gap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCandidate(tt.row, 0)
			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("parseCandidate error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestParseCandidateDerivesClass(t *testing.T) {
	tests := []struct {
		composition string
		class       string
		want        types.CompositionClass
	}{
		{"TiO2", "", types.ClassOxide},
		{"TiN", "", types.ClassNitride},
		{"WC", "", types.ClassCarbide},
		// An explicit class wins over derivation.
		{"TiN", "oxide", types.ClassOxide},
	}
	for _, tt := range tests {
		row := RawRow{"composition": tt.composition, "energy_above_hull": "0", "composition_class": tt.class}
		c, err := parseCandidate(row, 0)
		if err != nil {
			t.Fatalf("parseCandidate(%s): %v", tt.composition, err)
		}
		if c.Class != tt.want {
			t.Errorf("class for %s (explicit %q) = %q, want %q", tt.composition, tt.class, c.Class, tt.want)
		}
	}
}

func TestFilterStable(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "WC", "energy_above_hull": "0.15"},
		{"composition": "CrN", "energy_above_hull": "0.02"},
		{"composition": "TiO2", "energy_above_hull": "0.0"},
		{"composition": "TiN", "energy_above_hull": "0.0"},
	})

	stable := store.FilterStable(0.1)
	got := make([]string, len(stable))
	for i, c := range stable {
		got[i] = c.Composition
	}

	// Sorted by hull energy, composition breaks the tie at 0.0.
	want := []string{"TiN", "TiO2", "CrN"}
	if len(got) != len(want) {
		t.Fatalf("FilterStable = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterStable[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Threshold is inclusive.
	if n := len(store.FilterStable(0.15)); n != 4 {
		t.Errorf("FilterStable(0.15) returned %d, want 4 (boundary included)", n)
	}
}

func TestFilterStableDeterministic(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0"},
		{"composition": "CrN", "energy_above_hull": "0.0"},
		{"composition": "ZrN", "energy_above_hull": "0.0"},
	})

	first := store.FilterStable(0.1)
	for run := 0; run < 5; run++ {
		again := store.FilterStable(0.1)
		for i := range first {
			if again[i].Composition != first[i].Composition {
				t.Fatalf("run %d: order changed at %d: %q vs %q", run, i, again[i].Composition, first[i].Composition)
			}
		}
	}
}

func TestByClass(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0"},
		{"composition": "TiO2", "energy_above_hull": "0.0"},
		{"composition": "CrN", "energy_above_hull": "0.02"},
	})

	nitrides := store.ByClass(types.ClassNitride)
	if len(nitrides) != 2 {
		t.Fatalf("ByClass(nitride) returned %d, want 2", len(nitrides))
	}
	// Insertion order, not sorted.
	if nitrides[0].Composition != "TiN" || nitrides[1].Composition != "CrN" {
		t.Errorf("ByClass order = %q, %q, want TiN, CrN", nitrides[0].Composition, nitrides[1].Composition)
	}
	if got := store.ByClass(types.ClassCarbide); got != nil {
		t.Errorf("ByClass(carbide) = %v, want nil", got)
	}
}

func TestSummarize(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0", "formation_energy_per_atom": "-1.8", "band_gap": "0.0", "density": "5.4"},
		{"composition": "TiO2", "energy_above_hull": "0.0", "formation_energy_per_atom": "-3.3", "band_gap": "3.0", "density": "4.2"},
		{"composition": "WC", "energy_above_hull": "0.2", "formation_energy_per_atom": "-0.2", "band_gap": "0.0", "density": "15.6"},
	})

	s := store.Summarize(0.1)
	if s.Total != 3 || s.Stable != 2 {
		t.Errorf("total/stable = %d/%d, want 3/2", s.Total, s.Stable)
	}
	if s.ByClass[types.ClassNitride] != 1 || s.ByClass[types.ClassOxide] != 1 || s.ByClass[types.ClassCarbide] != 1 {
		t.Errorf("ByClass = %v, want one of each", s.ByClass)
	}
	if s.HullMin != 0.0 || s.HullMax != 0.2 {
		t.Errorf("hull min/max = %g/%g, want 0/0.2", s.HullMin, s.HullMax)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewStore().Summarize(0.1)
	if s.Total != 0 || s.Stable != 0 {
		t.Errorf("empty store summary = %+v, want zeros", s)
	}
}
