// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidates

import (
	"io"
	"strings"
	"testing"
)

func TestExportRoundTrip(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0", "band_gap": "0.0", "crystal_system": "cubic", "material_id": "mp-492"},
		{"composition": "CrN", "energy_above_hull": "0.02", "density": "5.9"},
	})

	var buf strings.Builder
	if err := store.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := ReadCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	reloaded := NewStore()
	summary := reloaded.Load(rows, io.Discard)
	if summary.Rejected != 0 {
		t.Fatalf("round trip rejected %d rows", summary.Rejected)
	}
	if reloaded.Len() != store.Len() {
		t.Fatalf("round trip lost candidates: %d vs %d", reloaded.Len(), store.Len())
	}

	// Export sorts by composition, so CrN comes first.
	got := reloaded.All()
	if got[0].Composition != "CrN" || got[1].Composition != "TiN" {
		t.Errorf("export order = %q, %q, want CrN, TiN", got[0].Composition, got[1].Composition)
	}
	if got[1].Extra["material_id"] != "mp-492" {
		t.Errorf("extra column lost in round trip: %v", got[1].Extra)
	}
}

func TestExportHeader(t *testing.T) {
	store := loadTestStore(t, []RawRow{
		{"composition": "TiN", "energy_above_hull": "0.0"},
	})

	rows := store.Export()
	if len(rows) != 2 {
		t.Fatalf("Export returned %d rows, want 2", len(rows))
	}
	header := strings.Join(rows[0], ",")
	want := "composition,composition_class,formation_energy_per_atom,energy_above_hull,band_gap,density,crystal_system"
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows != nil {
		t.Errorf("ReadCSV of empty input = %v, want nil", rows)
	}
}

func TestReadCSVShortRow(t *testing.T) {
	// The csv package reports inconsistent field counts.
	input := "composition,energy_above_hull\nTiN\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Error("expected error for short row")
	}
}
