// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/materials-engine/pkg/types"
)

func TestExportRoundTrip(t *testing.T) {
	store := NewStore(nil)
	if err := store.SeedKeyPapers(); err != nil {
		t.Fatalf("SeedKeyPapers: %v", err)
	}

	var buf strings.Builder
	if err := store.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := ReadCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	reloaded := NewStore(nil)
	summary := reloaded.LoadRows(rows, io.Discard)
	if summary.Rejected != 0 {
		t.Fatalf("round trip rejected %d rows", summary.Rejected)
	}
	if reloaded.Len() != store.Len() {
		t.Fatalf("round trip lost entries: %d vs %d", reloaded.Len(), store.Len())
	}

	// Insertion order and optional values survive.
	orig, back := store.All(), reloaded.All()
	for i := range orig {
		if back[i].SourceID != orig[i].SourceID {
			t.Errorf("entry %d is %q, want %q", i, back[i].SourceID, orig[i].SourceID)
		}
	}
	if back[0].CorrosionCurrent == nil || *back[0].CorrosionCurrent != *orig[0].CorrosionCurrent {
		t.Errorf("corrosion current lost: %v vs %v", back[0].CorrosionCurrent, orig[0].CorrosionCurrent)
	}
}

func TestExportAbsentAsBlank(t *testing.T) {
	store := NewStore(nil)
	entry := types.LiteratureEntry{SourceID: "sparse", Year: 2020, Material: "TiN"}
	if err := store.Add(entry, false); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows := store.Export()
	header, row := rows[0], rows[1]
	for i, col := range header {
		if col == types.MetricCorrosionCurrent && row[i] != "" {
			t.Errorf("absent corrosion current exported as %q, want blank", row[i])
		}
	}
}

func TestLoadRowsReporting(t *testing.T) {
	rows := []RawRow{
		{"source_id": "good", "year": "2020", "material_description": "TiN"},
		{"source_id": "", "year": "2020", "material_description": "CrN"},
		{"source_id": "bad-year", "year": "twenty", "material_description": "WC"},
		{"source_id": "bad-metric", "year": "2020", "material_description": "WC", "corrosion_current_uA_cm2": "-4"},
	}

	var log strings.Builder
	store := NewStore(nil)
	summary := store.LoadRows(rows, &log)

	if summary.Loaded != 1 || summary.Rejected != 3 {
		t.Fatalf("summary = %+v, want loaded 1 rejected 3", summary)
	}
	for _, want := range []string{"rejected row 2", "rejected row 3", "rejected row 4"} {
		if !strings.Contains(log.String(), want) {
			t.Errorf("log missing %q:\n%s", want, log.String())
		}
	}
}

func TestLoadRowsDuplicateWithinBatch(t *testing.T) {
	rows := []RawRow{
		{"source_id": "dup", "year": "2020", "material_description": "TiN"},
		{"source_id": "dup", "year": "2021", "material_description": "CrN"},
	}

	store := NewStore(nil)
	summary := store.LoadRows(rows, io.Discard)

	if summary.Loaded != 1 || summary.Rejected != 1 {
		t.Fatalf("summary = %+v, want loaded 1 rejected 1", summary)
	}
	if got := store.All()[0].Material; got != "TiN" {
		t.Errorf("first entry wins, got %q", got)
	}
}

func TestLoadRowsWithCorrection(t *testing.T) {
	store := NewStore(nil)
	if err := store.Add(types.LiteratureEntry{SourceID: "dup", Year: 2020, Material: "TiN"}, false); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows := []RawRow{
		{"source_id": "dup", "year": "2021", "material_description": "TiN", "contact_resistance_mOhm_cm2": "6.5"},
	}
	summary := store.LoadRowsWith(rows, true, io.Discard)

	if summary.Loaded != 1 || summary.Rejected != 0 {
		t.Fatalf("summary = %+v, want loaded 1 rejected 0", summary)
	}
	if store.Len() != 1 {
		t.Fatalf("store holds %d entries, want 1", store.Len())
	}
	got := store.All()[0]
	if got.Year != 2021 || got.ContactResistance == nil {
		t.Errorf("correction not applied: %+v", got)
	}
}

func TestParseEntryRating(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    int
		wantErr bool
	}{
		{"plain integer", "4", 4, false},
		{"spreadsheet float", "4.0", 4, false},
		{"fractional", "3.5", 0, true},
		{"non-numeric", "good", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := RawRow{"source_id": "x", "year": "2020", "material_description": "TiN", "success_rating": tt.cell}
			e, err := parseEntry(row)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseEntry rating %q expected error", tt.cell)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEntry: %v", err)
			}
			if e.SuccessRating == nil || *e.SuccessRating != tt.want {
				t.Errorf("rating = %v, want %d", e.SuccessRating, tt.want)
			}
		})
	}
}
