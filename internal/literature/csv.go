// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// entryColumns is the canonical export column order. Stable across
// versions so downstream files stay diffable; new columns go at the end.
var entryColumns = []string{
	"source_id",
	"authors",
	"year",
	"title",
	"journal",
	"material_description",
	"substrate",
	"thickness_nm",
	"deposition_method",
	types.MetricCorrosionCurrent,
	types.MetricContactResistance,
	types.MetricTestDuration,
	"electrolyte",
	"temperature_C",
	"potential_V",
	"current_density_A_cm2",
	types.MetricVoltageIncrease,
	types.MetricResistanceChange,
	types.MetricFeRelease,
	types.MetricCrRelease,
	types.MetricNiRelease,
	types.MetricCostEstimate,
	"scalability_notes",
	types.MetricSuccessRating,
	"failure_mode",
	"notes",
	"entry_date",
	"data_quality",
}

// Export returns the literature table in canonical form: a header row,
// then one row per entry in insertion order. Absent metrics export as
// blank cells, never as zeros.
func (s *Store) Export() [][]string {
	rows := [][]string{append([]string{}, entryColumns...)}
	for _, e := range s.entries {
		rows = append(rows, entryRow(e))
	}
	return rows
}

func entryRow(e types.LiteratureEntry) []string {
	return []string{
		e.SourceID,
		e.Authors,
		strconv.Itoa(e.Year),
		e.Title,
		e.Journal,
		e.Material,
		e.Substrate,
		optFloat(e.ThicknessNM),
		e.DepositionMethod,
		optFloat(e.CorrosionCurrent),
		optFloat(e.ContactResistance),
		optFloat(e.TestDurationHours),
		e.Electrolyte,
		optFloat(e.TemperatureC),
		optFloat(e.PotentialV),
		optFloat(e.CurrentDensityACm2),
		optFloat(e.VoltageIncreaseUVHr),
		optFloat(e.ResistanceChangePercent),
		optFloat(e.FeRelease),
		optFloat(e.CrRelease),
		optFloat(e.NiRelease),
		optFloat(e.CostEstimate),
		e.ScalabilityNotes,
		optInt(e.SuccessRating),
		e.FailureMode,
		e.Notes,
		e.EntryDate,
		string(e.Quality),
	}
}

// WriteCSV writes the canonical export as delimited text.
func (s *Store) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(s.Export()); err != nil {
		return fmt.Errorf("writing literature CSV: %w", err)
	}
	return nil
}

// RawRow is one tabular input record, column name to cell text.
type RawRow map[string]string

// ReadCSV parses delimited literature rows into RawRows using the header
// line for column names.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading literature CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(RawRow, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadSummary holds counts from a bulk literature import.
type LoadSummary struct {
	Loaded   int
	Rejected int
}

// Total returns the number of rows processed.
func (s LoadSummary) Total() int {
	return s.Loaded + s.Rejected
}

// LoadRows bulk-imports persisted rows through the same validated Add
// path used for programmatic entries; a file edited by hand gets no
// shortcut around validation. Rejected rows are reported to w and the
// rest of the batch continues.
func (s *Store) LoadRows(rows []RawRow, w io.Writer) LoadSummary {
	return s.LoadRowsWith(rows, false, w)
}

// LoadRowsWith is LoadRows with the correction flag applied to every
// row, for re-importing an edited export over existing entries.
func (s *Store) LoadRowsWith(rows []RawRow, correction bool, w io.Writer) LoadSummary {
	var summary LoadSummary
	for i, row := range rows {
		entry, err := parseEntry(row)
		if err == nil {
			err = s.Add(entry, correction)
		}
		if err != nil {
			fmt.Fprintf(w, "rejected row %d: %v\n", i+1, err)
			summary.Rejected++
			continue
		}
		summary.Loaded++
	}
	fmt.Fprintf(w, "\nloaded: %d, rejected: %d\n", summary.Loaded, summary.Rejected)
	return summary
}

// parseEntry converts one raw row, mapping blank numeric cells to absent
// values. Value invariants are checked by Add.
func parseEntry(row RawRow) (types.LiteratureEntry, error) {
	e := types.LiteratureEntry{
		SourceID:         strings.TrimSpace(row["source_id"]),
		Authors:          row["authors"],
		Title:            row["title"],
		Journal:          row["journal"],
		Material:         strings.TrimSpace(row["material_description"]),
		Substrate:        row["substrate"],
		DepositionMethod: row["deposition_method"],
		Electrolyte:      row["electrolyte"],
		ScalabilityNotes: row["scalability_notes"],
		FailureMode:      row["failure_mode"],
		Notes:            row["notes"],
		EntryDate:        row["entry_date"],
		Quality:          types.DataQuality(strings.TrimSpace(row["data_quality"])),
	}

	if cell := strings.TrimSpace(row["year"]); cell != "" {
		year, err := strconv.Atoi(cell)
		if err != nil {
			return e, &types.ValidationError{Record: e.SourceID, Field: "year", Reason: fmt.Sprintf("not a number: %q", cell)}
		}
		e.Year = year
	}

	for _, f := range []struct {
		col string
		dst **float64
	}{
		{"thickness_nm", &e.ThicknessNM},
		{types.MetricCorrosionCurrent, &e.CorrosionCurrent},
		{types.MetricContactResistance, &e.ContactResistance},
		{types.MetricTestDuration, &e.TestDurationHours},
		{"temperature_C", &e.TemperatureC},
		{"potential_V", &e.PotentialV},
		{"current_density_A_cm2", &e.CurrentDensityACm2},
		{types.MetricVoltageIncrease, &e.VoltageIncreaseUVHr},
		{types.MetricResistanceChange, &e.ResistanceChangePercent},
		{types.MetricFeRelease, &e.FeRelease},
		{types.MetricCrRelease, &e.CrRelease},
		{types.MetricNiRelease, &e.NiRelease},
		{types.MetricCostEstimate, &e.CostEstimate},
	} {
		cell := strings.TrimSpace(row[f.col])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return e, &types.ValidationError{Record: e.SourceID, Field: f.col, Reason: fmt.Sprintf("not a number: %q", cell)}
		}
		*f.dst = types.Float(v)
	}

	if cell := strings.TrimSpace(row[types.MetricSuccessRating]); cell != "" {
		// Ratings written by spreadsheet tools sometimes come back as "4.0".
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || v != float64(int(v)) {
			return e, &types.ValidationError{Record: e.SourceID, Field: types.MetricSuccessRating, Reason: fmt.Sprintf("not an integer: %q", cell)}
		}
		e.SuccessRating = types.Int(int(v))
	}

	return e, nil
}

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
