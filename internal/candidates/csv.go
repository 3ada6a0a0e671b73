// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidates

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// RawRow is one tabular input record, column name to cell text. Blank
// cells mean absent, never zero.
type RawRow map[string]string

// Required and recognized candidate columns. Anything else passes
// through as an opaque extra.
const (
	colComposition     = "composition"
	colClass           = "composition_class"
	colFormationEnergy = "formation_energy_per_atom"
	colEnergyAboveHull = "energy_above_hull"
	colBandGap         = "band_gap"
	colDensity         = "density"
	colCrystalSystem   = "crystal_system"
)

// candidateColumns is the canonical export column order. Stable across
// versions: downstream tools rely on positional access.
var candidateColumns = []string{
	colComposition,
	colClass,
	colFormationEnergy,
	colEnergyAboveHull,
	colBandGap,
	colDensity,
	colCrystalSystem,
}

// parseCandidate validates one raw row and converts it at the ingestion
// boundary, so nothing downstream re-checks blank-versus-zero.
func parseCandidate(row RawRow, idx int) (types.MaterialCandidate, error) {
	composition := strings.TrimSpace(row[colComposition])
	record := composition
	if record == "" {
		record = fmt.Sprintf("row %d", idx+1)
	}

	if composition == "" {
		return types.MaterialCandidate{}, &types.ValidationError{
			Record: record, Field: colComposition, Reason: "missing",
		}
	}

	hull, err := parseFloatCell(row, colEnergyAboveHull)
	if err != nil {
		return types.MaterialCandidate{}, &types.ValidationError{
			Record: record, Field: colEnergyAboveHull, Reason: err.Error(),
		}
	}
	if hull < 0 {
		return types.MaterialCandidate{}, &types.ValidationError{
			Record: record, Field: colEnergyAboveHull,
			Reason: fmt.Sprintf("negative value %g", hull),
		}
	}

	c := types.MaterialCandidate{
		Composition:     composition,
		EnergyAboveHull: hull,
		CrystalSystem:   strings.TrimSpace(row[colCrystalSystem]),
	}

	for _, f := range []struct {
		col string
		dst *float64
	}{
		{colFormationEnergy, &c.FormationEnergyPerAtom},
		{colBandGap, &c.BandGap},
		{colDensity, &c.Density},
	} {
		if strings.TrimSpace(row[f.col]) == "" {
			continue
		}
		v, err := parseFloatCell(row, f.col)
		if err != nil {
			return types.MaterialCandidate{}, &types.ValidationError{
				Record: record, Field: f.col, Reason: err.Error(),
			}
		}
		*f.dst = v
	}

	if class := types.CompositionClass(strings.TrimSpace(row[colClass])); class != "" {
		c.Class = class
	} else {
		c.Class = classify(composition)
	}

	// Unrecognized columns ride along untouched.
	known := make(map[string]bool, len(candidateColumns))
	for _, col := range candidateColumns {
		known[col] = true
	}
	for col, val := range row {
		if !known[col] && val != "" {
			if c.Extra == nil {
				c.Extra = make(map[string]string)
			}
			c.Extra[col] = val
		}
	}

	return c, nil
}

func parseFloatCell(row RawRow, col string) (float64, error) {
	cell := strings.TrimSpace(row[col])
	if cell == "" {
		return 0, fmt.Errorf("missing")
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	return v, nil
}

// Export returns the candidate table in canonical form: a header row,
// then one row per candidate sorted by composition ascending. Extra
// columns are appended after the canonical ones in sorted key order.
func (s *Store) Export() [][]string {
	sorted := s.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Composition < sorted[j].Composition
	})

	extraCols := collectExtraColumns(sorted)
	header := append(append([]string{}, candidateColumns...), extraCols...)

	rows := [][]string{header}
	for _, c := range sorted {
		row := []string{
			c.Composition,
			string(c.Class),
			formatFloat(c.FormationEnergyPerAtom),
			formatFloat(c.EnergyAboveHull),
			formatFloat(c.BandGap),
			formatFloat(c.Density),
			c.CrystalSystem,
		}
		for _, col := range extraCols {
			row = append(row, c.Extra[col])
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the canonical export as delimited text.
func (s *Store) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(s.Export()); err != nil {
		return fmt.Errorf("writing candidate CSV: %w", err)
	}
	return nil
}

// ReadCSV parses delimited candidate rows into RawRows using the header
// line for column names, ready for Load.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading candidate CSV: %w", err)
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

func collectExtraColumns(cands []types.MaterialCandidate) []string {
	seen := make(map[string]bool)
	for _, c := range cands {
		for col := range c.Extra {
			seen[col] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
