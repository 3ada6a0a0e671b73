// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package candidates holds the normalized computational coating
// candidates and answers stability and class queries over them. The
// store is read-mostly: one Load replaces the whole set, everything
// else is a pure read.
package candidates

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/materials-engine/internal/identity"
	"github.com/pdiddy/materials-engine/pkg/types"
)

// Store owns the current candidate set. Callers must not call Load
// concurrently with any read; batches are small enough that callers
// serialize at the ingestion boundary instead of locking here.
type Store struct {
	candidates []types.MaterialCandidate
}

// NewStore returns an empty candidate store.
func NewStore() *Store {
	return &Store{}
}

// LoadSummary holds counts from a candidate ingestion run.
type LoadSummary struct {
	Loaded   int
	Rejected int
}

// Total returns the number of rows processed.
func (s LoadSummary) Total() int {
	return s.Loaded + s.Rejected
}

// Load validates and normalizes raw candidate rows, replacing the
// current set. Rows missing a composition or carrying a negative energy
// above hull are rejected with a ValidationError written to w; the rest
// of the batch still loads. Rejections never abort the batch and rejected
// rows are never guessed at.
func (s *Store) Load(rows []RawRow, w io.Writer) LoadSummary {
	var summary LoadSummary
	loaded := make([]types.MaterialCandidate, 0, len(rows))

	for i, row := range rows {
		c, err := parseCandidate(row, i)
		if err != nil {
			fmt.Fprintf(w, "rejected row %d: %v\n", i+1, err)
			summary.Rejected++
			continue
		}
		loaded = append(loaded, c)
		summary.Loaded++
	}

	s.candidates = loaded
	fmt.Fprintf(w, "\nloaded: %d, rejected: %d\n", summary.Loaded, summary.Rejected)
	return summary
}

// Replace swaps in an already-validated candidate set, bypassing row
// parsing. Used when reloading from the archive, which only ever holds
// candidates that passed ingestion.
func (s *Store) Replace(cands []types.MaterialCandidate) {
	s.candidates = make([]types.MaterialCandidate, len(cands))
	copy(s.candidates, cands)
}

// All returns the candidates in insertion order. The slice is a copy;
// mutating it does not touch the store.
func (s *Store) All() []types.MaterialCandidate {
	out := make([]types.MaterialCandidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Len returns the number of stored candidates.
func (s *Store) Len() int {
	return len(s.candidates)
}

// FilterStable returns candidates with energy above hull at or below
// threshold, sorted ascending by energy above hull with composition as
// the tie break. The ordering is deterministic so repeated exports diff
// cleanly.
func (s *Store) FilterStable(threshold float64) []types.MaterialCandidate {
	var stable []types.MaterialCandidate
	for _, c := range s.candidates {
		if c.IsStable(threshold) {
			stable = append(stable, c)
		}
	}

	sort.SliceStable(stable, func(i, j int) bool {
		if stable[i].EnergyAboveHull != stable[j].EnergyAboveHull {
			return stable[i].EnergyAboveHull < stable[j].EnergyAboveHull
		}
		return stable[i].Composition < stable[j].Composition
	})
	return stable
}

// ByClass returns candidates of the given composition class in insertion
// order.
func (s *Store) ByClass(class types.CompositionClass) []types.MaterialCandidate {
	var out []types.MaterialCandidate
	for _, c := range s.candidates {
		if c.Class == class {
			out = append(out, c)
		}
	}
	return out
}

// Summary holds descriptive statistics over the candidate set.
type Summary struct {
	Total               int
	Stable              int
	ByClass             map[types.CompositionClass]int
	MeanFormationEnergy float64
	MeanBandGap         float64
	MeanDensity         float64
	HullMin             float64
	HullMax             float64
	HullMean            float64
}

// Summarize computes summary statistics, counting stability against
// threshold. An empty store yields a zero Summary.
func (s *Store) Summarize(threshold float64) Summary {
	summary := Summary{
		Total:   len(s.candidates),
		ByClass: make(map[types.CompositionClass]int),
	}
	if summary.Total == 0 {
		return summary
	}

	summary.HullMin = s.candidates[0].EnergyAboveHull
	summary.HullMax = s.candidates[0].EnergyAboveHull

	var sumFE, sumGap, sumDensity, sumHull float64
	for _, c := range s.candidates {
		if c.IsStable(threshold) {
			summary.Stable++
		}
		summary.ByClass[c.Class]++
		sumFE += c.FormationEnergyPerAtom
		sumGap += c.BandGap
		sumDensity += c.Density
		sumHull += c.EnergyAboveHull
		if c.EnergyAboveHull < summary.HullMin {
			summary.HullMin = c.EnergyAboveHull
		}
		if c.EnergyAboveHull > summary.HullMax {
			summary.HullMax = c.EnergyAboveHull
		}
	}

	n := float64(summary.Total)
	summary.MeanFormationEnergy = sumFE / n
	summary.MeanBandGap = sumGap / n
	summary.MeanDensity = sumDensity / n
	summary.HullMean = sumHull / n
	return summary
}

// classify derives the composition class from the formula when the input
// row does not carry one.
func classify(formula string) types.CompositionClass {
	return identity.ClassifyFormula(formula)
}
