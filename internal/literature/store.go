// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package literature holds the experimental coating performance entries
// extracted from published papers. The store is an append-mostly log:
// entries are added one per extraction event, never deleted, and only
// replaced by an explicit correction carrying the same source DOI.
package literature

import (
	"fmt"
	"io"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// Store owns the literature entries. Callers must not call Add
// concurrently with Query or Export; the batch sizes in scope make
// reader-writer exclusion at the call site the right tradeoff.
type Store struct {
	entries []types.LiteratureEntry
	byID    map[string]int
	logw    io.Writer
}

// NewStore returns an empty literature store. Corrections are logged to
// logw; pass io.Discard to silence them.
func NewStore(logw io.Writer) *Store {
	if logw == nil {
		logw = io.Discard
	}
	return &Store{byID: make(map[string]int), logw: logw}
}

// Add validates and stores one entry. Without the correction flag a
// source_id collision is a DuplicateKeyError and the store is left
// untouched; with it, the prior entry is replaced in place and the
// replacement is logged. Each Add is independent: one rejection never
// affects entries already stored.
func (s *Store) Add(entry types.LiteratureEntry, correction bool) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	if idx, ok := s.byID[entry.SourceID]; ok {
		if !correction {
			return &types.DuplicateKeyError{SourceID: entry.SourceID}
		}
		s.entries[idx] = entry
		fmt.Fprintf(s.logw, "corrected %s (%s)\n", entry.SourceID, entry.Material)
		return nil
	}

	s.byID[entry.SourceID] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns the entries in insertion order, as a copy.
func (s *Store) All() []types.LiteratureEntry {
	out := make([]types.LiteratureEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Query returns the entries satisfying pred, in insertion order. Pure
// read; the returned slice is fresh.
func (s *Store) Query(pred func(types.LiteratureEntry) bool) []types.LiteratureEntry {
	var out []types.LiteratureEntry
	for _, e := range s.entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// validateEntry enforces the ingestion invariants: required metadata
// present, every provided numeric non-negative, thickness/duration/cost
// strictly positive, rating within 1-5.
func validateEntry(e types.LiteratureEntry) error {
	record := e.SourceID
	if record == "" {
		record = e.Material
	}

	if e.SourceID == "" {
		return &types.ValidationError{Record: record, Field: "source_id", Reason: "missing"}
	}
	if e.Year == 0 {
		return &types.ValidationError{Record: record, Field: "year", Reason: "missing"}
	}
	if e.Material == "" {
		return &types.ValidationError{Record: record, Field: "material_description", Reason: "missing"}
	}

	for _, f := range []struct {
		name           string
		val            *float64
		strictPositive bool
	}{
		{"thickness_nm", e.ThicknessNM, true},
		{types.MetricCorrosionCurrent, e.CorrosionCurrent, false},
		{types.MetricContactResistance, e.ContactResistance, false},
		{types.MetricTestDuration, e.TestDurationHours, true},
		{"temperature_C", e.TemperatureC, false},
		{"potential_V", e.PotentialV, false},
		{"current_density_A_cm2", e.CurrentDensityACm2, false},
		{types.MetricVoltageIncrease, e.VoltageIncreaseUVHr, false},
		{types.MetricResistanceChange, e.ResistanceChangePercent, false},
		{types.MetricFeRelease, e.FeRelease, false},
		{types.MetricCrRelease, e.CrRelease, false},
		{types.MetricNiRelease, e.NiRelease, false},
		{types.MetricCostEstimate, e.CostEstimate, true},
	} {
		if f.val == nil {
			continue
		}
		if *f.val < 0 {
			return &types.ValidationError{
				Record: record, Field: f.name,
				Reason: fmt.Sprintf("negative value %g", *f.val),
			}
		}
		if f.strictPositive && *f.val == 0 {
			return &types.ValidationError{
				Record: record, Field: f.name, Reason: "must be positive",
			}
		}
	}

	if e.SuccessRating != nil && (*e.SuccessRating < 1 || *e.SuccessRating > 5) {
		return &types.ValidationError{
			Record: record, Field: types.MetricSuccessRating,
			Reason: fmt.Sprintf("rating %d outside 1-5", *e.SuccessRating),
		}
	}

	return nil
}

// Summary holds descriptive statistics over the literature set.
type Summary struct {
	TotalEntries          int
	YearMin               int
	YearMax               int
	MaterialsTested       int
	MaxTestDurationHours  float64
	BestCorrosionCurrent  *float64
	BestContactResistance *float64
	MeanCostEstimate      *float64
}

// Summarize computes descriptive statistics. Absent metrics are excluded
// from aggregates, never zero-filled.
func (s *Store) Summarize() Summary {
	summary := Summary{TotalEntries: len(s.entries)}
	if summary.TotalEntries == 0 {
		return summary
	}

	materials := make(map[string]bool)
	var costSum float64
	var costN int

	for i, e := range s.entries {
		if i == 0 || e.Year < summary.YearMin {
			summary.YearMin = e.Year
		}
		if e.Year > summary.YearMax {
			summary.YearMax = e.Year
		}
		materials[e.Material] = true

		if e.TestDurationHours != nil && *e.TestDurationHours > summary.MaxTestDurationHours {
			summary.MaxTestDurationHours = *e.TestDurationHours
		}
		if e.CorrosionCurrent != nil &&
			(summary.BestCorrosionCurrent == nil || *e.CorrosionCurrent < *summary.BestCorrosionCurrent) {
			summary.BestCorrosionCurrent = types.Float(*e.CorrosionCurrent)
		}
		if e.ContactResistance != nil &&
			(summary.BestContactResistance == nil || *e.ContactResistance < *summary.BestContactResistance) {
			summary.BestContactResistance = types.Float(*e.ContactResistance)
		}
		if e.CostEstimate != nil {
			costSum += *e.CostEstimate
			costN++
		}
	}

	summary.MaterialsTested = len(materials)
	if costN > 0 {
		summary.MeanCostEstimate = types.Float(costSum / float64(costN))
	}
	return summary
}
