// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package benchmark compares record metrics against fixed performance
// targets. Evaluation is a pure function of its inputs; callers run it
// per record across an entire store.
package benchmark

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// Evaluate checks one record against each target and returns a verdict
// per metric name. A metric the record does not carry yields an unknown
// verdict: missing data never counts as meeting or violating a target.
func Evaluate(record types.MetricSource, targets []types.BenchmarkTarget) map[string]types.Verdict {
	verdicts := make(map[string]types.Verdict, len(targets))
	for _, t := range targets {
		value, ok := record.Metric(t.MetricName)
		if !ok {
			verdicts[t.MetricName] = types.Verdict{}
			continue
		}

		// Margin is oriented so positive always means passing headroom.
		var margin float64
		switch t.Comparison {
		case types.AtLeast:
			margin = value - t.Threshold
		default:
			margin = t.Threshold - value
		}

		verdicts[t.MetricName] = types.Verdict{
			Known:  true,
			Met:    margin >= 0,
			Margin: margin,
		}
	}
	return verdicts
}

// Row is one line of the benchmark table: a record evaluated against one
// target.
type Row struct {
	RecordID   string        `json:"record_id" yaml:"record_id"`
	Material   string        `json:"material" yaml:"material"`
	MetricName string        `json:"metric_name" yaml:"metric_name"`
	Unit       string        `json:"unit" yaml:"unit"`
	Verdict    types.Verdict `json:"verdict" yaml:"verdict"`
}

// EvaluateEntries evaluates every literature entry against the targets
// and returns one row per (entry, target) pair, in entry order then
// target order.
func EvaluateEntries(entries []types.LiteratureEntry, targets []types.BenchmarkTarget) []Row {
	rows := make([]Row, 0, len(entries)*len(targets))
	for _, e := range entries {
		verdicts := Evaluate(e, targets)
		for _, t := range targets {
			rows = append(rows, Row{
				RecordID:   e.SourceID,
				Material:   e.Material,
				MetricName: t.MetricName,
				Unit:       t.Unit,
				Verdict:    verdicts[t.MetricName],
			})
		}
	}
	return rows
}

// MeetsAll reports whether the record meets every target it has data
// for, and how many targets had no data. A record with any unknown
// verdict never counts as a full pass.
func MeetsAll(record types.MetricSource, targets []types.BenchmarkTarget) (met bool, unknown int) {
	met = true
	for _, v := range Evaluate(record, targets) {
		if !v.Known {
			unknown++
			continue
		}
		if !v.Met {
			met = false
		}
	}
	if unknown > 0 {
		met = false
	}
	return met, unknown
}

// FormatTable writes the benchmark rows as a human-readable table.
func FormatTable(rows []Row, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No records to benchmark.")
		return
	}

	fmt.Fprintf(w, "%-30s  %-20s  %-28s  %-8s  %s\n",
		"Record", "Material", "Metric", "Met", "Margin")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range rows {
		id := r.RecordID
		if len(id) > 30 {
			id = id[:27] + "..."
		}
		material := r.Material
		if len(material) > 20 {
			material = material[:17] + "..."
		}

		met, margin := "unknown", "-"
		if r.Verdict.Known {
			met = fmt.Sprintf("%t", r.Verdict.Met)
			margin = fmt.Sprintf("%+.3g %s", r.Verdict.Margin, r.Unit)
		}
		fmt.Fprintf(w, "%-30s  %-20s  %-28s  %-8s  %s\n",
			id, material, r.MetricName, met, margin)
	}

	fmt.Fprintf(w, "\n%d verdicts\n", len(rows))
}

// SortTargets returns a copy of targets in metric-name order, for
// deterministic report output when targets come from an unordered map.
func SortTargets(targets []types.BenchmarkTarget) []types.BenchmarkTarget {
	sorted := make([]types.BenchmarkTarget, len(targets))
	copy(sorted, targets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MetricName < sorted[j].MetricName
	})
	return sorted
}
