// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps aggregates coverage statistics across the candidate and
// literature sets: what has no experimental counterpart, which metrics
// the literature rarely reports, and which composition classes are
// under-represented relative to the configured target distribution.
package gaps

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/materials-engine/pkg/types"
)

const (
	defaultSparseThreshold   = 0.5
	defaultLongDurationHours = 10000
)

// Analyze builds a GapReport over the stores and the joined table. It
// refuses an empty literature set with a PreconditionError: a gap report
// over zero entries would read as "no gaps found", which is the opposite
// of the truth.
func Analyze(candidates []types.MaterialCandidate, joined []types.JoinedRecord, cfg types.GapConfig) (types.GapReport, error) {
	if len(joined) == 0 {
		return types.GapReport{}, &types.PreconditionError{
			Op: "gap analysis", Reason: "literature store is empty",
		}
	}

	sparseThreshold := cfg.SparseThreshold
	if sparseThreshold <= 0 {
		sparseThreshold = defaultSparseThreshold
	}
	longDuration := cfg.LongDurationHours
	if longDuration <= 0 {
		longDuration = defaultLongDurationHours
	}

	report := types.GapReport{
		TotalEntries:      len(joined),
		MetricMissingness: make(map[string]float64, len(types.LiteratureMetrics)),
	}

	matchedCompositions := make(map[string]bool)
	for _, j := range joined {
		if j.Matched() {
			report.MatchedEntries++
			matchedCompositions[j.Candidate.Composition] = true
		} else {
			report.UnmatchedEntries++
		}
		if d, ok := j.Entry.Metric(types.MetricTestDuration); ok && d >= longDuration {
			report.LongDurationEntries++
		}
	}
	report.MatchRate = float64(report.MatchedEntries) / float64(report.TotalEntries)

	for _, c := range candidates {
		if !matchedCompositions[c.Composition] {
			report.CandidatesWithoutExperiments++
		}
	}

	// Per-metric missingness over every metric an entry may carry.
	for _, metric := range types.LiteratureMetrics {
		missing := 0
		for _, j := range joined {
			if _, ok := j.Entry.Metric(metric); !ok {
				missing++
			}
		}
		rate := float64(missing) / float64(report.TotalEntries)
		report.MetricMissingness[metric] = rate
		if rate >= sparseThreshold {
			report.SparseMetrics = append(report.SparseMetrics, metric)
		}
	}
	sort.SliceStable(report.SparseMetrics, func(i, j int) bool {
		mi := report.MetricMissingness[report.SparseMetrics[i]]
		mj := report.MetricMissingness[report.SparseMetrics[j]]
		if mi != mj {
			return mi > mj
		}
		return report.SparseMetrics[i] < report.SparseMetrics[j]
	})

	report.ClassDeviations = classDeviations(candidates, matchedCompositions, cfg.ClassTargets)
	return report, nil
}

// classDeviations compares the class distribution of matched candidates
// to the configured target fractions, in canonical class order.
func classDeviations(candidates []types.MaterialCandidate, matched map[string]bool, targets map[types.CompositionClass]float64) []types.ClassDeviation {
	counts := make(map[types.CompositionClass]int)
	total := 0
	for _, c := range candidates {
		if matched[c.Composition] {
			counts[c.Class]++
			total++
		}
	}

	deviations := make([]types.ClassDeviation, 0, len(types.CompositionClasses))
	for _, class := range types.CompositionClasses {
		observed := 0.0
		if total > 0 {
			observed = float64(counts[class]) / float64(total)
		}
		target := targets[class]
		deviations = append(deviations, types.ClassDeviation{
			Class:     class,
			Observed:  observed,
			Target:    target,
			Deviation: observed - target,
		})
	}
	return deviations
}

// FormatReport writes the gap report as human-readable text.
func FormatReport(r types.GapReport, w io.Writer) {
	fmt.Fprintf(w, "Literature entries:     %d\n", r.TotalEntries)
	fmt.Fprintf(w, "Matched to candidates:  %d (%.0f%%)\n", r.MatchedEntries, r.MatchRate*100)
	fmt.Fprintf(w, "Unmatched entries:      %d\n", r.UnmatchedEntries)
	fmt.Fprintf(w, "Candidates untested:    %d\n", r.CandidatesWithoutExperiments)
	fmt.Fprintf(w, "Long-duration entries:  %d\n", r.LongDurationEntries)

	if len(r.SparseMetrics) > 0 {
		fmt.Fprintf(w, "\nSparse metrics (missing from most entries):\n")
		for _, m := range r.SparseMetrics {
			fmt.Fprintf(w, "  %-30s  %.0f%% missing\n", m, r.MetricMissingness[m]*100)
		}
	}

	fmt.Fprintf(w, "\nClass representation among matched candidates:\n")
	for _, d := range r.ClassDeviations {
		fmt.Fprintf(w, "  %-10s  observed %.2f  target %.2f  deviation %+.2f\n",
			d.Class, d.Observed, d.Target, d.Deviation)
	}
}
