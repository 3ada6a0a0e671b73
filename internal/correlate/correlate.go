// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package correlate computes pairwise linear association between
// computational candidate features and experimental outcomes over the
// joined record table.
package correlate

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// Compute returns one CorrelationResult per (feature, target) pair.
// Only matched records with both values present enter a pair's sample;
// absent metrics are excluded, never zero-filled. The coefficient is nil
// when the sample has fewer than two points or either series is
// constant. A requested series that no matched record carries at all is
// a PreconditionError: correlating against nothing is a caller mistake,
// not an empty result.
func Compute(joined []types.JoinedRecord, features, targets []string) ([]types.CorrelationResult, error) {
	if len(features) == 0 || len(targets) == 0 {
		return nil, &types.PreconditionError{
			Op: "correlate", Reason: "no feature or target series requested",
		}
	}

	matched := make([]types.JoinedRecord, 0, len(joined))
	for _, j := range joined {
		if j.Matched() {
			matched = append(matched, j)
		}
	}

	for _, name := range append(append([]string{}, features...), targets...) {
		if !anyCarries(matched, name) {
			return nil, &types.PreconditionError{
				Op:     "correlate",
				Reason: fmt.Sprintf("series %q absent from every matched record", name),
			}
		}
	}

	var results []types.CorrelationResult
	for _, feature := range features {
		for _, target := range targets {
			var xs, ys []float64
			for _, j := range matched {
				x, okX := j.Metric(feature)
				y, okY := j.Entry.Metric(target)
				if okX && okY {
					xs = append(xs, x)
					ys = append(ys, y)
				}
			}

			result := types.CorrelationResult{
				FeatureName: feature,
				TargetName:  target,
				SampleSize:  len(xs),
			}
			if r, ok := pearson(xs, ys); ok {
				result.Coefficient = types.Float(r)
			}
			results = append(results, result)
		}
	}

	sortResults(results)
	return results, nil
}

// sortResults orders strongest associations first: descending absolute
// coefficient, nil coefficients last, ties broken by (feature, target)
// lexicographic order.
func sortResults(results []types.CorrelationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		ci, cj := results[i].Coefficient, results[j].Coefficient
		switch {
		case ci == nil && cj == nil:
			// fall through to lexical tie break
		case ci == nil:
			return false
		case cj == nil:
			return true
		case math.Abs(*ci) != math.Abs(*cj):
			return math.Abs(*ci) > math.Abs(*cj)
		}
		if results[i].FeatureName != results[j].FeatureName {
			return results[i].FeatureName < results[j].FeatureName
		}
		return results[i].TargetName < results[j].TargetName
	})
}

func anyCarries(records []types.JoinedRecord, name string) bool {
	for _, j := range records {
		if _, ok := j.Metric(name); ok {
			return true
		}
	}
	return false
}

// FormatTable writes the correlation results as a human-readable table.
func FormatTable(results []types.CorrelationResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No correlations computed.")
		return
	}

	fmt.Fprintf(w, "%-28s  %-28s  %-10s  %s\n", "Feature", "Target", "r", "n")
	fmt.Fprintln(w, strings.Repeat("-", 76))

	for _, r := range results {
		coeff := "n/a"
		if r.Coefficient != nil {
			coeff = fmt.Sprintf("%+.3f", *r.Coefficient)
		}
		fmt.Fprintf(w, "%-28s  %-28s  %-10s  %d\n",
			r.FeatureName, r.TargetName, coeff, r.SampleSize)
	}

	fmt.Fprintf(w, "\n%d pairs\n", len(results))
}
