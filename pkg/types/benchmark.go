// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Comparison is the direction of a benchmark threshold.
type Comparison string

const (
	// AtMost passes when value <= threshold (e.g. corrosion current).
	AtMost Comparison = "<="

	// AtLeast passes when value >= threshold (e.g. test duration).
	AtLeast Comparison = ">="
)

// BenchmarkTarget is a fixed pass/fail threshold for one performance metric.
// Targets are configuration, never derived from data.
type BenchmarkTarget struct {
	// MetricName names the metric the target applies to.
	MetricName string `json:"metric_name" yaml:"metric_name"`

	// Comparison is "<=" or ">=".
	Comparison Comparison `json:"comparison" yaml:"comparison"`

	// Threshold is the pass/fail boundary in the metric's unit.
	Threshold float64 `json:"threshold_value" yaml:"threshold_value"`

	// Unit is the metric's unit, carried for report output.
	Unit string `json:"unit" yaml:"unit"`
}

// DefaultTargets returns the DOE-style industry targets for bipolar plate
// coatings: the thresholds a candidate must clear before scale-up work.
func DefaultTargets() []BenchmarkTarget {
	return []BenchmarkTarget{
		{MetricName: MetricContactResistance, Comparison: AtMost, Threshold: 10.0, Unit: "mOhm.cm2"},
		{MetricName: MetricCorrosionCurrent, Comparison: AtMost, Threshold: 1.0, Unit: "uA/cm2"},
		{MetricName: MetricTestDuration, Comparison: AtLeast, Threshold: 2000.0, Unit: "h"},
		{MetricName: MetricCostEstimate, Comparison: AtMost, Threshold: 10.0, Unit: "$/m2"},
	}
}

// Verdict is the outcome of evaluating one record against one target.
type Verdict struct {
	// Known is false when the record does not carry the metric. An absent
	// metric is never treated as passing or failing.
	Known bool `json:"known" yaml:"known"`

	// Met reports whether the target was satisfied. Meaningful only when
	// Known is true.
	Met bool `json:"met" yaml:"met"`

	// Margin is the signed distance from the threshold in the metric's
	// unit. Positive always means passing with headroom, regardless of
	// the comparison direction.
	Margin float64 `json:"margin" yaml:"margin"`
}
