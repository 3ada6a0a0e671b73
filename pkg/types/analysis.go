// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MatchConfidence grades how a literature entry was identified with a
// computational candidate.
type MatchConfidence string

const (
	// MatchExact means the entry's material description normalized to the
	// candidate's canonical formula directly.
	MatchExact MatchConfidence = "exact"

	// MatchNormalized means the match went through the curated alias table.
	MatchNormalized MatchConfidence = "normalized"

	// MatchUnmatched means no candidate shares the composition. Unmatched
	// entries are retained; gap analysis counts them.
	MatchUnmatched MatchConfidence = "unmatched"
)

// JoinedRecord pairs a literature entry with at most one material
// candidate sharing its canonical composition. It is a fresh value,
// never an alias into store internals.
type JoinedRecord struct {
	Entry LiteratureEntry `json:"entry" yaml:"entry"`

	// Candidate is nil when Confidence is unmatched.
	Candidate *MaterialCandidate `json:"candidate,omitempty" yaml:"candidate,omitempty"`

	// Confidence is exact, normalized, or unmatched.
	Confidence MatchConfidence `json:"match_confidence" yaml:"match_confidence"`
}

// Matched reports whether the record carries candidate data.
func (j JoinedRecord) Matched() bool {
	return j.Confidence != MatchUnmatched && j.Candidate != nil
}

// Metric reads a named value from the joined record: candidate features
// from the candidate side, performance metrics from the entry side.
func (j JoinedRecord) Metric(name string) (float64, bool) {
	if j.Candidate != nil {
		if v, ok := j.Candidate.Metric(name); ok {
			return v, ok
		}
	}
	return j.Entry.Metric(name)
}

// CorrelationResult is the linear association between one computational
// feature and one experimental outcome over the matched joined records.
type CorrelationResult struct {
	// FeatureName is the candidate feature (e.g. "band_gap").
	FeatureName string `json:"feature_name" yaml:"feature_name"`

	// TargetName is the experimental metric (e.g. "corrosion_current_uA_cm2").
	TargetName string `json:"target_name" yaml:"target_name"`

	// Coefficient is the Pearson correlation in [-1, 1]. Nil when the
	// sample is too small or either series has zero variance.
	Coefficient *float64 `json:"coefficient" yaml:"coefficient"`

	// SampleSize is the number of records with both values present.
	SampleSize int `json:"sample_size" yaml:"sample_size"`
}

// ClassDeviation is the signed difference between observed and target
// representation for one composition class among matched candidates.
type ClassDeviation struct {
	Class CompositionClass `json:"composition_class" yaml:"composition_class"`

	// Observed is the fraction of matched candidates in this class.
	Observed float64 `json:"observed" yaml:"observed"`

	// Target is the configured desired fraction.
	Target float64 `json:"target" yaml:"target"`

	// Deviation is Observed - Target; negative means under-represented.
	Deviation float64 `json:"deviation" yaml:"deviation"`
}

// GapReport quantifies data coverage shortfalls across the candidate and
// literature sets. Counts, not individual records.
type GapReport struct {
	// TotalEntries is the literature store size at analysis time.
	TotalEntries int `json:"total_entries" yaml:"total_entries"`

	// MatchedEntries counts entries resolved to a candidate.
	MatchedEntries int `json:"matched_entries" yaml:"matched_entries"`

	// MatchRate is MatchedEntries / TotalEntries.
	MatchRate float64 `json:"match_rate" yaml:"match_rate"`

	// UnmatchedEntries counts literature entries with no computational match.
	UnmatchedEntries int `json:"unmatched_entries" yaml:"unmatched_entries"`

	// CandidatesWithoutExperiments counts candidates no entry resolved to.
	CandidatesWithoutExperiments int `json:"candidates_without_experiments" yaml:"candidates_without_experiments"`

	// MetricMissingness maps each literature metric to the fraction of
	// entries that do not report it.
	MetricMissingness map[string]float64 `json:"metric_missingness" yaml:"metric_missingness"`

	// SparseMetrics lists metrics missing from at least the configured
	// fraction of entries, sorted by missingness descending.
	SparseMetrics []string `json:"sparse_metrics" yaml:"sparse_metrics"`

	// ClassDeviations reports per-class representation among matched
	// candidates against the configured target distribution.
	ClassDeviations []ClassDeviation `json:"class_deviations" yaml:"class_deviations"`

	// LongDurationEntries counts entries validated for at least
	// LongDurationHours; lifetime claims rest on these.
	LongDurationEntries int `json:"long_duration_entries" yaml:"long_duration_entries"`
}
