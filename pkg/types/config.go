package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "materials-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CollectConfig holds settings for the candidate collection stage.
type CollectConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the materials database API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// StabilityThreshold is the maximum energy above hull (eV/atom) for
	// a candidate to be flagged stable (default 0.1).
	StabilityThreshold float64 `json:"stability_threshold" yaml:"stability_threshold"`

	// IncludeOxides, IncludeNitrides, and IncludeCarbides select which
	// chemical system families to query.
	IncludeOxides   bool `json:"include_oxides" yaml:"include_oxides"`
	IncludeNitrides bool `json:"include_nitrides" yaml:"include_nitrides"`
	IncludeCarbides bool `json:"include_carbides" yaml:"include_carbides"`

	// QueryDelay is the pause between consecutive chemsys queries (default 1s).
	QueryDelay time.Duration `json:"query_delay" yaml:"query_delay"`
}

// IdentityConfig holds settings for literature-to-candidate identity
// resolution.
type IdentityConfig struct {
	// AliasFile is an optional YAML file mapping free-text material names
	// to canonical formulas. Entries extend the built-in alias table.
	AliasFile string `json:"alias_file,omitempty" yaml:"alias_file,omitempty"`
}

// BenchmarkConfig holds the target list for benchmark evaluation.
type BenchmarkConfig struct {
	// Targets is the threshold set to evaluate against. Empty uses
	// DefaultTargets.
	Targets []BenchmarkTarget `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// GapConfig holds settings for gap analysis.
type GapConfig struct {
	// ClassTargets is the desired composition-class distribution among
	// matched candidates, as fractions summing to 1.
	ClassTargets map[CompositionClass]float64 `json:"class_targets,omitempty" yaml:"class_targets,omitempty"`

	// SparseThreshold is the missingness fraction above which a metric is
	// reported as sparse (default 0.5).
	SparseThreshold float64 `json:"sparse_threshold" yaml:"sparse_threshold"`

	// LongDurationHours is the test duration that counts as long-term
	// validation (default 10000).
	LongDurationHours float64 `json:"long_duration_hours" yaml:"long_duration_hours"`
}

// ArchiveConfig holds settings for the SQLite archive.
type ArchiveConfig struct {
	// DataDir is the base directory for pipeline data (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Collect   CollectConfig   `json:"collect" yaml:"collect"`
	Identity  IdentityConfig  `json:"identity" yaml:"identity"`
	Benchmark BenchmarkConfig `json:"benchmark" yaml:"benchmark"`
	Gap       GapConfig       `json:"gap" yaml:"gap"`
	Archive   ArchiveConfig   `json:"archive" yaml:"archive"`
}
