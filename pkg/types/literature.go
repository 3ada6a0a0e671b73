// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DataQuality grades how reliable a literature entry's reported numbers are.
type DataQuality string

const (
	QualityHigh   DataQuality = "high"
	QualityMedium DataQuality = "medium"
	QualityLow    DataQuality = "low"
)

// LiteratureEntry is an experimental coating performance record extracted
// from a published source. Optional numeric fields are pointers: nil means
// the paper did not report the value, which is distinct from zero.
type LiteratureEntry struct {
	// SourceID is the DOI of the source publication, unique within a store.
	SourceID string `json:"source_id" yaml:"source_id"`

	// Authors is the author list as cited (e.g. "Lettenmeier et al.").
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Title is the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Journal is the publication venue.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Material is the coating material as described in the paper
	// (e.g. "Nb/Ti dual-layer", "N-doped TiO2"). Free text; identity
	// resolution maps it to a candidate composition where possible.
	Material string `json:"material_description" yaml:"material_description"`

	// Substrate is the coated base material (e.g. "SS316L", "Ti Grade 1").
	Substrate string `json:"substrate,omitempty" yaml:"substrate,omitempty"`

	// ThicknessNM is the coating thickness in nanometers.
	ThicknessNM *float64 `json:"thickness_nm,omitempty" yaml:"thickness_nm,omitempty"`

	// DepositionMethod is the coating process (e.g. "PVD", "CVD").
	DepositionMethod string `json:"deposition_method,omitempty" yaml:"deposition_method,omitempty"`

	// CorrosionCurrent is the corrosion current density in uA/cm2.
	CorrosionCurrent *float64 `json:"corrosion_current_uA_cm2,omitempty" yaml:"corrosion_current_uA_cm2,omitempty"`

	// ContactResistance is the interfacial contact resistance in mOhm.cm2.
	ContactResistance *float64 `json:"contact_resistance_mOhm_cm2,omitempty" yaml:"contact_resistance_mOhm_cm2,omitempty"`

	// TestDurationHours is the validated test duration in hours.
	TestDurationHours *float64 `json:"test_duration_hours,omitempty" yaml:"test_duration_hours,omitempty"`

	// Electrolyte is the test electrolyte (e.g. "0.5M H2SO4").
	Electrolyte string `json:"electrolyte,omitempty" yaml:"electrolyte,omitempty"`

	// TemperatureC is the test temperature in degrees Celsius.
	TemperatureC *float64 `json:"temperature_C,omitempty" yaml:"temperature_C,omitempty"`

	// PotentialV is the applied potential vs. reference electrode in volts.
	PotentialV *float64 `json:"potential_V,omitempty" yaml:"potential_V,omitempty"`

	// CurrentDensityACm2 is the operating current density in A/cm2.
	CurrentDensityACm2 *float64 `json:"current_density_A_cm2,omitempty" yaml:"current_density_A_cm2,omitempty"`

	// VoltageIncreaseUVHr is the degradation rate in uV/hr.
	VoltageIncreaseUVHr *float64 `json:"voltage_increase_uV_hr,omitempty" yaml:"voltage_increase_uV_hr,omitempty"`

	// ResistanceChangePercent is the contact resistance drift over the test.
	ResistanceChangePercent *float64 `json:"resistance_change_percent,omitempty" yaml:"resistance_change_percent,omitempty"`

	// FeRelease, CrRelease, and NiRelease are ion release rates in
	// ug/cm2/day. Ion leaching drives membrane degradation.
	FeRelease *float64 `json:"fe_release_ug_cm2_day,omitempty" yaml:"fe_release_ug_cm2_day,omitempty"`
	CrRelease *float64 `json:"cr_release_ug_cm2_day,omitempty" yaml:"cr_release_ug_cm2_day,omitempty"`
	NiRelease *float64 `json:"ni_release_ug_cm2_day,omitempty" yaml:"ni_release_ug_cm2_day,omitempty"`

	// CostEstimate is the estimated coating cost in dollars per m2.
	CostEstimate *float64 `json:"cost_estimate_dollar_m2,omitempty" yaml:"cost_estimate_dollar_m2,omitempty"`

	// ScalabilityNotes summarizes process maturity and cost drivers.
	ScalabilityNotes string `json:"scalability_notes,omitempty" yaml:"scalability_notes,omitempty"`

	// SuccessRating is an overall 1-5 assessment (5 = excellent).
	SuccessRating *int `json:"success_rating,omitempty" yaml:"success_rating,omitempty"`

	// FailureMode describes the observed degradation mechanism.
	FailureMode string `json:"failure_mode,omitempty" yaml:"failure_mode,omitempty"`

	// Notes holds free-form extraction notes.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// EntryDate records when the entry was extracted (YYYY-MM-DD).
	EntryDate string `json:"entry_date,omitempty" yaml:"entry_date,omitempty"`

	// Quality grades the entry: high, medium, or low.
	Quality DataQuality `json:"data_quality,omitempty" yaml:"data_quality,omitempty"`
}

// Literature metric names, matching the export column headers.
const (
	MetricCorrosionCurrent  = "corrosion_current_uA_cm2"
	MetricContactResistance = "contact_resistance_mOhm_cm2"
	MetricTestDuration      = "test_duration_hours"
	MetricVoltageIncrease   = "voltage_increase_uV_hr"
	MetricResistanceChange  = "resistance_change_percent"
	MetricFeRelease         = "fe_release_ug_cm2_day"
	MetricCrRelease         = "cr_release_ug_cm2_day"
	MetricNiRelease         = "ni_release_ug_cm2_day"
	MetricCostEstimate      = "cost_estimate_dollar_m2"
	MetricSuccessRating     = "success_rating"
)

// LiteratureMetrics lists every numeric metric an entry may carry, in
// canonical report order. Gap analysis computes missingness over this list.
var LiteratureMetrics = []string{
	MetricCorrosionCurrent,
	MetricContactResistance,
	MetricTestDuration,
	MetricVoltageIncrease,
	MetricResistanceChange,
	MetricFeRelease,
	MetricCrRelease,
	MetricNiRelease,
	MetricCostEstimate,
	MetricSuccessRating,
}

// Metric returns the named performance metric. ok is false when the
// paper did not report the value or the name is unknown.
func (e LiteratureEntry) Metric(name string) (float64, bool) {
	switch name {
	case MetricCorrosionCurrent:
		return deref(e.CorrosionCurrent)
	case MetricContactResistance:
		return deref(e.ContactResistance)
	case MetricTestDuration:
		return deref(e.TestDurationHours)
	case MetricVoltageIncrease:
		return deref(e.VoltageIncreaseUVHr)
	case MetricResistanceChange:
		return deref(e.ResistanceChangePercent)
	case MetricFeRelease:
		return deref(e.FeRelease)
	case MetricCrRelease:
		return deref(e.CrRelease)
	case MetricNiRelease:
		return deref(e.NiRelease)
	case MetricCostEstimate:
		return deref(e.CostEstimate)
	case MetricSuccessRating:
		if e.SuccessRating == nil {
			return 0, false
		}
		return float64(*e.SuccessRating), true
	default:
		return 0, false
	}
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// MetricSource exposes named numeric metrics for benchmarking and
// correlation. Both MaterialCandidate and LiteratureEntry implement it.
type MetricSource interface {
	Metric(name string) (float64, bool)
}

// Float returns a pointer to v, for building entries with optional metrics.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
