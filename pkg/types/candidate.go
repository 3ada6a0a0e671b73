// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the materials
// analysis pipeline: computational coating candidates, experimental
// literature entries, benchmark targets, and analysis outputs.
package types

// CompositionClass groups candidate materials by anion chemistry.
type CompositionClass string

const (
	ClassOxide   CompositionClass = "oxide"
	ClassNitride CompositionClass = "nitride"
	ClassCarbide CompositionClass = "carbide"
	ClassOther   CompositionClass = "other"
)

// CompositionClasses lists the classes in canonical report order.
var CompositionClasses = []CompositionClass{ClassOxide, ClassNitride, ClassCarbide, ClassOther}

// DefaultStabilityThreshold is the maximum energy above hull (eV/atom)
// for a candidate to count as thermodynamically stable.
const DefaultStabilityThreshold = 0.1

// MaterialCandidate is a computationally characterized coating material
// retrieved from a materials database. Candidates are immutable after
// ingestion; the whole set is replaced wholesale on re-collection.
type MaterialCandidate struct {
	// Composition is the canonical chemical formula (e.g. "TiN"), unique
	// within a collected batch.
	Composition string `json:"composition" yaml:"composition"`

	// Class is the composition class: oxide, nitride, carbide, or other.
	Class CompositionClass `json:"composition_class" yaml:"composition_class"`

	// FormationEnergyPerAtom is the formation energy in eV/atom.
	FormationEnergyPerAtom float64 `json:"formation_energy_per_atom" yaml:"formation_energy_per_atom"`

	// EnergyAboveHull is the thermodynamic distance from the stability
	// convex hull in eV/atom. Zero means on the hull; never negative.
	EnergyAboveHull float64 `json:"energy_above_hull" yaml:"energy_above_hull"`

	// BandGap is the electronic band gap in eV. Zero indicates a metal
	// or degenerate conductor.
	BandGap float64 `json:"band_gap" yaml:"band_gap"`

	// Density is the mass density in g/cm3.
	Density float64 `json:"density" yaml:"density"`

	// CrystalSystem is the crystal system label (e.g. "cubic", "hexagonal").
	CrystalSystem string `json:"crystal_system" yaml:"crystal_system"`

	// Extra carries unrecognized input columns through export untouched.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// IsStable reports whether the candidate sits within threshold of the
// stability convex hull.
func (c MaterialCandidate) IsStable(threshold float64) bool {
	return c.EnergyAboveHull <= threshold
}

// Candidate feature names, matching the collected column headers.
const (
	FeatureFormationEnergy = "formation_energy_per_atom"
	FeatureEnergyAboveHull = "energy_above_hull"
	FeatureBandGap         = "band_gap"
	FeatureDensity         = "density"
)

// CandidateFeatures lists the numeric candidate features available for
// correlation analysis.
var CandidateFeatures = []string{
	FeatureFormationEnergy,
	FeatureEnergyAboveHull,
	FeatureBandGap,
	FeatureDensity,
}

// Metric returns the named numeric feature. Candidate features are
// always present, so ok is false only for unknown names.
func (c MaterialCandidate) Metric(name string) (float64, bool) {
	switch name {
	case FeatureFormationEnergy:
		return c.FormationEnergyPerAtom, true
	case FeatureEnergyAboveHull:
		return c.EnergyAboveHull, true
	case FeatureBandGap:
		return c.BandGap, true
	case FeatureDensity:
		return c.Density, true
	default:
		return 0, false
	}
}
