// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identity

import (
	"strings"

	"github.com/pdiddy/materials-engine/pkg/types"
)

// ClassifyFormula assigns a composition class by anion chemistry: oxygen
// makes an oxide, then nitrogen a nitride, then carbon a carbide, so an
// oxynitride counts as an oxide. Unparseable or metal-only formulas are
// "other".
func ClassifyFormula(formula string) types.CompositionClass {
	counts, err := ParseFormula(strings.Join(strings.Fields(formula), ""))
	if err != nil {
		repaired, repErr := repairCase(formula)
		if repErr != nil {
			return types.ClassOther
		}
		counts, err = ParseFormula(repaired)
		if err != nil {
			return types.ClassOther
		}
	}

	switch {
	case counts["O"] > 0:
		return types.ClassOxide
	case counts["N"] > 0:
		return types.ClassNitride
	case counts["C"] > 0:
		return types.ClassCarbide
	default:
		return types.ClassOther
	}
}
