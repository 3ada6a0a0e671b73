// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identity

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// builtinAliases maps normalized free-text material names to canonical
// formulas. These cover the naming variants recurring in the coating
// literature. Composite and multilayer descriptions ("Nb/Ti dual-layer")
// are deliberately absent: they stay unmatched unless a project-specific
// alias file maps them, rather than guessing a decomposition.
var builtinAliases = map[string]string{
	"titanium nitride":    "TiN",
	"chromium nitride":    "CrN",
	"zirconium nitride":   "ZrN",
	"tantalum nitride":    "TaN",
	"niobium nitride":     "NbN",
	"vanadium nitride":    "VN",
	"titanium dioxide":    "TiO2",
	"titania":             "TiO2",
	"n-doped tio2":        "TiO2",
	"titanium carbide":    "TiC",
	"tungsten carbide":    "WC",
	"tantalum carbide":    "TaC",
	"silicon carbide":     "SiC",
	"iridium oxide":       "IrO2",
	"ruthenium oxide":     "RuO2",
	"tin oxide":           "SnO2",
	"niobium oxide":       "Nb2O5",
	"tantalum oxide":      "Ta2O5",
	"ti4o7 (magneli phase)": "Ti4O7",
	"magneli phase titanium oxide": "Ti4O7",
}

// normalizeName reduces a free-text material description to its alias
// lookup key: lowercased, punctuation-light, single-spaced.
func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(s), " ")
}

// loadAliasFile reads a YAML map of material name to canonical formula
// and merges it over the built-in table. File entries win on collision so
// a project can correct a built-in alias.
func loadAliasFile(path string, aliases map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading alias file %s: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing alias file %s: %w", path, err)
	}

	for name, formula := range raw {
		aliases[normalizeName(name)] = strings.TrimSpace(formula)
	}
	return nil
}
