// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identity maps free-text material descriptions from literature
// entries onto canonical candidate compositions. Matching is strictly
// deterministic: an exact canonical-formula tier, then a curated alias
// tier. No similarity scoring; a join that feeds scientific conclusions
// must be auditable.
package identity

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// elementSymbols is the set of recognized chemical element symbols.
// Used to validate strict parses and to repair casing in tier-1 matching.
var elementSymbols = map[string]bool{
	"H": true, "He": true, "Li": true, "Be": true, "B": true, "C": true,
	"N": true, "O": true, "F": true, "Ne": true, "Na": true, "Mg": true,
	"Al": true, "Si": true, "P": true, "S": true, "Cl": true, "Ar": true,
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true, "Cr": true,
	"Mn": true, "Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true,
	"Ga": true, "Ge": true, "As": true, "Se": true, "Br": true, "Kr": true,
	"Rb": true, "Sr": true, "Y": true, "Zr": true, "Nb": true, "Mo": true,
	"Tc": true, "Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Sb": true, "Te": true, "I": true, "Xe": true,
	"Cs": true, "Ba": true, "La": true, "Ce": true, "Pr": true, "Nd": true,
	"Hf": true, "Ta": true, "W": true, "Re": true, "Os": true, "Ir": true,
	"Pt": true, "Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true,
}

// tokenPattern matches one element symbol plus an optional count in a
// properly cased formula.
var tokenPattern = regexp.MustCompile(`^([A-Z][a-z]?)(\d*(?:\.\d+)?)`)

// ParseFormula parses a chemical formula into element counts. The input
// must be properly cased ("TiO2", not "tio2"); every symbol must be a
// known element. Returns an error on any unrecognized token.
func ParseFormula(formula string) (map[string]float64, error) {
	s := strings.TrimSpace(formula)
	if s == "" {
		return nil, fmt.Errorf("empty formula")
	}

	counts := make(map[string]float64)
	for len(s) > 0 {
		m := tokenPattern.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("unparseable formula %q at %q", formula, s)
		}
		sym := m[1]
		if !elementSymbols[sym] {
			// A two-letter token may hide a valid one-letter element
			// ("NO" is nitrogen + oxygen, not nobelium).
			if len(sym) == 2 && elementSymbols[sym[:1]] {
				sym = sym[:1]
				m[2] = ""
				s = s[1:]
			} else {
				return nil, fmt.Errorf("unknown element %q in formula %q", sym, formula)
			}
		} else {
			s = s[len(m[0]):]
		}

		count := 1.0
		if m[2] != "" {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("bad count %q in formula %q", m[2], formula)
			}
			count = v
		}
		counts[sym] += count
	}
	return counts, nil
}

// repairCase rewrites a case-mangled formula ("tin", "TIO2") into proper
// element casing by greedy case-insensitive matching against the element
// table, preferring two-letter symbols. Digits pass through. Returns an
// error when any span cannot be matched.
func repairCase(formula string) (string, error) {
	var b strings.Builder
	s := formula
	for len(s) > 0 {
		ch := s[0]
		if ch >= '0' && ch <= '9' || ch == '.' {
			b.WriteByte(ch)
			s = s[1:]
			continue
		}
		matched := false
		for _, n := range []int{2, 1} {
			if len(s) < n {
				continue
			}
			sym := strings.ToUpper(s[:1]) + strings.ToLower(s[1:n])
			if elementSymbols[sym] {
				b.WriteString(sym)
				s = s[n:]
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("cannot repair formula %q at %q", formula, s)
		}
	}
	return b.String(), nil
}

// Canonical returns the canonical composition key for a formula:
// whitespace-stripped, case-repaired, elements in alphabetical order with
// explicit counts ("TiN" and "NTi" both yield "N1Ti1"). Identical inputs
// always yield identical keys.
func Canonical(formula string) (string, error) {
	s := strings.Join(strings.Fields(formula), "")

	counts, err := ParseFormula(s)
	if err != nil {
		repaired, repErr := repairCase(s)
		if repErr != nil {
			return "", err
		}
		counts, err = ParseFormula(repaired)
		if err != nil {
			return "", err
		}
	}

	elems := make([]string, 0, len(counts))
	for e := range counts {
		elems = append(elems, e)
	}
	sort.Strings(elems)

	var b strings.Builder
	for _, e := range elems {
		b.WriteString(e)
		b.WriteString(strconv.FormatFloat(counts[e], 'f', -1, 64))
	}
	return b.String(), nil
}
