// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identity

import (
	"github.com/pdiddy/materials-engine/pkg/types"
)

// Resolver joins literature entries to material candidates by canonical
// composition. Construct once and reuse; it is read-only after creation.
type Resolver struct {
	aliases map[string]string
}

// NewResolver builds a Resolver from the built-in alias table plus the
// optional alias file named in cfg.
func NewResolver(cfg types.IdentityConfig) (*Resolver, error) {
	aliases := make(map[string]string, len(builtinAliases))
	for name, formula := range builtinAliases {
		aliases[name] = formula
	}

	if cfg.AliasFile != "" {
		if err := loadAliasFile(cfg.AliasFile, aliases); err != nil {
			return nil, err
		}
	}

	return &Resolver{aliases: aliases}, nil
}

// Resolve pairs one literature entry with at most one candidate. Tier 1
// canonicalizes the material description as a formula and looks it up
// against candidate compositions (exact). Tier 2 consults the alias table
// (normalized). Anything else is unmatched; the entry is retained either
// way so coverage analysis can count it.
func (r *Resolver) Resolve(entry types.LiteratureEntry, candidates []types.MaterialCandidate) types.JoinedRecord {
	return r.resolveIndexed(entry, indexCandidates(candidates))
}

// ResolveAll joins every entry, preserving entry order.
func (r *Resolver) ResolveAll(entries []types.LiteratureEntry, candidates []types.MaterialCandidate) []types.JoinedRecord {
	index := indexCandidates(candidates)

	joined := make([]types.JoinedRecord, 0, len(entries))
	for _, entry := range entries {
		joined = append(joined, r.resolveIndexed(entry, index))
	}
	return joined
}

func (r *Resolver) resolveIndexed(entry types.LiteratureEntry, index map[string]types.MaterialCandidate) types.JoinedRecord {
	if key, err := Canonical(entry.Material); err == nil {
		if c, ok := index[key]; ok {
			return types.JoinedRecord{Entry: entry, Candidate: &c, Confidence: types.MatchExact}
		}
	}

	if formula, ok := r.aliases[normalizeName(entry.Material)]; ok {
		if key, err := Canonical(formula); err == nil {
			if c, ok := index[key]; ok {
				return types.JoinedRecord{Entry: entry, Candidate: &c, Confidence: types.MatchNormalized}
			}
		}
	}

	return types.JoinedRecord{Entry: entry, Confidence: types.MatchUnmatched}
}

// indexCandidates keys candidates by canonical composition. The first
// candidate for a key wins, so repeated resolution over the same store
// is stable. Candidates whose composition does not canonicalize are
// skipped; they can never be matched.
func indexCandidates(candidates []types.MaterialCandidate) map[string]types.MaterialCandidate {
	index := make(map[string]types.MaterialCandidate, len(candidates))
	for _, c := range candidates {
		key, err := Canonical(c.Composition)
		if err != nil {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = c
		}
	}
	return index
}
