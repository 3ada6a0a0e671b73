// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mpapi queries the Materials Project summary API for candidate
// coating materials and maps the responses into MaterialCandidate
// records ready for the candidate store.
package mpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/materials-engine/internal/httputil"
	"github.com/pdiddy/materials-engine/internal/identity"
	"github.com/pdiddy/materials-engine/pkg/types"
)

// summaryAPIBase is the Materials Project summary endpoint. Declared as
// a var so tests can substitute an httptest server.
var summaryAPIBase = "https://api.materialsproject.org/materials/summary/"

// Chemical systems queried per composition class. Conductive oxides,
// nitrides, and carbides relevant to bipolar-plate coatings.
var (
	oxideSystems   = []string{"Ti-O", "Nb-O", "Ta-O", "Sn-O", "In-O", "W-O", "Mo-O"}
	nitrideSystems = []string{"Ti-N", "Cr-N", "Zr-N", "Nb-N", "Ta-N", "V-N"}
	carbideSystems = []string{"Ti-C", "Cr-C", "W-C", "Nb-C", "Ta-C"}
)

// summaryResponse captures the fields we need from a summary API page.
type summaryResponse struct {
	Data []summaryDoc `json:"data"`
}

// summaryDoc is one material document in the summary response.
type summaryDoc struct {
	MaterialID             string  `json:"material_id"`
	FormulaPretty          string  `json:"formula_pretty"`
	FormationEnergyPerAtom float64 `json:"formation_energy_per_atom"`
	EnergyAboveHull        float64 `json:"energy_above_hull"`
	BandGap                float64 `json:"band_gap"`
	Density                float64 `json:"density"`
	Symmetry               struct {
		CrystalSystem string `json:"crystal_system"`
	} `json:"symmetry"`
}

// Collector fetches candidate materials one chemical system at a time.
type Collector struct {
	client *http.Client
	cfg    types.CollectConfig
}

// NewCollector builds a collector from config. A zero timeout falls back
// to 30 seconds.
func NewCollector(cfg types.CollectConfig) *Collector {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Collector{
		client: &http.Client{Timeout: timeout},
		cfg:    cfg,
	}
}

// Systems returns the chemical systems the config enables, in class
// order so collection runs are reproducible.
func (c *Collector) Systems() []string {
	var systems []string
	if c.cfg.IncludeOxides {
		systems = append(systems, oxideSystems...)
	}
	if c.cfg.IncludeNitrides {
		systems = append(systems, nitrideSystems...)
	}
	if c.cfg.IncludeCarbides {
		systems = append(systems, carbideSystems...)
	}
	return systems
}

// Collect queries every enabled chemical system and returns the stable
// candidates found, reporting progress to w. Systems that fail are
// logged and skipped so one bad query does not lose the whole run.
func (c *Collector) Collect(ctx context.Context, w io.Writer) ([]types.MaterialCandidate, error) {
	if c.cfg.APIKey == "" {
		return nil, &types.PreconditionError{
			Op: "collect", Reason: "no Materials Project API key configured",
		}
	}

	threshold := c.cfg.StabilityThreshold
	if threshold <= 0 {
		threshold = types.DefaultStabilityThreshold
	}

	systems := c.Systems()
	var candidates []types.MaterialCandidate
	failed := 0
	for i, system := range systems {
		fmt.Fprintf(w, "[%d/%d] querying %s\n", i+1, len(systems), system)

		docs, err := c.querySystem(ctx, system, threshold)
		if err != nil {
			fmt.Fprintf(w, "  failed: %v\n", err)
			failed++
			continue
		}

		for _, doc := range docs {
			candidates = append(candidates, docToCandidate(doc))
		}
		fmt.Fprintf(w, "  %d stable materials\n", len(docs))

		if c.cfg.QueryDelay > 0 && i < len(systems)-1 {
			select {
			case <-ctx.Done():
				return candidates, ctx.Err()
			case <-time.After(c.cfg.QueryDelay):
			}
		}
	}

	if failed == len(systems) && len(systems) > 0 {
		return nil, fmt.Errorf("all %d chemical system queries failed", failed)
	}
	fmt.Fprintf(w, "collected %d candidates from %d systems (%d failed)\n",
		len(candidates), len(systems), failed)
	return candidates, nil
}

// querySystem fetches one chemical system, filtered server-side to the
// stability threshold.
func (c *Collector) querySystem(ctx context.Context, system string, threshold float64) ([]summaryDoc, error) {
	params := url.Values{}
	params.Set("chemsys", system)
	params.Set("energy_above_hull_max", fmt.Sprintf("%g", threshold))
	params.Set("_fields", strings.Join([]string{
		"material_id", "formula_pretty", "formation_energy_per_atom",
		"energy_above_hull", "band_gap", "density", "symmetry",
	}, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, summaryAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating summary request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.cfg.APIKey)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("summary API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary API returned HTTP %d", resp.StatusCode)
	}

	var page summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("parsing summary response: %w", err)
	}
	return page.Data, nil
}

// docToCandidate maps a summary document to a store record. The class
// comes from the formula, not the query, so mixed-anion results land in
// the right bucket.
func docToCandidate(doc summaryDoc) types.MaterialCandidate {
	c := types.MaterialCandidate{
		Composition:            doc.FormulaPretty,
		Class:                  identity.ClassifyFormula(doc.FormulaPretty),
		FormationEnergyPerAtom: doc.FormationEnergyPerAtom,
		EnergyAboveHull:        doc.EnergyAboveHull,
		BandGap:                doc.BandGap,
		Density:                doc.Density,
		CrystalSystem:          strings.ToLower(doc.Symmetry.CrystalSystem),
	}
	if doc.MaterialID != "" {
		c.Extra = map[string]string{"material_id": doc.MaterialID}
	}
	return c
}
