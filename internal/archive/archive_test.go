// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/materials-engine/pkg/types"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(types.ArchiveConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestOpenCreatesDatabase(t *testing.T) {
	dataDir := t.TempDir()
	a, err := Open(types.ArchiveConfig{DataDir: dataDir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	// Reopening an existing database must also succeed.
	b, err := Open(types.ArchiveConfig{DataDir: dataDir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	b.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "index", "materials.db")); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestCandidateSnapshotRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	cands := []types.MaterialCandidate{
		{Composition: "TiN", Class: types.ClassNitride, EnergyAboveHull: 0.0, BandGap: 0.0, Density: 5.4, CrystalSystem: "cubic", Extra: map[string]string{"material_id": "mp-492"}},
		{Composition: "CrN", Class: types.ClassNitride, EnergyAboveHull: 0.02, FormationEnergyPerAtom: -0.6},
	}
	if err := a.SaveCandidates(ctx, cands); err != nil {
		t.Fatalf("SaveCandidates: %v", err)
	}

	got, err := a.LoadCandidates(ctx)
	if err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d candidates, want 2", len(got))
	}
	// Sorted by composition: CrN first.
	if got[0].Composition != "CrN" || got[1].Composition != "TiN" {
		t.Errorf("order = %q, %q, want CrN, TiN", got[0].Composition, got[1].Composition)
	}
	if got[1].Extra["material_id"] != "mp-492" {
		t.Errorf("extra map lost: %v", got[1].Extra)
	}
	if got[0].FormationEnergyPerAtom != -0.6 {
		t.Errorf("formation energy = %g, want -0.6", got[0].FormationEnergyPerAtom)
	}
}

func TestSaveCandidatesReplacesSnapshot(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	if err := a.SaveCandidates(ctx, []types.MaterialCandidate{
		{Composition: "TiN", Class: types.ClassNitride},
		{Composition: "CrN", Class: types.ClassNitride},
	}); err != nil {
		t.Fatalf("SaveCandidates: %v", err)
	}
	if err := a.SaveCandidates(ctx, []types.MaterialCandidate{
		{Composition: "TiO2", Class: types.ClassOxide},
	}); err != nil {
		t.Fatalf("second SaveCandidates: %v", err)
	}

	got, err := a.LoadCandidates(ctx)
	if err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if len(got) != 1 || got[0].Composition != "TiO2" {
		t.Errorf("snapshot not replaced: %v", got)
	}
}

func TestAppendEntryDuplicate(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	entry := types.LiteratureEntry{SourceID: "doi-1", Year: 2020, Material: "TiN", CorrosionCurrent: types.Float(0.8)}
	if err := a.AppendEntry(ctx, entry, false); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	err := a.AppendEntry(ctx, entry, false)
	var dkErr *types.DuplicateKeyError
	if !errors.As(err, &dkErr) {
		t.Fatalf("duplicate append error = %v, want DuplicateKeyError", err)
	}

	entries, err := a.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("archive holds %d entries after rejected duplicate, want 1", len(entries))
	}
}

func TestAppendEntryCorrection(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	first := types.LiteratureEntry{SourceID: "doi-1", Year: 2020, Material: "TiN", CorrosionCurrent: types.Float(0.8)}
	second := types.LiteratureEntry{SourceID: "doi-2", Year: 2021, Material: "CrN"}
	for _, e := range []types.LiteratureEntry{first, second} {
		if err := a.AppendEntry(ctx, e, false); err != nil {
			t.Fatalf("AppendEntry: %v", err)
		}
	}

	corrected := first
	corrected.CorrosionCurrent = types.Float(0.5)
	if err := a.AppendEntry(ctx, corrected, true); err != nil {
		t.Fatalf("correction append: %v", err)
	}

	entries, err := a.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("archive holds %d entries after correction, want 2", len(entries))
	}
	// The corrected entry keeps its position in the log.
	if entries[0].SourceID != "doi-1" {
		t.Errorf("corrected entry moved: position 0 holds %q", entries[0].SourceID)
	}
	if entries[0].CorrosionCurrent == nil || *entries[0].CorrosionCurrent != 0.5 {
		t.Errorf("correction not applied: %v", entries[0].CorrosionCurrent)
	}
}

func TestEntryOptionalFieldsSurvive(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	sparse := types.LiteratureEntry{SourceID: "sparse", Year: 2019, Material: "WC"}
	full := types.LiteratureEntry{
		SourceID:          "full",
		Year:              2021,
		Material:          "TiN",
		ThicknessNM:       types.Float(500),
		ContactResistance: types.Float(7.5),
		SuccessRating:     types.Int(4),
		Quality:           types.QualityHigh,
	}
	for _, e := range []types.LiteratureEntry{sparse, full} {
		if err := a.AppendEntry(ctx, e, false); err != nil {
			t.Fatalf("AppendEntry: %v", err)
		}
	}

	entries, err := a.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}

	if entries[0].ContactResistance != nil {
		t.Error("absent metric came back non-nil")
	}
	got := entries[1]
	if got.ContactResistance == nil || *got.ContactResistance != 7.5 {
		t.Errorf("contact resistance = %v, want 7.5", got.ContactResistance)
	}
	if got.SuccessRating == nil || *got.SuccessRating != 4 {
		t.Errorf("success rating = %v, want 4", got.SuccessRating)
	}
	if got.Quality != types.QualityHigh {
		t.Errorf("quality = %q, want high", got.Quality)
	}
}

func TestSaveEntriesSyncs(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	if err := a.AppendEntry(ctx, types.LiteratureEntry{SourceID: "doi-1", Year: 2020, Material: "TiN"}, false); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	batch := []types.LiteratureEntry{
		{SourceID: "doi-1", Year: 2020, Material: "TiN", CostEstimate: types.Float(9)},
		{SourceID: "doi-2", Year: 2021, Material: "CrN"},
	}
	if err := a.SaveEntries(ctx, batch); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}

	entries, err := a.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("archive holds %d entries, want 2", len(entries))
	}
	if entries[0].CostEstimate == nil {
		t.Error("existing entry not corrected by sync")
	}
}
