// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/archive"
	"github.com/pdiddy/materials-engine/internal/identity"
	"github.com/pdiddy/materials-engine/internal/literature"
	"github.com/pdiddy/materials-engine/pkg/types"
)

// openArchive opens the SQLite archive under the configured data dir.
func openArchive(cmd *cobra.Command) (*archive.Archive, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = "data"
	}
	return archive.Open(types.ArchiveConfig{DataDir: dataDir})
}

// loadLiterature fills an in-memory store from the archived entry log.
func loadLiterature(ctx context.Context, a *archive.Archive) (*literature.Store, error) {
	entries, err := a.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	store := literature.NewStore(os.Stderr)
	for _, e := range entries {
		if err := store.Add(e, false); err != nil {
			return nil, fmt.Errorf("loading archived entry %s: %w", e.SourceID, err)
		}
	}
	return store, nil
}

// loadJoined resolves every archived literature entry against the
// archived candidate snapshot.
func loadJoined(ctx context.Context, cmd *cobra.Command, a *archive.Archive) ([]types.MaterialCandidate, []types.JoinedRecord, error) {
	cands, err := a.LoadCandidates(ctx)
	if err != nil {
		return nil, nil, err
	}
	store, err := loadLiterature(ctx, a)
	if err != nil {
		return nil, nil, err
	}

	aliasFile, _ := cmd.Flags().GetString("alias-file")
	resolver, err := identity.NewResolver(types.IdentityConfig{AliasFile: aliasFile})
	if err != nil {
		return nil, nil, err
	}

	return cands, resolver.ResolveAll(store.All(), cands), nil
}
