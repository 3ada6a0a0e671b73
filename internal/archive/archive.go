// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists the pipeline's data between runs in a SQLite
// database: the latest candidate snapshot and the append-mostly
// literature log. The in-memory stores stay the analytical source of
// truth; the archive only feeds and drains them.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/materials-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "materials.db"
)

// Archive wraps the SQLite database at dataDir/index/materials.db.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database, creating the schema if it
// does not exist.
func Open(cfg types.ArchiveConfig) (*Archive, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return a, nil
}

// Close releases the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			composition TEXT PRIMARY KEY,
			class TEXT NOT NULL,
			formation_energy_per_atom REAL,
			energy_above_hull REAL NOT NULL,
			band_gap REAL,
			density REAL,
			crystal_system TEXT,
			extra TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_class ON candidates(class)`,
		`CREATE TABLE IF NOT EXISTS entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source_id TEXT NOT NULL UNIQUE,
			year INTEGER NOT NULL,
			material TEXT NOT NULL,
			substrate TEXT,
			data_quality TEXT,
			payload TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_material ON entries(material)`,
	}

	for _, stmt := range statements {
		if _, err := a.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveCandidates replaces the candidate snapshot wholesale, matching the
// store's re-ingestion lifecycle.
func (a *Archive) SaveCandidates(ctx context.Context, cands []types.MaterialCandidate) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("clearing candidates: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO candidates (composition, class, formation_energy_per_atom,
			energy_above_hull, band_gap, density, crystal_system, extra)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cands {
		extraJSON, _ := json.Marshal(c.Extra)
		_, err := stmt.ExecContext(ctx,
			c.Composition, string(c.Class), c.FormationEnergyPerAtom,
			c.EnergyAboveHull, c.BandGap, c.Density, c.CrystalSystem,
			string(extraJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting candidate %s: %w", c.Composition, err)
		}
	}

	return tx.Commit()
}

// LoadCandidates returns the stored snapshot sorted by composition.
func (a *Archive) LoadCandidates(ctx context.Context) ([]types.MaterialCandidate, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT composition, class, formation_energy_per_atom, energy_above_hull,
			band_gap, density, crystal_system, extra
		 FROM candidates ORDER BY composition`)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	var cands []types.MaterialCandidate
	for rows.Next() {
		var c types.MaterialCandidate
		var class string
		var extraJSON sql.NullString

		if err := rows.Scan(&c.Composition, &class, &c.FormationEnergyPerAtom,
			&c.EnergyAboveHull, &c.BandGap, &c.Density, &c.CrystalSystem,
			&extraJSON); err != nil {
			return nil, fmt.Errorf("scanning candidate row: %w", err)
		}
		c.Class = types.CompositionClass(class)
		if extraJSON.Valid && extraJSON.String != "null" {
			json.Unmarshal([]byte(extraJSON.String), &c.Extra)
		}
		cands = append(cands, c)
	}
	return cands, rows.Err()
}

// AppendEntry writes one literature entry. Without correction a
// source_id collision is a DuplicateKeyError, mirroring the in-memory
// store; with it the stored row is replaced in place, keeping its
// position in the log.
func (a *Archive) AppendEntry(ctx context.Context, e types.LiteratureEntry, correction bool) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling entry %s: %w", e.SourceID, err)
	}

	if correction {
		_, err = a.db.ExecContext(ctx,
			`INSERT INTO entries (source_id, year, material, substrate, data_quality, payload)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(source_id) DO UPDATE SET
				year=excluded.year, material=excluded.material,
				substrate=excluded.substrate, data_quality=excluded.data_quality,
				payload=excluded.payload`,
			e.SourceID, e.Year, e.Material, e.Substrate, string(e.Quality), string(payload))
		if err != nil {
			return fmt.Errorf("upserting entry %s: %w", e.SourceID, err)
		}
		return nil
	}

	var exists int
	if err := a.db.QueryRowContext(ctx,
		`SELECT count(*) FROM entries WHERE source_id = ?`, e.SourceID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking entry %s: %w", e.SourceID, err)
	}
	if exists > 0 {
		return &types.DuplicateKeyError{SourceID: e.SourceID}
	}

	_, err = a.db.ExecContext(ctx,
		`INSERT INTO entries (source_id, year, material, substrate, data_quality, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SourceID, e.Year, e.Material, e.Substrate, string(e.Quality), string(payload))
	if err != nil {
		return fmt.Errorf("inserting entry %s: %w", e.SourceID, err)
	}
	return nil
}

// SaveEntries appends every entry not yet archived and corrects those
// that are, syncing the archive to the in-memory store.
func (a *Archive) SaveEntries(ctx context.Context, entries []types.LiteratureEntry) error {
	for _, e := range entries {
		if err := a.AppendEntry(ctx, e, true); err != nil {
			return err
		}
	}
	return nil
}

// LoadEntries returns the literature log in insertion order.
func (a *Archive) LoadEntries(ctx context.Context) ([]types.LiteratureEntry, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT payload FROM entries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []types.LiteratureEntry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}
		var e types.LiteratureEntry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, fmt.Errorf("parsing entry payload: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
