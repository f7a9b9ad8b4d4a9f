// Package sqlitestore persists decoded force volume records into a SQLite
// database, one row per pixel, with the per-pixel ramps serialized as numpy
// .npy blobs so they load directly from Python analysis code.
package sqlitestore

import (
	"database/sql"
	"fmt"

	"github.com/go-scanprobe/forcevolume"
	_ "modernc.org/sqlite"
)

// Store is a handle to the force volume database.
type Store struct {
	db *sql.DB
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS FVData (
	id INTEGER,
	Source TEXT,
	NX INTEGER,
	NY INTEGER,
	ForceForward BLOB,
	ForceBackward BLOB,
	Height REAL,
	PRIMARY KEY (id)
)`

const insertRowSQL = `
INSERT INTO FVData (Source, NX, NY, ForceForward, ForceBackward, Height)
VALUES (?, ?, ?, ?, ?, ?)`

// Open opens (creating if necessary) the database at path and ensures the
// FVData table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create FVData table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save commits one decoded record, one row per pixel, in a single
// transaction - a partially stored record never becomes visible.
func (s *Store) Save(rec *forcevolume.Record) error {
	if len(rec.Topography) != rec.Geometry.Rows || len(rec.ForceVolume) != rec.Geometry.Rows {
		return fmt.Errorf("record arrays do not match a %dx%d geometry (was the capture fully decoded?)",
			rec.Geometry.Rows, rec.Geometry.Columns)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(insertRowSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()
	for i := 0; i < rec.Geometry.Rows; i++ {
		for j := 0; j < rec.Geometry.Columns; j++ {
			curve := rec.ForceVolume[i][j]
			_, err := stmt.Exec(rec.Source, i, j,
				encodeNPY(curve.Forward), encodeNPY(curve.Backward), rec.Topography[i][j])
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to insert pixel (%d,%d): %w", i, j, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}
	return nil
}
