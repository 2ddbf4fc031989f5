package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createRoomsQuery := `
	CREATE TABLE IF NOT EXISTS voltage_rooms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createSamplesQuery := `
	CREATE TABLE IF NOT EXISTS load_samples (
		room_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		ts INTEGER NOT NULL,
		utc_offset INTEGER NOT NULL,
		power_kw REAL NOT NULL
	);
	`

	// Duplicate timestamps are legal (DST fall-back hour), so the index is not unique.
	createSamplesIndexQuery := `
	CREATE INDEX IF NOT EXISTS load_samples_room_ts ON load_samples (room_id, ts);
	`

	createObjectsQuery := `
	CREATE TABLE IF NOT EXISTS room_objects (
		room_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		object_id TEXT NOT NULL,
		purpose TEXT NOT NULL,
		type TEXT NOT NULL,
		address TEXT NOT NULL,
		area_m2 REAL,
		rd_x REAL,
		rd_y REAL,
		lat REAL,
		lon REAL,
		PRIMARY KEY (room_id, seq)
	);
	`

	return execSchema(context.Background(), db, []string{
		createRoomsQuery,
		createSamplesQuery,
		createSamplesIndexQuery,
		createObjectsQuery,
	})
}

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createRoomsQuery := `
	CREATE TABLE IF NOT EXISTS voltage_rooms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createSamplesQuery := `
	CREATE TABLE IF NOT EXISTS load_samples (
		room_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		ts TIMESTAMPTZ NOT NULL,
		utc_offset INTEGER NOT NULL,
		power_kw DOUBLE PRECISION NOT NULL
	);
	`

	createSamplesIndexQuery := `
	CREATE INDEX IF NOT EXISTS load_samples_room_ts ON load_samples (room_id, ts);
	`

	createObjectsQuery := `
	CREATE TABLE IF NOT EXISTS room_objects (
		room_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		object_id TEXT NOT NULL,
		purpose TEXT NOT NULL,
		type TEXT NOT NULL,
		address TEXT NOT NULL,
		area_m2 DOUBLE PRECISION,
		rd_x DOUBLE PRECISION,
		rd_y DOUBLE PRECISION,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		PRIMARY KEY (room_id, seq)
	);
	`

	return execSchema(ctx, db, []string{
		createRoomsQuery,
		createSamplesQuery,
		createSamplesIndexQuery,
		createObjectsQuery,
	})
}

func execSchema(ctx context.Context, db *sql.DB, statements []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
