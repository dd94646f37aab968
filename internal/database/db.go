// Package database implements the persistence collaborator on sqlite. It is
// best-effort storage for resumption across restarts; in-memory state owned
// by the engine is the source of truth for a running session.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection. All methods hang off this receiver;
// there is no package-level connection.
type Database struct {
	DB *sql.DB
}

// Open opens (or creates) the sqlite database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS timer_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			mode TEXT NOT NULL DEFAULT 'focus',
			remaining_seconds INTEGER NOT NULL DEFAULT 1500,
			running INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME,
			plan TEXT NOT NULL DEFAULT '',
			segment_index INTEGER NOT NULL DEFAULT 0,
			focus_minutes INTEGER NOT NULL DEFAULT 25,
			break_minutes INTEGER NOT NULL DEFAULT 5,
			long_break_minutes INTEGER NOT NULL DEFAULT 15,
			version INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS progression (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			experience INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			currency INTEGER NOT NULL DEFAULT 0,
			version INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS boosts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			factor REAL NOT NULL,
			expires_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			xp_reward INTEGER NOT NULL DEFAULT 10,
			position INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS habit_completions (
			habit_id TEXT NOT NULL,
			date TEXT NOT NULL,
			UNIQUE(habit_id, date),
			FOREIGN KEY(habit_id) REFERENCES habits(id)
		);`,
		`CREATE TABLE IF NOT EXISTS session_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			completed_at DATETIME NOT NULL,
			duration_minutes INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT 'live'
		);`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id TEXT NOT NULL,
			acquired_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w: %s", err, query)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by older
// versions. Failures are ignored: the column already existing is the normal
// case.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE timer_state ADD COLUMN version INTEGER NOT NULL DEFAULT 0")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE progression ADD COLUMN version INTEGER NOT NULL DEFAULT 0")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE session_logs ADD COLUMN source TEXT NOT NULL DEFAULT 'live'")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE habits ADD COLUMN position INTEGER NOT NULL DEFAULT 0")
}
