package database

import (
	"context"
	"database/sql"
	"errors"

	"questa/internal/models"
)

// LoadProgression reads the single ledger row. Returns ErrNotFound if the app
// has never saved one.
func (d *Database) LoadProgression(ctx context.Context) (models.Progression, error) {
	var p models.Progression
	err := d.DB.QueryRowContext(ctx,
		"SELECT experience, level, currency, version FROM progression WHERE id = 1").
		Scan(&p.Experience, &p.Level, &p.Currency, &p.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, wrapProgressionErr("load", err)
}

// SaveProgression upserts the ledger row, guarded by the monotonic version.
func (d *Database) SaveProgression(ctx context.Context, p models.Progression) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO progression (id, experience, level, currency, version)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			experience = excluded.experience,
			level = excluded.level,
			currency = excluded.currency,
			version = excluded.version
		WHERE excluded.version >= progression.version`,
		p.Experience, p.Level, p.Currency, p.Version)
	return wrapProgressionErr("save", err)
}
