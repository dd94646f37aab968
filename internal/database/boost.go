package database

import (
	"context"
	"time"

	"questa/internal/models"
)

// ActiveBoosts returns boosts that have not yet expired at now, newest first.
func (d *Database) ActiveBoosts(ctx context.Context, now time.Time) ([]models.Boost, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, kind, factor, expires_at FROM boosts WHERE expires_at > ? ORDER BY id DESC", now)
	if err != nil {
		return nil, wrapBoostErr("list", err)
	}
	defer rows.Close()

	var boosts []models.Boost
	for rows.Next() {
		var b models.Boost
		if err := rows.Scan(&b.ID, &b.Kind, &b.Factor, &b.ExpiresAt); err != nil {
			return nil, wrapBoostErr("scan", err)
		}
		boosts = append(boosts, b)
	}
	return boosts, wrapBoostErr("list", rows.Err())
}

// InsertBoost stores a new boost instance and returns its row ID.
func (d *Database) InsertBoost(ctx context.Context, b models.Boost) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO boosts (kind, factor, expires_at) VALUES (?, ?, ?)",
		b.Kind, b.Factor, b.ExpiresAt)
	if err != nil {
		return 0, wrapBoostErr("insert", err)
	}
	id, err := res.LastInsertId()
	return id, wrapBoostErr("insert", err)
}

// PruneExpiredBoosts deletes rows whose expiry has passed. Housekeeping only;
// expiry semantics never depend on it running.
func (d *Database) PruneExpiredBoosts(ctx context.Context, now time.Time) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM boosts WHERE expires_at <= ?", now)
	return wrapBoostErr("prune", err)
}
