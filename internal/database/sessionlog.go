package database

import (
	"context"
	"time"

	"questa/internal/models"
)

// AppendSessionLog records a completed focus session.
func (d *Database) AppendSessionLog(ctx context.Context, entry models.SessionLog) error {
	source := entry.Source
	if source == "" {
		source = models.SourceLive
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO session_logs (completed_at, duration_minutes, source) VALUES (?, ?, ?)",
		entry.CompletedAt, entry.DurationMinutes, source)
	return wrapSessionErr("append", err)
}

// SessionLogsSince returns sessions completed at or after since, oldest first.
func (d *Database) SessionLogsSince(ctx context.Context, since time.Time) ([]models.SessionLog, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, completed_at, duration_minutes, source FROM session_logs WHERE completed_at >= ? ORDER BY completed_at ASC",
		since)
	if err != nil {
		return nil, wrapSessionErr("list", err)
	}
	defer rows.Close()

	var logs []models.SessionLog
	for rows.Next() {
		var l models.SessionLog
		if err := rows.Scan(&l.ID, &l.CompletedAt, &l.DurationMinutes, &l.Source); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		logs = append(logs, l)
	}
	return logs, wrapSessionErr("list", rows.Err())
}

// TotalFocusMinutes sums all logged session durations.
func (d *Database) TotalFocusMinutes(ctx context.Context) (int, error) {
	var total int
	err := d.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(duration_minutes), 0) FROM session_logs").Scan(&total)
	return total, wrapSessionErr("total", err)
}
