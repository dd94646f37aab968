package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"questa/internal/models"
	"questa/internal/util"
)

// LoadTimerSnapshot reads the single persisted countdown row. Returns
// ErrNotFound if the app has never saved one.
func (d *Database) LoadTimerSnapshot(ctx context.Context) (models.TimerSnapshot, error) {
	var snap models.TimerSnapshot
	var mode string
	var running int
	var startedAt sql.NullTime
	var plan string

	err := d.DB.QueryRowContext(ctx, `
		SELECT mode, remaining_seconds, running, started_at, plan, segment_index,
		       focus_minutes, break_minutes, long_break_minutes, version
		FROM timer_state WHERE id = 1`).
		Scan(&mode, &snap.RemainingSeconds, &running, &startedAt, &plan,
			&snap.SegmentIndex, &snap.FocusMinutes, &snap.BreakMinutes,
			&snap.LongBreakMinutes, &snap.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNotFound
	}
	if err != nil {
		return snap, wrapTimerErr("load", err)
	}

	snap.Mode = models.TimerMode(mode)
	snap.Running = util.IntToBool(running)
	if startedAt.Valid {
		snap.StartedAt = util.Ptr(startedAt.Time)
	}
	snap.Plan = decodePlan(plan)
	return snap, nil
}

// SaveTimerSnapshot upserts the countdown row. The version guard makes the
// write a no-op when a newer snapshot has already landed, so out-of-order
// async completions cannot revert live state.
func (d *Database) SaveTimerSnapshot(ctx context.Context, snap models.TimerSnapshot) error {
	var startedAt interface{}
	if snap.StartedAt != nil {
		startedAt = *snap.StartedAt
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO timer_state (id, mode, remaining_seconds, running, started_at,
			plan, segment_index, focus_minutes, break_minutes, long_break_minutes, version)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mode = excluded.mode,
			remaining_seconds = excluded.remaining_seconds,
			running = excluded.running,
			started_at = excluded.started_at,
			plan = excluded.plan,
			segment_index = excluded.segment_index,
			focus_minutes = excluded.focus_minutes,
			break_minutes = excluded.break_minutes,
			long_break_minutes = excluded.long_break_minutes,
			version = excluded.version
		WHERE excluded.version >= timer_state.version`,
		string(snap.Mode), snap.RemainingSeconds, util.BoolToInt(snap.Running),
		startedAt, encodePlan(snap.Plan), snap.SegmentIndex, snap.FocusMinutes,
		snap.BreakMinutes, snap.LongBreakMinutes, snap.Version)
	return wrapTimerErr("save", err)
}

func encodePlan(plan []models.TimerMode) string {
	if len(plan) == 0 {
		return ""
	}
	parts := make([]string, len(plan))
	for i, m := range plan {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

func decodePlan(s string) []models.TimerMode {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	plan := make([]models.TimerMode, 0, len(parts))
	for _, p := range parts {
		switch models.TimerMode(p) {
		case models.ModeFocus, models.ModeBreak, models.ModeLongBreak:
			plan = append(plan, models.TimerMode(p))
		}
	}
	return plan
}
