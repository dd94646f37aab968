package database

import (
	"context"

	"questa/internal/models"
)

// Habits returns all habits with their completion dates, ordered by position.
// Streaks are left zero; the habit package derives them.
func (d *Database) Habits(ctx context.Context) ([]models.Habit, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, title, xp_reward, position, created_at FROM habits ORDER BY position ASC, created_at ASC")
	if err != nil {
		return nil, wrapHabitErr("list", "", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Title, &h.XPReward, &h.Position, &h.CreatedAt); err != nil {
			return nil, wrapHabitErr("scan", "", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapHabitErr("list", "", err)
	}

	for i := range habits {
		dates, err := d.HabitCompletions(ctx, habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].Completions = dates
	}
	return habits, nil
}

// CreateHabit inserts a new habit.
func (d *Database) CreateHabit(ctx context.Context, h models.Habit) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO habits (id, title, xp_reward, position) VALUES (?, ?, ?, ?)",
		h.ID, h.Title, h.XPReward, h.Position)
	return wrapHabitErr("create", h.ID, err)
}

// DeleteHabit removes a habit and its completion history.
func (d *Database) DeleteHabit(ctx context.Context, id string) error {
	if _, err := d.DB.ExecContext(ctx, "DELETE FROM habit_completions WHERE habit_id = ?", id); err != nil {
		return wrapHabitErr("delete completions", id, err)
	}
	_, err := d.DB.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id)
	return wrapHabitErr("delete", id, err)
}

// HabitCompletions returns the completion dates (YYYY-MM-DD) for a habit,
// newest first.
func (d *Database) HabitCompletions(ctx context.Context, id string) ([]string, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT date FROM habit_completions WHERE habit_id = ? ORDER BY date DESC", id)
	if err != nil {
		return nil, wrapHabitErr("completions", id, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, wrapHabitErr("completions", id, err)
		}
		dates = append(dates, date)
	}
	return dates, wrapHabitErr("completions", id, rows.Err())
}

// ToggleHabitCompletion flips the completion mark for a habit on a date.
// Returns true when the date is now marked complete.
func (d *Database) ToggleHabitCompletion(ctx context.Context, id, date string) (bool, error) {
	res, err := d.DB.ExecContext(ctx,
		"DELETE FROM habit_completions WHERE habit_id = ? AND date = ?", id, date)
	if err != nil {
		return false, wrapHabitErr("toggle", id, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, wrapHabitErr("toggle", id, err)
	}
	if deleted > 0 {
		return false, nil
	}
	_, err = d.DB.ExecContext(ctx,
		"INSERT INTO habit_completions (habit_id, date) VALUES (?, ?)", id, date)
	if err != nil {
		return false, wrapHabitErr("toggle", id, err)
	}
	return true, nil
}
