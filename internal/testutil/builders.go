// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"time"

	"questa/internal/models"
)

// SnapshotBuilder provides a fluent API for creating timer snapshots.
type SnapshotBuilder struct {
	snap models.TimerSnapshot
}

func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		snap: models.TimerSnapshot{
			Mode:             models.ModeFocus,
			RemainingSeconds: 25 * 60,
			FocusMinutes:     25,
			BreakMinutes:     5,
			LongBreakMinutes: 15,
		},
	}
}

func (b *SnapshotBuilder) WithMode(m models.TimerMode) *SnapshotBuilder {
	b.snap.Mode = m
	return b
}

func (b *SnapshotBuilder) WithRemaining(seconds int) *SnapshotBuilder {
	b.snap.RemainingSeconds = seconds
	return b
}

func (b *SnapshotBuilder) Running(at time.Time) *SnapshotBuilder {
	b.snap.Running = true
	b.snap.StartedAt = &at
	return b
}

func (b *SnapshotBuilder) WithPlan(plan ...models.TimerMode) *SnapshotBuilder {
	b.snap.Plan = plan
	return b
}

func (b *SnapshotBuilder) WithVersion(v int64) *SnapshotBuilder {
	b.snap.Version = v
	return b
}

func (b *SnapshotBuilder) Build() models.TimerSnapshot {
	return b.snap
}

// HabitBuilder provides a fluent API for creating test habits.
type HabitBuilder struct {
	habit models.Habit
}

func NewHabit(id string) *HabitBuilder {
	return &HabitBuilder{
		habit: models.Habit{
			ID:        id,
			Title:     "Test Habit",
			XPReward:  10,
			CreatedAt: time.Now(),
		},
	}
}

func (b *HabitBuilder) WithTitle(title string) *HabitBuilder {
	b.habit.Title = title
	return b
}

func (b *HabitBuilder) WithXPReward(xp int64) *HabitBuilder {
	b.habit.XPReward = xp
	return b
}

func (b *HabitBuilder) WithPosition(p int) *HabitBuilder {
	b.habit.Position = p
	return b
}

func (b *HabitBuilder) Build() models.Habit {
	return b.habit
}
