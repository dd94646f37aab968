package database

import (
	"context"
	"time"

	"questa/internal/models"
)

// TimerRepository persists countdown snapshots.
type TimerRepository interface {
	LoadTimerSnapshot(ctx context.Context) (models.TimerSnapshot, error)
	SaveTimerSnapshot(ctx context.Context, snap models.TimerSnapshot) error
}

// ProgressionRepository persists the ledger row.
type ProgressionRepository interface {
	LoadProgression(ctx context.Context) (models.Progression, error)
	SaveProgression(ctx context.Context, p models.Progression) error
}

// BoostRepository persists temporary multiplier effects.
type BoostRepository interface {
	ActiveBoosts(ctx context.Context, now time.Time) ([]models.Boost, error)
	InsertBoost(ctx context.Context, b models.Boost) (int64, error)
	PruneExpiredBoosts(ctx context.Context, now time.Time) error
}

// HabitRepository persists habits and their completion dates.
type HabitRepository interface {
	Habits(ctx context.Context) ([]models.Habit, error)
	CreateHabit(ctx context.Context, h models.Habit) error
	DeleteHabit(ctx context.Context, id string) error
	HabitCompletions(ctx context.Context, id string) ([]string, error)
	ToggleHabitCompletion(ctx context.Context, id, date string) (bool, error)
}

// SessionLogRepository persists completed focus sessions.
type SessionLogRepository interface {
	AppendSessionLog(ctx context.Context, entry models.SessionLog) error
	SessionLogsSince(ctx context.Context, since time.Time) ([]models.SessionLog, error)
	TotalFocusMinutes(ctx context.Context) (int, error)
}

// InventoryRepository persists purchased rewards.
type InventoryRepository interface {
	Inventory(ctx context.Context) ([]models.InventoryItem, error)
	AddInventoryItem(ctx context.Context, itemID string, at time.Time) error
}

// SettingsRepository persists small key/value settings.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	TimerRepository
	ProgressionRepository
	BoostRepository
	HabitRepository
	SessionLogRepository
	InventoryRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
