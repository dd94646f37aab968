package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"questa/internal/config"
	"questa/internal/models"
	"questa/internal/progression"
)

//go:generate mockgen -source=service.go -destination=mock_store_test.go -package=habit

// CompletionStore is the slice of the persistence collaborator the habit
// service needs.
type CompletionStore interface {
	Habits(ctx context.Context) ([]models.Habit, error)
	CreateHabit(ctx context.Context, h models.Habit) error
	DeleteHabit(ctx context.Context, id string) error
	HabitCompletions(ctx context.Context, id string) ([]string, error)
	ToggleHabitCompletion(ctx context.Context, id, date string) (bool, error)
}

// Granter is the ledger surface the habit service grants through.
type Granter interface {
	GrantExperience(base int64, source string) int64
	GrantCurrency(base int64) int64
}

// Service owns habit mutations and keeps the ledger in sync: a check-in
// grants the habit's experience reward plus a flat currency bonus, and
// un-checking reverses both exactly.
type Service struct {
	store  CompletionStore
	ledger Granter
	clock  func() time.Time
}

// NewService wires the habit service. ledger may be nil for read-only use.
func NewService(store CompletionStore, ledger Granter) *Service {
	return &Service{store: store, ledger: ledger, clock: time.Now}
}

// List returns all habits with streaks derived from their completion sets.
func (s *Service) List(ctx context.Context) ([]models.Habit, error) {
	habits, err := s.store.Habits(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	for i := range habits {
		habits[i].Streak = Streak(habits[i].Completions, now)
	}
	return habits, nil
}

// Create adds a new habit with a fresh ID.
func (s *Service) Create(ctx context.Context, title string, xpReward int64, position int) (models.Habit, error) {
	if title == "" {
		return models.Habit{}, fmt.Errorf("habit title must not be empty")
	}
	if xpReward < 0 {
		xpReward = 0
	}
	h := models.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		XPReward:  xpReward,
		Position:  position,
		CreatedAt: s.clock(),
	}
	if err := s.store.CreateHabit(ctx, h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

// Delete removes a habit and its history.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteHabit(ctx, id)
}

// Toggle flips the completion mark for date and applies or reverses the
// check-in reward. Toggling the same date twice returns the ledger to its
// exact prior state. The returned habit carries the refreshed completion set
// and streak.
func (s *Service) Toggle(ctx context.Context, id, date string) (models.Habit, error) {
	habits, err := s.store.Habits(ctx)
	if err != nil {
		return models.Habit{}, err
	}
	var habit *models.Habit
	for i := range habits {
		if habits[i].ID == id {
			habit = &habits[i]
			break
		}
	}
	if habit == nil {
		return models.Habit{}, fmt.Errorf("habit %s: not found", id)
	}

	completed, err := s.store.ToggleHabitCompletion(ctx, id, date)
	if err != nil {
		return models.Habit{}, err
	}

	if s.ledger != nil {
		if completed {
			s.ledger.GrantExperience(habit.XPReward, progression.SourceHabit)
			s.ledger.GrantCurrency(config.HabitCurrency)
		} else {
			s.ledger.GrantExperience(-habit.XPReward, progression.SourceHabit)
			s.ledger.GrantCurrency(-config.HabitCurrency)
		}
	}

	dates, err := s.store.HabitCompletions(ctx, id)
	if err != nil {
		return models.Habit{}, err
	}
	habit.Completions = dates
	habit.Streak = Streak(dates, s.clock())
	return *habit, nil
}
