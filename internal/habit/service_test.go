package habit

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"questa/internal/config"
	"questa/internal/models"
	"questa/internal/progression"
)

func TestToggleGrantsOnCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := NewMockCompletionStore(ctrl)
	ledger := NewMockGranter(ctrl)

	h := models.Habit{ID: "h1", Title: "Read", XPReward: 15}
	date := Today(time.Now())

	store.EXPECT().Habits(ctx).Return([]models.Habit{h}, nil)
	store.EXPECT().ToggleHabitCompletion(ctx, "h1", date).Return(true, nil)
	ledger.EXPECT().GrantExperience(int64(15), progression.SourceHabit).Return(int64(15))
	ledger.EXPECT().GrantCurrency(int64(config.HabitCurrency)).Return(int64(config.HabitCurrency))
	store.EXPECT().HabitCompletions(ctx, "h1").Return([]string{date}, nil)

	svc := NewService(store, ledger)
	got, err := svc.Toggle(ctx, "h1", date)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if got.Streak != 1 {
		t.Fatalf("streak = %d, want 1", got.Streak)
	}
}

func TestToggleReversesOnUncheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := NewMockCompletionStore(ctrl)
	ledger := NewMockGranter(ctrl)

	h := models.Habit{ID: "h1", Title: "Read", XPReward: 15}
	date := Today(time.Now())

	store.EXPECT().Habits(ctx).Return([]models.Habit{h}, nil)
	store.EXPECT().ToggleHabitCompletion(ctx, "h1", date).Return(false, nil)
	ledger.EXPECT().GrantExperience(int64(-15), progression.SourceHabit).Return(int64(-15))
	ledger.EXPECT().GrantCurrency(int64(-config.HabitCurrency)).Return(int64(-config.HabitCurrency))
	store.EXPECT().HabitCompletions(ctx, "h1").Return(nil, nil)

	svc := NewService(store, ledger)
	got, err := svc.Toggle(ctx, "h1", date)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if got.Streak != 0 {
		t.Fatalf("streak = %d, want 0", got.Streak)
	}
}

func TestToggleUnknownHabit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := NewMockCompletionStore(ctrl)
	store.EXPECT().Habits(ctx).Return(nil, nil)

	svc := NewService(store, nil)
	if _, err := svc.Toggle(ctx, "missing", "2026-08-29"); err == nil {
		t.Fatalf("expected error for unknown habit")
	}
}

func TestCreateAssignsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := NewMockCompletionStore(ctrl)
	store.EXPECT().CreateHabit(ctx, gomock.Any()).Return(nil)

	svc := NewService(store, nil)
	h, err := svc.Create(ctx, "Stretch", 10, 2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if h.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if h.Position != 2 || h.XPReward != 10 {
		t.Fatalf("unexpected habit: %+v", h)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(NewMockCompletionStore(ctrl), nil)
	if _, err := svc.Create(context.Background(), "", 10, 0); err == nil {
		t.Fatalf("expected error for empty title")
	}
}

func TestListDerivesStreaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	store := NewMockCompletionStore(ctrl)
	store.EXPECT().Habits(ctx).Return([]models.Habit{
		{ID: "a", Completions: []string{"2026-08-29", "2026-08-28"}},
		{ID: "b", Completions: []string{"2026-08-26"}},
	}, nil)

	svc := NewService(store, nil)
	svc.clock = func() time.Time { return now }

	habits, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if habits[0].Streak != 2 {
		t.Fatalf("habit a streak = %d, want 2", habits[0].Streak)
	}
	if habits[1].Streak != 0 {
		t.Fatalf("habit b streak = %d, want 0", habits[1].Streak)
	}
}

// Toggle twice against the real ledger must return it to its exact prior
// state (symmetry law end to end).
func TestToggleTwiceIsIdentityOnLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	h := models.Habit{ID: "h1", Title: "Read", XPReward: 80}
	date := "2026-08-29"

	store := NewMockCompletionStore(ctrl)
	store.EXPECT().Habits(ctx).Return([]models.Habit{h}, nil).Times(2)
	first := store.EXPECT().ToggleHabitCompletion(ctx, "h1", date).Return(true, nil)
	store.EXPECT().ToggleHabitCompletion(ctx, "h1", date).Return(false, nil).After(first)
	store.EXPECT().HabitCompletions(ctx, "h1").Return([]string{date}, nil)
	store.EXPECT().HabitCompletions(ctx, "h1").Return(nil, nil)

	ledger := progression.NewLedger(models.Progression{Experience: 350, Currency: 25}, nil, nil, nil)
	before := ledger.Snapshot()

	svc := NewService(store, ledger)
	if _, err := svc.Toggle(ctx, "h1", date); err != nil {
		t.Fatalf("first Toggle failed: %v", err)
	}
	if ledger.Level() != 3 {
		t.Fatalf("check-in should have crossed into level 3, got %d", ledger.Level())
	}
	if _, err := svc.Toggle(ctx, "h1", date); err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}

	after := ledger.Snapshot()
	if after.Experience != before.Experience || after.Level != before.Level || after.Currency != before.Currency {
		t.Fatalf("toggle twice should be identity: before %+v after %+v", before, after)
	}
}
