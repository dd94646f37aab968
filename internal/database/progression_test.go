package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"questa/internal/models"
)

func TestProgressionRoundTripAndGuard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.LoadProgression(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p := models.Progression{Experience: 450, Level: 3, Currency: 120, Version: 7}
	if err := db.SaveProgression(ctx, p); err != nil {
		t.Fatalf("SaveProgression failed: %v", err)
	}

	stale := models.Progression{Experience: 100, Level: 2, Currency: 999, Version: 4}
	if err := db.SaveProgression(ctx, stale); err != nil {
		t.Fatalf("save stale failed: %v", err)
	}

	got, err := db.LoadProgression(ctx)
	if err != nil {
		t.Fatalf("LoadProgression failed: %v", err)
	}
	if got.Experience != 450 || got.Level != 3 || got.Currency != 120 || got.Version != 7 {
		t.Fatalf("stale write clobbered newer row: %+v", got)
	}
}

func TestBoostsActiveAndPrune(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	now := time.Now()

	if _, err := db.InsertBoost(ctx, models.Boost{Kind: models.BoostXPMultiplier, Factor: 2, ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("InsertBoost failed: %v", err)
	}
	if _, err := db.InsertBoost(ctx, models.Boost{Kind: models.BoostCurrencyMultiplier, Factor: 1.5, ExpiresAt: now.Add(-time.Minute)}); err != nil {
		t.Fatalf("InsertBoost failed: %v", err)
	}

	active, err := db.ActiveBoosts(ctx, now)
	if err != nil {
		t.Fatalf("ActiveBoosts failed: %v", err)
	}
	if len(active) != 1 || active[0].Kind != models.BoostXPMultiplier {
		t.Fatalf("expected only the unexpired boost, got %+v", active)
	}

	if err := db.PruneExpiredBoosts(ctx, now); err != nil {
		t.Fatalf("PruneExpiredBoosts failed: %v", err)
	}
	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM boosts").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected expired row pruned, %d rows remain", count)
	}
}

func TestSessionLogs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	now := time.Now().Truncate(time.Second)

	entries := []models.SessionLog{
		{CompletedAt: now.Add(-48 * time.Hour), DurationMinutes: 25, Source: models.SourceLive},
		{CompletedAt: now.Add(-time.Hour), DurationMinutes: 30, Source: models.SourceManual},
		{CompletedAt: now, DurationMinutes: 25},
	}
	for _, e := range entries {
		if err := db.AppendSessionLog(ctx, e); err != nil {
			t.Fatalf("AppendSessionLog failed: %v", err)
		}
	}

	recent, err := db.SessionLogsSince(ctx, now.Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("SessionLogsSince failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent logs, got %d", len(recent))
	}
	if recent[0].Source != models.SourceManual {
		t.Fatalf("expected oldest-first ordering, got %+v", recent)
	}
	if recent[1].Source != models.SourceLive {
		t.Fatalf("empty source should default to live, got %q", recent[1].Source)
	}

	total, err := db.TotalFocusMinutes(ctx)
	if err != nil {
		t.Fatalf("TotalFocusMinutes failed: %v", err)
	}
	if total != 80 {
		t.Fatalf("TotalFocusMinutes = %d, want 80", total)
	}
}

func TestInventory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	now := time.Now().Truncate(time.Second)

	if err := db.AddInventoryItem(ctx, "power-xp2", now); err != nil {
		t.Fatalf("AddInventoryItem failed: %v", err)
	}
	items, err := db.Inventory(ctx)
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != "power-xp2" {
		t.Fatalf("unexpected inventory: %+v", items)
	}
}
