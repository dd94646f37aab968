package tui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"questa/internal/models"
)

func TestGeneratePDFReport(t *testing.T) {
	ctx := context.Background()
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	app := newTestApp(t, ctx, models.Progression{Experience: 450, Currency: 80})
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if err := app.Repo.AppendSessionLog(ctx, models.SessionLog{
		CompletedAt: now.Add(-24 * time.Hour), DurationMinutes: 50, Source: models.SourceLive,
	}); err != nil {
		t.Fatalf("AppendSessionLog failed: %v", err)
	}
	if err := app.Repo.AppendSessionLog(ctx, models.SessionLog{
		CompletedAt: now.Add(-2 * time.Hour), DurationMinutes: 30, Source: models.SourceManual,
	}); err != nil {
		t.Fatalf("AppendSessionLog failed: %v", err)
	}
	if _, err := app.Habits.Create(ctx, "Stretch", 10, 0); err != nil {
		t.Fatalf("Create habit failed: %v", err)
	}

	path, err := GeneratePDFReport(ctx, app, func() time.Time { return now })
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if !strings.HasSuffix(path, "report_2026-08-29.pdf") {
		t.Fatalf("unexpected report path: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report file is empty")
	}
}
