package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"questa/internal/config"
	"questa/internal/models"
	"questa/internal/util"
)

// GeneratePDFReport writes a weekly focus report: per-day session totals for
// the trailing seven days, habit streaks, and the progression summary.
// Returns the path of the written file.
func GeneratePDFReport(ctx context.Context, app App, clock func() time.Time) (string, error) {
	now := clock()
	since := now.AddDate(0, 0, -7)

	logs, err := app.Repo.SessionLogsSince(ctx, since)
	if err != nil {
		return "", fmt.Errorf("load session logs: %w", err)
	}
	totalMinutes, err := app.Repo.TotalFocusMinutes(ctx)
	if err != nil {
		return "", fmt.Errorf("load focus total: %w", err)
	}
	habits, err := app.Habits.List(ctx)
	if err != nil {
		return "", fmt.Errorf("load habits: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Weekly Focus Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	// Per-day totals
	byDay := map[string]int{}
	manualByDay := map[string]int{}
	for _, l := range logs {
		day := l.CompletedAt.Format("2006-01-02")
		byDay[day] += l.DurationMinutes
		if l.Source == models.SourceManual {
			manualByDay[day] += l.DurationMinutes
		}
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Focus Time")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(days) == 0 {
		pdf.Cell(0, 8, "  No sessions this week.")
		pdf.Ln(8)
	}
	weekTotal := 0
	for _, day := range days {
		line := fmt.Sprintf("  %s  %3d min", day, byDay[day])
		if manual := manualByDay[day]; manual > 0 {
			line += fmt.Sprintf("  (%d logged manually)", manual)
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
		weekTotal += byDay[day]
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Week total: %d min   All time: %d min", weekTotal, totalMinutes))
	pdf.Ln(12)

	// Habits
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Habits")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(habits) == 0 {
		pdf.Cell(0, 8, "  No habits tracked.")
		pdf.Ln(8)
	}
	for _, h := range habits {
		pdf.Cell(0, 8, fmt.Sprintf("  %-30s streak %d, %d check-ins", h.Title, h.Streak, len(h.Completions)))
		pdf.Ln(6)
	}
	pdf.Ln(8)

	// Progression
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Progression")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("  Level %d, %d XP (%d to next), %d points",
		app.Ledger.Level(), app.Ledger.Experience(),
		app.Ledger.NextLevelAt()-app.Ledger.Experience(), app.Ledger.Currency()))
	pdf.Ln(8)

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
