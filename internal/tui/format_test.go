package tui

import (
	"testing"

	"questa/internal/models"
)

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{25 * 60, "25:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tc := range cases {
		if got := FormatCountdown(tc.seconds); got != tc.want {
			t.Errorf("FormatCountdown(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatMode(t *testing.T) {
	if got := FormatMode(models.ModeLongBreak); got != "LONG BREAK" {
		t.Errorf("FormatMode(long-break) = %q", got)
	}
	if got := FormatMode(models.ModeFocus); got != "FOCUS" {
		t.Errorf("FormatMode(focus) = %q", got)
	}
}

func TestFormatPlan(t *testing.T) {
	plan := []models.TimerMode{models.ModeFocus, models.ModeBreak, models.ModeFocus}
	if got := FormatPlan(plan, 1); got != "● [○] ●" {
		t.Errorf("FormatPlan = %q", got)
	}
	if got := FormatPlan(nil, 0); got != "" {
		t.Errorf("empty plan should render empty, got %q", got)
	}
}

func TestFormatStreak(t *testing.T) {
	if got := FormatStreak(0); got != "" {
		t.Errorf("zero streak should render empty, got %q", got)
	}
	if got := FormatStreak(7); got != "🔥7" {
		t.Errorf("FormatStreak(7) = %q", got)
	}
}
