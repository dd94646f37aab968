package tui

import (
	"fmt"
	"strings"

	"questa/internal/models"
)

// FormatCountdown renders seconds as MM:SS, or H:MM:SS past the hour.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMode returns the display label for a segment mode.
func FormatMode(mode models.TimerMode) string {
	switch mode {
	case models.ModeBreak:
		return "BREAK"
	case models.ModeLongBreak:
		return "LONG BREAK"
	default:
		return "FOCUS"
	}
}

// FormatPlan renders a segment plan as a glyph strip, bracketing the current
// segment: "● ○ [●] ○ ●".
func FormatPlan(plan []models.TimerMode, current int) string {
	if len(plan) == 0 {
		return ""
	}
	parts := make([]string, len(plan))
	for i, mode := range plan {
		glyph := "●"
		if mode != models.ModeFocus {
			glyph = "○"
		}
		if i == current {
			glyph = "[" + glyph + "]"
		}
		parts[i] = glyph
	}
	return strings.Join(parts, " ")
}

// FormatStreak renders a habit streak as a flame counter, empty for zero.
func FormatStreak(days int) string {
	if days <= 0 {
		return ""
	}
	return fmt.Sprintf("🔥%d", days)
}
