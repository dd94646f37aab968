package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"questa/internal/habit"
	"questa/internal/models"
	"questa/internal/progression"
)

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress any key to continue.", m.err)
	}
	if m.Message != "" {
		return CurrentTheme.Break.Foreground(lipgloss.Color("208")).Render(m.Message)
	}

	var sections []string
	sections = append(sections, m.renderTimerBox())
	sections = append(sections, m.renderProgressionStrip())

	if m.modal == modalShop {
		sections = append(sections, m.renderShop())
	} else {
		sections = append(sections, m.renderHabits())
	}

	if pane := m.renderFeed(); pane != "" {
		sections = append(sections, pane)
	}
	sections = append(sections, m.renderFooter())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return "\x1b[H\x1b[2J" + view
}

func (m DashboardModel) renderTimerBox() string {
	t := m.app.Session.Timer

	var content string
	var style lipgloss.Style
	switch {
	case t.Running() && t.Mode() == models.ModeFocus:
		done := t.SegmentSeconds() - t.Remaining()
		bar := m.progress.ViewAs(float64(done) / float64(t.SegmentSeconds()))
		content = fmt.Sprintf("FOCUS  |  %s  |  %s remaining", bar, FormatCountdown(t.Remaining()))
		style = CurrentTheme.Focused
	case t.Running():
		content = fmt.Sprintf("☕ %s: %s remaining", FormatMode(t.Mode()), FormatCountdown(t.Remaining()))
		style = CurrentTheme.Break
	case t.Remaining() < t.SegmentSeconds():
		content = fmt.Sprintf("PAUSED %s  |  %s remaining  |  [space] to Resume", FormatMode(t.Mode()), FormatCountdown(t.Remaining()))
		style = CurrentTheme.Break
	default:
		content = fmt.Sprintf("%s %s  |  Press [space] to Start", FormatMode(t.Mode()), FormatCountdown(t.Remaining()))
		style = CurrentTheme.Dim
	}

	if strip := FormatPlan(t.Plan(), t.SegmentIndex()); strip != "" {
		content += "  |  " + strip
	}
	content += fmt.Sprintf("  |  v%s", AppVersion)

	frame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
	frameWidth := m.width - lipgloss.Width(frame.Render(""))
	if frameWidth < 1 {
		frameWidth = 1
	}
	return frame.Width(frameWidth).Render(style.Render(content))
}

func (m DashboardModel) renderProgressionStrip() string {
	l := m.app.Ledger

	floor := float64(progression.ExperienceForLevel(l.Level()))
	span := float64(l.NextLevelAt()) - floor
	ratio := 0.0
	if span > 0 {
		ratio = (float64(l.Experience()) - floor) / span
	}
	bar := m.progress.ViewAs(ratio)

	line := fmt.Sprintf("%s  %s  %s  %s",
		CurrentTheme.LevelBadge.Render(fmt.Sprintf("Lv %d", l.Level())),
		bar,
		CurrentTheme.Dim.Render(fmt.Sprintf("%d/%d XP", l.Experience(), l.NextLevelAt())),
		CurrentTheme.Highlight.Render(fmt.Sprintf("%d pts", l.Currency())))

	if boosts := m.app.Boosts.Active(m.clock()); len(boosts) > 0 {
		var tags []string
		for _, b := range boosts {
			tags = append(tags, fmt.Sprintf("%.1fx", b.Factor))
		}
		line += "  " + CurrentTheme.Break.Render("⚡"+strings.Join(tags, " "))
	}
	return " " + line
}

func (m DashboardModel) renderHabits() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Habits") + "\n")

	if len(m.habits) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  (none yet, press [n])"))
	}
	today := habit.Today(m.clock())
	for i, h := range m.habits {
		mark := "[ ]"
		style := lipgloss.NewStyle()
		if containsDate(h.Completions, today) {
			mark = "[x]"
			style = CurrentTheme.Done
		}
		lead := "  "
		if i == m.habitIdx {
			lead = "> "
			style = CurrentTheme.Focused
		}
		line := fmt.Sprintf("%s%s %s", lead, mark, h.Title)
		if streak := FormatStreak(h.Streak); streak != "" {
			line += " " + CurrentTheme.Break.Render(streak)
		}
		line += CurrentTheme.Dim.Render(fmt.Sprintf(" (+%d XP)", h.XPReward))
		b.WriteString(style.Render(line) + "\n")
	}
	return m.framedPane(b.String())
}

func (m DashboardModel) renderShop() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Reward Shop") + "\n")
	level := m.app.Ledger.Level()

	for i, r := range models.Catalog {
		line := fmt.Sprintf("  [%d] %-20s %4d pts  %s", i+1, r.Name, r.Cost, r.Description)
		if level < r.UnlockLevel {
			line = fmt.Sprintf("  [%d] %-20s %s", i+1, r.Name, fmt.Sprintf("🔒 level %d", r.UnlockLevel))
			b.WriteString(CurrentTheme.Locked.Render(line) + "\n")
			continue
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("  [1-9] Buy | [Esc] Close"))
	return m.framedPane(b.String())
}

func (m DashboardModel) renderFeed() string {
	if len(m.feed) == 0 {
		return ""
	}
	width := m.width - 2
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, line := range m.feed {
		lines = append(lines, ansi.Wrap(CurrentTheme.FeedLine.Render(line), width, ""))
	}
	return " " + strings.Join(lines, "\n ")
}

func (m DashboardModel) renderFooter() string {
	var content string
	switch m.modal {
	case modalManualLog, modalPlanTarget, modalNewHabit:
		content = CurrentTheme.Input.Render(m.textInput.View())
		return content
	case modalShop:
		content = CurrentTheme.Dim.Render("[1-9] Buy | [Esc] Close")
	default:
		help := "[space]Start/Pause|[x]Reset|[g]Plan|[m]Log|[enter]Habit|[n]New|[d]Del|[s]Shop|[T]Theme|[ctrl+r]Report|[q]Quit"
		content = CurrentTheme.Dim.Render(help)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

func (m DashboardModel) framedPane(content string) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
	width := m.width - lipgloss.Width(frame.Render(""))
	if width < 1 {
		width = 1
	}
	return frame.Width(width).Render(strings.TrimRight(content, "\n"))
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
