package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/config"
	"questa/internal/habit"
	"questa/internal/session"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear transient state on keypress
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.err = nil
			return m, nil
		}
	}
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := 30
			if m.width < 60 {
				target = m.width / 2
			}
			if target < 10 {
				target = 10
			}
			m.progress.Width = target
		}
		return m, nil
	case TickMsg:
		m.app.Session.Timer.Tick(time.Time(msg))
		m.pushFeed(m.app.Feed.Drain())
		newProg, _ := m.progress.Update(msg)
		m.progress = newProg.(progress.Model)
		return m, tickCmd()
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}
	return m.updateNormal(msg, cmd)
}

func (m DashboardModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			m.modal = modalNone
			m.textInput.Reset()
			return m, nil
		}
		if m.modal == modalShop {
			if key := msg.String(); len(key) == 1 && key >= "1" && key <= "9" {
				m.buyReward(int(key[0] - '1'))
				m.pushFeed(m.app.Feed.Drain())
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			m.submitModal()
			m.pushFeed(m.app.Feed.Drain())
			m.modal = modalNone
			m.textInput.Reset()
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *DashboardModel) submitModal() {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return
	}

	switch m.modal {
	case modalManualLog:
		minutes, err := parsePositiveInt(value)
		if err != nil {
			m.Message = "Minutes must be a positive number."
			return
		}
		m.app.Session.LogManual(minutes, m.clock())
	case modalPlanTarget:
		hours, err := parsePositiveInt(value)
		if err != nil || hours > 24 {
			m.Message = "Plan length must be 1-24 hours."
			return
		}
		f, b, l := m.app.Session.Timer.Durations()
		plan := session.GeneratePlan(hours*60, f, b, l)
		m.app.Session.Timer.SetPlan(plan)
		if err := m.app.Repo.SetSetting(m.ctx, config.SettingPlanTargetHours, strconv.Itoa(hours)); err != nil {
			m.err = err
		}
	case modalNewHabit:
		title, xp := parseHabitInput(value)
		if _, err := m.app.Habits.Create(m.ctx, title, xp, len(m.habits)); err != nil {
			m.err = err
			return
		}
		m.refreshHabits()
	}
}

func (m DashboardModel) updateNormal(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.app.Session.Timer.Running() {
				m.app.Session.Timer.Pause(m.clock())
			} else {
				m.app.Session.Timer.Start(m.clock())
			}
			m.pushFeed(m.app.Feed.Drain())
		case "x":
			m.app.Session.Timer.Reset(false, m.clock())
			m.pushFeed(m.app.Feed.Drain())
		case "X":
			m.app.Session.Timer.Reset(true, m.clock())
		case "g":
			m.modal = modalPlanTarget
			m.textInput.Placeholder = "Plan length in hours (1-24)..."
			m.textInput.SetValue(strconv.Itoa(m.planTargetHours()))
			m.textInput.Focus()
			return m, nil
		case "m":
			m.modal = modalManualLog
			m.textInput.Placeholder = "Focus minutes to log..."
			m.textInput.Focus()
			return m, nil
		case "up", "k":
			if m.habitIdx > 0 {
				m.habitIdx--
			}
		case "down", "j":
			if m.habitIdx < len(m.habits)-1 {
				m.habitIdx++
			}
		case "enter":
			if m.habitIdx < len(m.habits) {
				h := m.habits[m.habitIdx]
				if _, err := m.app.Habits.Toggle(m.ctx, h.ID, habit.Today(m.clock())); err != nil {
					m.err = err
				}
				m.pushFeed(m.app.Feed.Drain())
				m.refreshHabits()
			}
		case "n":
			m.modal = modalNewHabit
			m.textInput.Placeholder = "New habit: title [xp]..."
			m.textInput.Focus()
			return m, nil
		case "d":
			if m.habitIdx < len(m.habits) {
				if err := m.app.Habits.Delete(m.ctx, m.habits[m.habitIdx].ID); err != nil {
					m.err = err
				}
				m.refreshHabits()
			}
		case "s":
			m.modal = modalShop
			return m, nil
		case "T":
			next := "dracula"
			if CurrentTheme.Name == Themes["dracula"].Name {
				next = "default"
			}
			SetTheme(next)
			if err := m.app.Repo.SetSetting(m.ctx, settingTheme, next); err != nil {
				m.err = err
			}
		case "ctrl+r":
			path, err := GeneratePDFReport(m.ctx, m.app, m.clock)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.Message = fmt.Sprintf("Report written to %s", path)
			return m, nil
		}
	}
	return m, cmd
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// parseHabitInput splits "Read 20 pages 15" into a title and a trailing XP
// reward. Without a trailing number the reward defaults to 10.
func parseHabitInput(value string) (title string, xp int64) {
	xp = 10
	fields := strings.Fields(value)
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil && n >= 0 {
			return strings.Join(fields[:len(fields)-1], " "), int64(n)
		}
	}
	return value, xp
}
