// Package tui renders the dashboard: countdown header, progression strip,
// habit list, and the modals for manual logs, plans, and the reward shop.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/config"
	"questa/internal/database"
	"questa/internal/habit"
	"questa/internal/models"
	"questa/internal/progression"
	"questa/internal/session"
	"questa/internal/store"
)

var AppVersion = "0"

// App bundles the wired collaborators the dashboard drives.
type App struct {
	Repo    database.Repository
	Queue   *store.Queue
	Ledger  *progression.Ledger
	Boosts  *progression.Registry
	Session *session.Service
	Habits  *habit.Service
	Feed    *progression.Feed
}

// Input modals. Exactly one is active at a time.
const (
	modalNone = iota
	modalManualLog
	modalPlanTarget
	modalNewHabit
	modalShop
)

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// --- Model ---
type DashboardModel struct {
	ctx context.Context
	app App

	habits   []models.Habit
	habitIdx int

	modal     int
	textInput textinput.Model
	progress  progress.Model

	feed    []string
	Message string
	err     error

	clock         func() time.Time
	width, height int
}

func NewDashboardModel(ctx context.Context, app App) DashboardModel {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 40

	m := DashboardModel{
		ctx:       ctx,
		app:       app,
		textInput: ti,
		progress:  progress.New(progress.WithDefaultGradient()),
		clock:     time.Now,
	}
	m.progress.Width = 30

	if theme, ok := app.Repo.GetSetting(ctx, settingTheme); ok {
		SetTheme(theme)
	}
	m.refreshHabits()
	return m
}

const settingTheme = "theme"

func (m *DashboardModel) refreshHabits() {
	habits, err := m.app.Habits.List(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.habits = habits
	if m.habitIdx >= len(m.habits) {
		m.habitIdx = len(m.habits) - 1
	}
	if m.habitIdx < 0 {
		m.habitIdx = 0
	}
}

// pushFeed appends drained economy lines, keeping only the freshest few.
func (m *DashboardModel) pushFeed(lines []string) {
	if len(lines) == 0 {
		return
	}
	m.feed = append(m.feed, lines...)
	if extra := len(m.feed) - 4; extra > 0 {
		m.feed = m.feed[extra:]
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// planTargetHours returns the persisted plan length, defaulting to 2 hours.
func (m DashboardModel) planTargetHours() int {
	if v, ok := m.app.Repo.GetSetting(m.ctx, config.SettingPlanTargetHours); ok {
		if hours, err := parsePositiveInt(v); err == nil {
			return hours
		}
	}
	return 2
}
