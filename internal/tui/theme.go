package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Border     lipgloss.Color
	Header     lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
	Break      lipgloss.Style
	Done       lipgloss.Style
	Locked     lipgloss.Style
	Input      lipgloss.Style
	FeedLine   lipgloss.Style
	LevelBadge lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Break:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Done:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Locked:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		FeedLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		LevelBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	},
	"dracula": {
		Name:       "Dracula",
		Border:     lipgloss.Color("62"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Break:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Done:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Locked:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Faint(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		FeedLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		LevelBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme. Initialized to default so
// render helpers never dereference a missing entry.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
