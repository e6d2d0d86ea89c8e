package tui

import "github.com/charmbracelet/lipgloss"

// Theme is an accent palette. Only colors live here; layout is fixed.
type Theme struct {
	Name         string
	Accent       lipgloss.Color
	Text         lipgloss.Color
	Dim          lipgloss.Color
	Border       lipgloss.Color
	ErrorColor   lipgloss.Color
	GlamourStyle string // style name passed to glamour for the help view
}

var darkTheme = Theme{
	Name:         "dark",
	Accent:       lipgloss.Color("170"),
	Text:         lipgloss.Color("252"),
	Dim:          lipgloss.Color("241"),
	Border:       lipgloss.Color("241"),
	ErrorColor:   lipgloss.Color("196"),
	GlamourStyle: "dark",
}

var lightTheme = Theme{
	Name:         "light",
	Accent:       lipgloss.Color("92"),
	Text:         lipgloss.Color("235"),
	Dim:          lipgloss.Color("245"),
	Border:       lipgloss.Color("245"),
	ErrorColor:   lipgloss.Color("124"),
	GlamourStyle: "light",
}

// themeByName resolves a configured theme name, falling back to dark.
func themeByName(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}

// Styles holds every lipgloss style the view uses, derived from a theme
// so a config reload can swap palettes at runtime.
type Styles struct {
	Title         lipgloss.Style
	Display       lipgloss.Style
	DisplayText   lipgloss.Style
	Button        lipgloss.Style
	ButtonAccent  lipgloss.Style
	ButtonFocused lipgloss.Style
	TapePanel     lipgloss.Style
	TapeTitle     lipgloss.Style
	TapeEntry     lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
}

func newStyles(t Theme) Styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Width(btnInnerWidth).
		Align(lipgloss.Center)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			MarginLeft(2),
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1).
			Width(gridWidth - 2).
			Align(lipgloss.Right),
		DisplayText: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Button:       button,
		ButtonAccent: button.Foreground(t.Accent),
		ButtonFocused: button.
			BorderForeground(t.Accent).
			Foreground(t.Accent).
			Bold(true),
		TapePanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(tapePanelWidth),
		TapeTitle: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		TapeEntry: lipgloss.NewStyle().
			Foreground(t.Dim),
		Status: lipgloss.NewStyle().
			Foreground(t.Dim).
			MarginLeft(2),
		StatusError: lipgloss.NewStyle().
			Foreground(t.ErrorColor).
			MarginLeft(2),
		Help: lipgloss.NewStyle().
			Foreground(t.Dim).
			MarginLeft(2),
	}
}
