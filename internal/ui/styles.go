package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/cheatpick/internal/config"
	"github.com/gubarz/cheatpick/internal/template"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// List view styles
	Title    lipgloss.Style
	Name     lipgloss.Style
	Command  lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style

	// Args popup styles
	Literal     lipgloss.Style
	Placeholder lipgloss.Style
	Focused     lipgloss.Style
	ArgName     lipgloss.Style

	// Chrome styles
	Border  lipgloss.Style
	Divider lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Name:        lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Literal:     lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true).Underline(true),
		ArgName:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SelectedBg:  lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	titleColor := parseANSIColor(config.GetColorTitle())
	nameColor := parseANSIColor(config.GetColorName())
	cmdColor := parseANSIColor(config.GetColorCommand())
	argColor := parseANSIColor(config.GetColorArg())
	borderColor := lipgloss.Color(config.GetColorBorder())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	dimColor := lipgloss.Color(config.GetColorDim())

	s.Title = lipgloss.NewStyle().Foreground(titleColor)
	s.Name = lipgloss.NewStyle().Foreground(nameColor)
	s.Command = lipgloss.NewStyle().Foreground(cmdColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)

	s.Literal = lipgloss.NewStyle().Foreground(cmdColor)
	s.Placeholder = lipgloss.NewStyle().Foreground(argColor)
	s.Focused = lipgloss.NewStyle().Foreground(argColor).Bold(true).Underline(true)
	s.ArgName = lipgloss.NewStyle().Foreground(argColor)

	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.SelectedBg = selectedBg
}

// WithSelection returns a copy of the given style with the selected background applied
func (s *StyleManager) WithSelection(style lipgloss.Style) lipgloss.Style {
	return style.Background(s.SelectedBg)
}

// ForSpan returns the style for a preview span
func (s *StyleManager) ForSpan(style template.Style) lipgloss.Style {
	switch style {
	case template.StyleFocused:
		return s.Focused
	case template.StylePlaceholder:
		return s.Placeholder
	default:
		return s.Literal
	}
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
