package app

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/terminal"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenPreview
)

// Level is the severity of the status line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	ProjectPath    string
	TerminalWidth  int
	TerminalHeight int

	Picker       list.Model
	Preview      viewport.Model
	PreviewTitle string

	Status      string
	StatusLevel Level
}

// SetStatus replaces the status line.
func (m *Model) SetStatus(level Level, text string) {
	m.Status = text
	m.StatusLevel = level
}

// RecipeRunMsg reports the outcome of running a recipe.
type RecipeRunMsg struct {
	Recipe recipe.Recipe
	Result terminal.Result
	Err    error
}

// PreviewMsg carries the source of a recipe for the preview screen.
type PreviewMsg struct {
	Recipe  recipe.Recipe
	Content string
	Err     error
}

// SweepMsg lists the terminals found closed since the last sweep.
type SweepMsg struct {
	Removed []string
}

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5f00d7")).Padding(0, 1)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	DescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DetailStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#777777"))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	InfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd787"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)

// StatusStyle returns the style for a status level.
func StatusStyle(level Level) lipgloss.Style {
	switch level {
	case LevelWarn:
		return WarnStyle
	case LevelError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}
