package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/justrun/app"
	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/screens/shared"
)

// RenderPreview turns recipe source into styled markdown.
func RenderPreview(r recipe.Recipe, source, style string, width int) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", r.Name)
	if r.Description != "" {
		fmt.Fprintf(&md, "%s\n\n", r.Description)
	}
	if r.SourceFile != "" {
		fmt.Fprintf(&md, "_from %s_\n\n", r.SourceFile)
	}
	fmt.Fprintf(&md, "```just\n%s\n```\n", strings.TrimRight(source, "\n"))

	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md.String())
}

func (pm ProgramModel) showPreview(msg app.PreviewMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		pm.M.SetStatus(app.LevelError, msg.Err.Error())
		return pm, nil
	}
	out, err := RenderPreview(msg.Recipe, msg.Content, pm.Opts.PreviewStyle, pm.M.Preview.Width)
	if err != nil {
		// plain source is still useful
		out = msg.Content
	}
	pm.M.PreviewTitle = msg.Recipe.Name
	pm.M.Preview.SetContent(out)
	pm.M.Preview.GotoTop()
	pm.M.CurrentScreen = app.ScreenPreview
	return pm, nil
}

func (pm ProgramModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return pm, tea.Quit
	case "esc", "q", "p", "b":
		pm.M.CurrentScreen = app.ScreenPicker
		return pm, nil
	case "enter":
		pm.M.CurrentScreen = app.ScreenPicker
		return pm, pm.runSelected()
	}
	var cmd tea.Cmd
	pm.M.Preview, cmd = pm.M.Preview.Update(msg)
	return pm, cmd
}

// ViewScreenPreview renders the recipe source in a scrollable viewport.
func ViewScreenPreview(m app.Model) string {
	header := app.TitleStyle.Render(m.PreviewTitle)
	footer := shared.Footer("↑/↓ scroll", "enter run", "esc back")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.Preview.View(), footer)
}
