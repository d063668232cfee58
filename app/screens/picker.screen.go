package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/justrun/app"
	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/screens/shared"
)

// updatePicker handles keys on the recipe list. While the filter input is
// focused every key goes to the list, except enter which also runs the
// highlighted recipe. A filter matching nothing runs nothing: the list then
// drops the filter and would otherwise hand back an unfiltered item.
func (pm ProgramModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if pm.M.Picker.FilterState() == list.Filtering {
		matched := len(pm.M.Picker.VisibleItems()) > 0
		pm.M.Picker, cmd = pm.M.Picker.Update(msg)
		if !key.Matches(msg, pm.keys.Run) || !matched {
			return pm, cmd
		}
		return pm, tea.Batch(cmd, pm.runSelected())
	}

	switch {
	case msg.String() == "esc" && pm.M.Picker.FilterState() == list.FilterApplied:
		pm.M.Picker, cmd = pm.M.Picker.Update(msg)
		return pm, cmd

	case key.Matches(msg, pm.keys.Quit):
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Run):
		return pm, pm.runSelected()

	case key.Matches(msg, pm.keys.Copy):
		r, ok := pm.selected()
		if !ok {
			return pm, nil
		}
		command := pm.Runner.Command(r)
		if err := writeClipboard(command); err != nil {
			pm.M.SetStatus(app.LevelError, fmt.Sprintf("Could not copy to clipboard: %v", err))
		} else {
			pm.M.SetStatus(app.LevelInfo, fmt.Sprintf("Copied '%s'", command))
		}
		return pm, nil

	case key.Matches(msg, pm.keys.Preview):
		r, ok := pm.selected()
		if !ok {
			return pm, nil
		}
		runner := pm.Runner
		return pm, func() tea.Msg {
			content, err := runner.Preview(context.Background(), r)
			return app.PreviewMsg{Recipe: r, Content: content, Err: err}
		}
	}

	pm.M.Picker, cmd = pm.M.Picker.Update(msg)
	return pm, cmd
}

func (pm ProgramModel) selected() (recipe.Recipe, bool) {
	it, ok := pm.M.Picker.SelectedItem().(recipeItem)
	if !ok {
		return recipe.Recipe{}, false
	}
	return it.Recipe, true
}

// runSelected returns a Cmd running the highlighted recipe, or nil.
func (pm ProgramModel) runSelected() tea.Cmd {
	r, ok := pm.selected()
	if !ok || pm.Runner == nil {
		return nil
	}
	runner := pm.Runner
	return func() tea.Msg {
		res, err := runner.Run(context.Background(), r)
		return app.RecipeRunMsg{Recipe: r, Result: res, Err: err}
	}
}

// ViewScreenPicker renders the recipe list with the status line and header.
func ViewScreenPicker(m app.Model) string {
	header := shared.ProjectHeader(m.ProjectPath)
	status := ""
	if m.Status != "" {
		status = app.StatusStyle(m.StatusLevel).Render(m.Status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.Picker.View(), status)
}

func closedStatus(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	noun := "Terminal"
	if len(keys) > 1 {
		noun = "Terminals"
	}
	return fmt.Sprintf("%s %s closed", noun, strings.Join(quoted, ", "))
}
