package screens

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/Guerrilla-Interactive/justrun/app"
	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/screens/shared"
)

// recipeItem adapts a Recipe to the list component.
type recipeItem struct {
	recipe.Recipe
}

// FilterValue matches on the label, the description and the file marker.
func (i recipeItem) FilterValue() string {
	parts := []string{i.Name}
	if i.Description != "" {
		parts = append(parts, i.Description)
	}
	if d := i.Detail(); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

func toItems(recipes []recipe.Recipe) []list.Item {
	items := make([]list.Item, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, recipeItem{r})
	}
	return items
}

// FilterRecipes ranks targets by fuzzy match against term.
func FilterRecipes(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)
	sort.Stable(matches)
	ranks := make([]list.Rank, len(matches))
	for i, match := range matches {
		ranks[i] = list.Rank{Index: match.Index, MatchedIndexes: match.MatchedIndexes}
	}
	return ranks
}

// recipeDelegate renders one recipe per line: name, description, file.
type recipeDelegate struct {
	nameWidth int
}

func newRecipeDelegate(recipes []recipe.Recipe, termWidth int) recipeDelegate {
	longest := 0
	for _, r := range recipes {
		if n := len([]rune(r.Name)); n > longest {
			longest = n
		}
	}
	return recipeDelegate{nameWidth: shared.NameColumnWidth(termWidth, longest)}
}

func (d recipeDelegate) Height() int                             { return 1 }
func (d recipeDelegate) Spacing() int                            { return 0 }
func (d recipeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recipeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(recipeItem)
	if !ok {
		return
	}

	name := shared.Pad(it.Name, d.nameWidth)
	rest := m.Width() - d.nameWidth - 4
	desc := it.Description
	if detail := it.Detail(); detail != "" {
		rest -= len([]rune(detail)) + 1
	}
	desc = shared.Truncate(desc, rest)

	var line string
	if index == m.Index() {
		line = app.HighlightStyle.Render("> " + name)
	} else {
		line = app.ChoiceStyle.Render("  " + name)
	}
	if desc != "" {
		line += " " + app.DescStyle.Render(desc)
	}
	if detail := it.Detail(); detail != "" {
		line += " " + app.DetailStyle.Render(detail)
	}
	fmt.Fprint(w, line)
}
