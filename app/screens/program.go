package screens

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/justrun/app"
	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/terminal"
)

// Runner executes what the picker selects.
type Runner interface {
	Run(ctx context.Context, r recipe.Recipe) (terminal.Result, error)
	Preview(ctx context.Context, r recipe.Recipe) (string, error)
	Command(r recipe.Recipe) string
	Sweep(ctx context.Context) []string
}

var (
	defaultClipboard = clipboard.WriteAll
	// writeClipboard is replaced in tests.
	writeClipboard = defaultClipboard
)

// Options tune the picker program.
type Options struct {
	// Once quits after the first successful run.
	Once bool
	// SweepEvery is how often closed terminals are looked for; zero disables it.
	SweepEvery time.Duration
	// PreviewStyle is a glamour standard style name.
	PreviewStyle string
}

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M       app.Model
	Runner  Runner
	Opts    Options
	Recipes []recipe.Recipe

	keys pickerKeys
}

// NewProgram builds the picker over recipes.
func NewProgram(projectPath string, recipes []recipe.Recipe, runner Runner, opts Options) ProgramModel {
	if opts.PreviewStyle == "" {
		opts.PreviewStyle = "dark"
	}
	keys := newPickerKeys()

	l := list.New(toItems(recipes), newRecipeDelegate(recipes, 0), 80, 20)
	l.Title = "Select a Just recipe to run"
	l.Styles.Title = app.TitleStyle
	l.Filter = FilterRecipes
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("recipe", "recipes")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	return ProgramModel{
		M: app.Model{
			CurrentScreen: app.ScreenPicker,
			ProjectPath:   projectPath,
			Picker:        l,
			Preview:       viewport.New(80, 20),
		},
		Runner:  runner,
		Opts:    opts,
		Recipes: recipes,
		keys:    keys,
	}
}

// Init starts watching for closed terminals.
func (pm ProgramModel) Init() tea.Cmd {
	return pm.sweepLater()
}

func (pm ProgramModel) sweepLater() tea.Cmd {
	if pm.Opts.SweepEvery <= 0 || pm.Runner == nil {
		return nil
	}
	runner := pm.Runner
	return tea.Tick(pm.Opts.SweepEvery, func(time.Time) tea.Msg {
		return app.SweepMsg{Removed: runner.Sweep(context.Background())}
	})
}

// Update handles incoming Msgs (both from commands and user interaction).
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height
		pm.resize()
		return pm, nil

	case app.RecipeRunMsg:
		if typedMsg.Err != nil {
			pm.M.SetStatus(app.LevelError, typedMsg.Err.Error())
			return pm, nil
		}
		pm.M.SetStatus(app.LevelInfo, typedMsg.Result.Message())
		if pm.Opts.Once {
			return pm, tea.Quit
		}
		return pm, nil

	case app.PreviewMsg:
		return pm.showPreview(typedMsg)

	case app.SweepMsg:
		if len(typedMsg.Removed) > 0 {
			pm.M.SetStatus(app.LevelInfo, closedStatus(typedMsg.Removed))
		}
		return pm, pm.sweepLater()

	case tea.KeyMsg:
		switch pm.M.CurrentScreen {
		case app.ScreenPreview:
			return pm.updatePreview(typedMsg)
		default:
			return pm.updatePicker(typedMsg)
		}
	}

	var cmd tea.Cmd
	pm.M.Picker, cmd = pm.M.Picker.Update(msg)
	return pm, cmd
}

// View renders the current screen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenPreview:
		return ViewScreenPreview(pm.M)
	default:
		return ViewScreenPicker(pm.M)
	}
}

func (pm *ProgramModel) resize() {
	w, h := pm.M.TerminalWidth, pm.M.TerminalHeight
	pm.M.Picker.SetDelegate(newRecipeDelegate(pm.Recipes, w))
	pm.M.Picker.SetSize(w, max(h-3, 3))
	pm.M.Preview.Width = w
	pm.M.Preview.Height = max(h-4, 3)
}
