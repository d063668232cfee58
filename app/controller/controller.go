// Package controller wires discovery, selection and execution together and
// owns the terminal session map for the lifetime of the program.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/app/terminal"
	"github.com/Guerrilla-Interactive/justrun/app/workspace"
	config "github.com/Guerrilla-Interactive/justrun/internal"
)

var (
	// ErrNoWorkspace is returned when the workspace directory is unusable.
	ErrNoWorkspace = workspace.ErrNoWorkspace
	// ErrToolUnavailable is returned when `just --version` fails.
	ErrToolUnavailable = errors.New("just is not installed or not in PATH. Install it from https://github.com/casey/just")
	// ErrTerminalUnavailable is returned when tmux cannot be used.
	ErrTerminalUnavailable = terminal.ErrUnavailable
	// ErrNoRecipes is a warning: discovery worked but found nothing.
	ErrNoRecipes = errors.New("no recipes found. Make sure a justfile exists in the workspace")
	// ErrUnknownRecipe is returned by RunByName for names not in the listing.
	ErrUnknownRecipe = errors.New("unknown recipe")
)

// Prober checks that a terminal backend is usable.
type Prober interface {
	Available(ctx context.Context) error
}

// Controller is the top-level action: discover, pick, run.
type Controller struct {
	Config     config.Config
	Dir        string
	Log        *log.Logger
	Lister     *recipe.Lister
	Aggregator *recipe.Aggregator
	Sessions   *terminal.Manager
	Prober     Prober
}

// New builds a Controller backed by the just binary and tmux.
func New(cfg config.Config, dir string, logger *log.Logger) *Controller {
	lister := recipe.NewLister(cfg.Binary, logger)
	tmux := terminal.NewTmux(cfg.Tmux, logger)
	return &Controller{
		Config:     cfg,
		Dir:        dir,
		Log:        logger,
		Lister:     lister,
		Aggregator: &recipe.Aggregator{Lister: lister, Extension: cfg.Extension, Log: logger},
		Sessions:   terminal.NewManager(tmux, cfg.Binary, cfg.Extension, cfg.ReuseDelay, logger),
		Prober:     tmux,
	}
}

// CheckEnvironment verifies the workspace and the just binary. Dir is
// replaced by its absolute form.
func (c *Controller) CheckEnvironment(ctx context.Context) error {
	dir, err := workspace.Resolve(c.Dir)
	if err != nil {
		return err
	}
	c.Dir = dir

	version, err := c.Lister.Version(ctx, c.Dir)
	if err != nil {
		c.Log.Debug("version check failed", "err", err)
		return ErrToolUnavailable
	}
	c.Log.Debug("found just", "version", version)
	return nil
}

// Discover returns every recipe in the workspace.
func (c *Controller) Discover(ctx context.Context) ([]recipe.Recipe, error) {
	if err := c.CheckEnvironment(ctx); err != nil {
		return nil, err
	}
	return c.collect(ctx)
}

// Prepare is Discover with an extra check that recipes can actually be run.
func (c *Controller) Prepare(ctx context.Context) ([]recipe.Recipe, error) {
	if err := c.CheckEnvironment(ctx); err != nil {
		return nil, err
	}
	if c.Prober != nil {
		if err := c.Prober.Available(ctx); err != nil {
			c.Log.Debug("terminal backend check failed", "err", err)
			return nil, ErrTerminalUnavailable
		}
	}
	return c.collect(ctx)
}

func (c *Controller) collect(ctx context.Context) ([]recipe.Recipe, error) {
	recipes := c.Aggregator.Collect(ctx, c.Dir)
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// Run executes r in its terminal.
func (c *Controller) Run(ctx context.Context, r recipe.Recipe) (terminal.Result, error) {
	return c.Sessions.Run(ctx, r, c.Dir)
}

// RunByName discovers recipes and runs the one called name.
func (c *Controller) RunByName(ctx context.Context, name string) (terminal.Result, error) {
	recipes, err := c.Prepare(ctx)
	if err != nil {
		return terminal.Result{}, err
	}
	for _, r := range recipes {
		if r.Name == name {
			return c.Run(ctx, r)
		}
	}
	return terminal.Result{}, fmt.Errorf("%w: %s", ErrUnknownRecipe, name)
}

// Command returns the shell command that runs r.
func (c *Controller) Command(r recipe.Recipe) string {
	command, _ := terminal.Invocation(r, c.Config.Binary, c.Config.Extension)
	return command
}

// Preview returns the source of r as printed by just.
func (c *Controller) Preview(ctx context.Context, r recipe.Recipe) (string, error) {
	return c.Lister.Show(ctx, c.Dir, c.Config.Extension, r)
}

// Sweep drops terminals the user has closed.
func (c *Controller) Sweep(ctx context.Context) []string {
	removed, err := c.Sessions.Sweep(ctx)
	if err != nil {
		c.Log.Debug("terminal sweep failed", "err", err)
		return nil
	}
	for _, key := range removed {
		c.Log.Debug("terminal closed", "key", key)
	}
	return removed
}

// Close waits for commands still queued for reused terminals, then forgets
// every terminal without closing them.
func (c *Controller) Close() {
	c.Sessions.Wait()
	c.Sessions.Clear()
}
