package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Guerrilla-Interactive/justrun/app/controller"
	"github.com/Guerrilla-Interactive/justrun/app/screens"
	"github.com/Guerrilla-Interactive/justrun/app/workspace"
	config "github.com/Guerrilla-Interactive/justrun/internal"
	"github.com/Guerrilla-Interactive/justrun/internal/logging"
)

// flags shared by every command
type globalFlags struct {
	dir     string
	config  string
	debug   bool
	logFile string
}

var (
	flags   globalFlags
	once    bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "justrun",
	Short: "Pick a just recipe and run it in a reusable terminal",
	Long: `justrun lists the recipes of the workspace justfile and of every *.just file
next to it, lets you fuzzy-search them, and runs the chosen one in a tmux
session named after the recipe. Running the same recipe again interrupts and
reuses its session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPicker,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(v string) {
	version = v
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.dir, "dir", "", "Workspace directory (default: nearest directory with a justfile or .git)")
	pf.StringVar(&flags.config, "config", "", "Config file (default: ~/.config/justrun/config.yaml)")
	pf.BoolVar(&flags.debug, "debug", false, "Log every external command")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&once, "once", false, "Exit after the first recipe is started")
}

// loadConfig resolves config and workspace for any command.
func loadConfig() (config.Config, string, error) {
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return config.Config{}, "", err
	}
	dir := flags.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, "", fmt.Errorf("%w: %v", workspace.ErrNoWorkspace, err)
		}
		if dir, err = workspace.Detect(wd); err != nil {
			return config.Config{}, "", err
		}
	}
	return cfg, dir, nil
}

// newController builds the controller with a logger writing to w unless a
// log file was requested.
func newController(w io.Writer) (*controller.Controller, func() error, error) {
	cfg, dir, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	var logger *log.Logger
	closeLog := func() error { return nil }
	if flags.logFile != "" {
		if logger, closeLog, err = logging.Open(flags.logFile, flags.debug); err != nil {
			return nil, nil, err
		}
	} else {
		logger = logging.New(w, flags.debug)
	}
	return controller.New(cfg, dir, logger), closeLog, nil
}

// warnOrFail turns the discovery warning into a message and a clean exit.
func warnOrFail(cmd *cobra.Command, err error) error {
	if errors.Is(err, controller.ErrNoRecipes) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
		return nil
	}
	return err
}

func runPicker(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the picker needs an interactive terminal; use `justrun list` or `justrun run <recipe>`")
	}

	// the picker owns the screen, so without --log-file logs are dropped
	ctrl, closeLog, err := newController(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	// Close delivers commands still queued for reused terminals before exit.
	defer ctrl.Close()

	ctx := context.Background()
	recipes, err := ctrl.Prepare(ctx)
	if err != nil {
		return warnOrFail(cmd, err)
	}

	pm := screens.NewProgram(ctrl.Dir, recipes, ctrl, screens.Options{
		Once:       once || ctrl.Config.Once,
		SweepEvery: ctrl.Config.SweepInterval,
	})
	if _, err := tea.NewProgram(pm, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	return nil
}
