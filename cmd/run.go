package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/justrun/app/terminal"
)

var runCmd = &cobra.Command{
	Use:   "run <recipe>",
	Short: "Run a recipe in its terminal without the picker",
	Long: `Run a recipe by name. Recipes from auxiliary files use their namespaced
name, for example "ci::lint".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, closeLog, err := newController(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()
		defer ctrl.Close()

		res, err := ctrl.RunByName(context.Background(), args[0])
		if err != nil {
			return warnOrFail(cmd, err)
		}
		// a reused session gets its command after the reuse delay; print once it did
		ctrl.Sessions.Wait()
		fmt.Fprintln(cmd.OutOrStdout(), res.Message())
		if os.Getenv("TMUX") == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Attach with: tmux attach -t %s\n", terminal.SessionName(res.Key))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
