package cmd

import (
	"context"
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every recipe the picker would offer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, closeLog, err := newController(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		recipes, err := ctrl.Discover(context.Background())
		if err != nil {
			return warnOrFail(cmd, err)
		}
		printRecipes(termenv.NewOutput(cmd.OutOrStdout()), recipes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// printRecipes writes one recipe per line: name, description, file marker.
// Colors are dropped when out is not a terminal or NO_COLOR is set.
func printRecipes(out *termenv.Output, recipes []recipe.Recipe) {
	width := 0
	for _, r := range recipes {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}
	for _, r := range recipes {
		line := out.String(fmt.Sprintf("%-*s", width, r.Name)).Bold().String()
		if r.Description != "" {
			line += "  " + out.String("# "+r.Description).Faint().String()
		}
		if d := r.Detail(); d != "" {
			line += "  " + out.String(d).Italic().String()
		}
		fmt.Fprintln(out, line)
	}
}
