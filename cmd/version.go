package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of justrun",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "justrun version %s\n", strings.TrimSpace(version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
