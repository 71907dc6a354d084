package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var successCmd = &cobra.Command{
	Use:   "success TEXT...",
	Short: "Print a success message in bold green",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		newPrompter(cmd, cmd.OutOrStdout()).Success(strings.Join(args, " "))
	},
}

var errorCmd = &cobra.Command{
	Use:   "error TEXT...",
	Short: "Print an error message in bold red on stderr",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		newPrompter(cmd, cmd.ErrOrStderr()).Error(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(successCmd)
	rootCmd.AddCommand(errorCmd)
}
