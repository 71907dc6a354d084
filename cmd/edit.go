package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editName    string
	editMessage string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Write text in your editor",
	Long: `Opens your editor on a temporary file and prints the file's content once
the editor exits.

The editor is taken from --editor, the config file, VISUAL, EDITOR, and
finally defaults to vi (notepad on Windows).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := uiPrompter(cmd).Editor(editName, []byte(editMessage))
		if err != nil {
			return err
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), text)

		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "message.txt", "temporary file name, its extension lets editors pick a syntax")
	editCmd.Flags().StringVarP(&editMessage, "message", "m", "", "initial content of the file")
	editCmd.Flags().String("editor", "", "editor command")
	rootCmd.AddCommand(editCmd)
}
