package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text [PROMPT]",
	Short: "Read a line of text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := uiPrompter(cmd)
		askIf(p, args)

		line, err := p.Text()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)

		return nil
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password [PROMPT]",
	Short: "Read a password without echoing it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := uiPrompter(cmd)
		askIf(p, args)

		password, err := p.Password()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), password)

		return nil
	},
}

var yesnoDefault bool

var yesnoCmd = &cobra.Command{
	Use:   "yesno [PROMPT]",
	Short: "Ask a yes-or-no question",
	Long: `Asks until the answer is a prefix of "yes" or "no" (case-insensitive).
An empty answer selects the default. Prints "yes" or "no".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := ""
		if len(args) > 0 {
			prompt = args[0]
		}

		answer, err := promptConfirm(uiPrompter(cmd), prompt, yesnoDefault)
		if err != nil {
			return err
		}

		word := "no"
		if answer {
			word = "yes"
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), word)

		return nil
	},
}

func init() {
	yesnoCmd.Flags().BoolVarP(&yesnoDefault, "default", "d", false, "answer used for an empty line")

	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(yesnoCmd)
}
