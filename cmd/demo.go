package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var scriptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every kind of prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd, cmd.OutOrStdout())
		out := cmd.OutOrStdout()

		p.Success("Operation successful!")
		p.Error("Error: The compiler ate your laundry.")

		choices := []string{"Well", "Brilliant", "Amazing"}

		p.Ask("How are you today?\n")

		choice, err := p.Choose(boxes(), choices)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "It's good to see that you're %s.\n\n", strings.ToLower(choices[choice]))

		p.Ask("What's your name? ")

		name, err := p.Text()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Hello, %s!\n\n", name)

		p.Ask("Password: ")

		password, err := p.Password()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Correct, the password is %s.\n\n", password)

		script, err := p.Editor("script.py", []byte("# Write a Python script.\n"))
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, "Here's what you wrote.")
		_, _ = fmt.Fprintln(out, scriptStyle.Render(strings.TrimRight(script, "\n")))
		_, _ = fmt.Fprintln(out)

		one, err := promptConfirm(p, "Are you the one? [yN] ", false)
		if err != nil {
			return err
		}

		if one {
			_, _ = fmt.Fprintln(out, "No, I AM THE ONE!")
		} else {
			_, _ = fmt.Fprintln(out, "I guess not.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
