package cmd

import (
	"io"

	"github.com/inovacc/quest/internal/terminal"
	"github.com/inovacc/quest/pkg/quest"
	"github.com/spf13/cobra"
)

// newMenuTerminal replaces the raw-mode console when set. Tests use it to
// drive the menu without a real terminal.
var newMenuTerminal func(out io.Writer) terminal.Terminal

// newPrompter returns a Prompter reading the command's input and drawing
// prompts and the menu on out.
func newPrompter(cmd *cobra.Command, out io.Writer) *quest.Prompter {
	opts := []quest.Option{
		quest.WithInput(cmd.InOrStdin()),
		quest.WithOutput(out),
		quest.WithEditor(appConfig.Editor),
	}

	if newMenuTerminal != nil {
		opts = append(opts, quest.WithTerminal(newMenuTerminal(out)))
	}

	return quest.New(opts...)
}

// uiPrompter draws on stderr so stdout carries only the answer.
func uiPrompter(cmd *cobra.Command) *quest.Prompter {
	return newPrompter(cmd, cmd.ErrOrStderr())
}

// boxes returns the menu markers from the loaded configuration.
func boxes() quest.Boxes {
	return quest.Boxes{On: appConfig.Menu.On, Off: appConfig.Menu.Off}
}

// askIf prints prompt in bold when it is not empty.
func askIf(p *quest.Prompter, args []string) {
	if len(args) > 0 && args[0] != "" {
		p.Ask(args[0])
	}
}

// promptConfirm asks until a valid yes or no answer is given. An empty answer
// selects def.
func promptConfirm(p *quest.Prompter, prompt string, def bool) (bool, error) {
	for {
		if prompt != "" {
			p.Ask(prompt)
		}

		answer, ok, err := p.YesNo(def)
		if err != nil {
			return false, err
		}

		if ok {
			return answer, nil
		}
	}
}
