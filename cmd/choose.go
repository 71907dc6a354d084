package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoSelection = errors.New("no selection: input ended before a choice was confirmed")

var chooseCmd = &cobra.Command{
	Use:   "choose ITEM...",
	Short: "Pick one item from a list",
	Long: `Shows the items as a list and lets you move the marker with the arrow keys
or j and k. Enter confirms. The chosen index and item are printed as
"INDEX<TAB>ITEM".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := uiPrompter(cmd)

		index, ok, err := p.Select(boxes(), args)
		if err != nil {
			return err
		}

		if !ok {
			return errNoSelection
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", index, args[index])

		return nil
	},
}

func init() {
	chooseCmd.Flags().String("on", ">", "marker for the selected item")
	chooseCmd.Flags().String("off", " ", "marker for the other items")
	rootCmd.AddCommand(chooseCmd)
}
