package cmd

import (
	"fmt"

	"github.com/inovacc/quest/internal/application"
	"github.com/inovacc/quest/internal/core"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective quest configuration",
	Long: `Prints the configuration after defaults, the config file, QUEST_*
environment variables and flags have been applied.

Available Commands:
  editors    List known editors found on PATH`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path := cfgFile
		if path == "" {
			p, err := application.GetConfigFilePath()
			if err != nil {
				return err
			}

			path = p
		}

		editor := appConfig.Editor
		if editor == "" {
			editor = core.ResolveEditor("") + " (from environment)"
		}

		_, _ = fmt.Fprintf(out, "Config file: %s\n", path)
		_, _ = fmt.Fprintf(out, "Log level:   %s\n", appConfig.LogLevel)
		_, _ = fmt.Fprintf(out, "Editor:      %s\n", editor)
		_, _ = fmt.Fprintf(out, "Menu on:     %q\n", appConfig.Menu.On)
		_, _ = fmt.Fprintf(out, "Menu off:    %q\n", appConfig.Menu.Off)

		return nil
	},
}

var editorListAll bool

var configEditorsCmd = &cobra.Command{
	Use:   "editors",
	Short: "List known editors",
	Long: `List well-known editors and whether they are installed.

By default, shows only installed editors. Use --all to show all editors.

Examples:
  quest config editors          # List installed editors
  quest config editors --all    # List all editors (including not installed)`,
	RunE: runConfigEditors,
}

func init() {
	configEditorsCmd.Flags().BoolVarP(&editorListAll, "all", "a", false, "Show all editors (including not installed)")
	configCmd.AddCommand(configEditorsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigEditors(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	active := core.ResolveEditor(appConfig.Editor)

	_, _ = fmt.Fprintln(out, "Available Editors:")
	_, _ = fmt.Fprintln(out, "")

	editors := core.GetInstalledEditors()
	if editorListAll {
		editors = core.KnownEditors
	}

	for _, editor := range editors {
		installed := !editorListAll || core.IsEditorInstalled(editor.Command)

		status := "✓"
		if !installed {
			status = "✗"
		}

		activeMark := ""
		if editor.Command == active {
			activeMark = " [active]"
		}

		_, _ = fmt.Fprintf(out, "  %s %-14s %s%s\n", status, editor.Name, editor.Command, activeMark)
	}

	return nil
}
