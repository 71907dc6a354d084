package cmd

import (
	"os"

	"github.com/inovacc/quest/internal/application"
	"github.com/inovacc/quest/internal/config"
	"github.com/inovacc/quest/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Interactive command-line prompts",
	Long: `Quest asks questions on the terminal: free text, passwords, yes/no
answers, a pick from a list, or a longer text written in your editor.

Prompts and the menu are drawn on stderr and answers are printed to
stdout, so quest can be used from shell scripts:

  name=$(quest text "Name? ")
  pick=$(quest choose red green blue)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile, map[string]*pflag.Flag{
			"menu.on":  cmd.Flags().Lookup("on"),
			"menu.off": cmd.Flags().Lookup("off"),
			"editor":   cmd.Flags().Lookup("editor"),
		})
		if err != nil {
			return err
		}

		if verbose {
			c.LogLevel = "debug"
		}

		appConfig = c

		logging.Setup(cmd.ErrOrStderr(), appConfig.LogLevel)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/quest/quest.ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
