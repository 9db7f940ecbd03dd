package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "threadkit",
		Short:         "threadkit renders social threads in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a threadkit YAML config")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme override (light or dark)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newButtonsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
