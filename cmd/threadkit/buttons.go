package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/threadkit/internal/ui"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

func newButtonsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "buttons [type...]",
		Short: "Preview action button types with the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, rootFlags, "preview buttons")
			if err != nil {
				return err
			}

			types := components.ButtonTypes()
			if len(args) > 0 {
				types = types[:0]
				for _, name := range args {
					bt, err := components.ParseButtonType(name)
					if err != nil {
						return newCommandError("preview buttons", "parsing button type", err, "Run 'threadkit buttons' to list every type.")
					}
					types = append(types, bt)
				}
			}

			rows := make([]ui.Renderable, 0, len(types))
			for _, bt := range types {
				rows = append(rows, components.NewButton(bt.String()).WithType(bt))
			}
			fmt.Fprintln(cmd.OutOrStdout(), components.VStack(rows...).ViewWithContext(s.render))
			return nil
		},
	}
}
