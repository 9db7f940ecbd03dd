package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/threadkit/internal/config"
	"github.com/alexisbeaulieu97/threadkit/internal/ui"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

type renderOptions struct {
	gap int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <fixture>",
		Short: "Render a thread fixture to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.gap, "gap", 0, "Blank lines between posts")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, fixture string, opts *renderOptions) error {
	s, err := newSession(cmd, rootFlags, "render")
	if err != nil {
		return err
	}

	posts, err := config.LoadThread(fixture)
	if err != nil {
		s.log.Error(err, "fixture load failed")
		return newCommandError("render", fmt.Sprintf("loading fixture %q", fixture), err, "Check the fixture YAML against examples/thread.yaml.")
	}
	s.log.With("posts", len(posts)).Debug("fixture loaded")

	items := make([]ui.Renderable, 0, len(posts))
	for _, p := range posts {
		items = append(items, components.NewPostItem(p, nil).WithLogger(s.log))
	}

	fmt.Fprintln(cmd.OutOrStdout(), components.VStack(items...).WithGap(opts.gap).ViewWithContext(s.render.WithNow(time.Now())))
	return nil
}
