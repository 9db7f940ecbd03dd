package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/threadkit/internal/config"
	"github.com/alexisbeaulieu97/threadkit/internal/post"
	"github.com/alexisbeaulieu97/threadkit/internal/tui/thread"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <fixture>",
		Short: "Browse a thread fixture interactively",
		Long:  `Open the interactive thread browser. Press tab to focus the reload button, which re-reads the fixture from disk.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, args[0])
		},
	}
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, fixture string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting the browser", errNotTerminal, "Use 'threadkit render' for non-interactive output.")
	}

	s, err := newSession(cmd, rootFlags, "browse")
	if err != nil {
		return err
	}

	posts, err := config.LoadThread(fixture)
	if err != nil {
		return newCommandError("browse", fmt.Sprintf("loading fixture %q", fixture), err, "Check the fixture YAML against examples/thread.yaml.")
	}

	m := thread.New(thread.Options{
		Title:   filepath.Base(fixture),
		Posts:   posts,
		Context: s.render,
		Logger:  s.log,
		Reload: func(context.Context) ([]post.Post, error) {
			return config.LoadThread(fixture)
		},
		Navigate: func(route string, params components.NavParams) {
			s.log.WithFields(map[string]any{
				"route":      route,
				"name":       params.Name,
				"record_key": params.RecordKey,
			}).Info("navigation requested")
		},
	})

	s.log.With("posts", len(posts)).Info("launching thread browser")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
		s.log.Error(err, "thread browser failed")
		return fmt.Errorf("failed to run thread browser: %w", err)
	}
	s.log.Info("thread browser closed")

	return nil
}
