package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/threadkit/internal/config"
	"github.com/alexisbeaulieu97/threadkit/internal/logger"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

// session bundles what every command derives from flags and config.
type session struct {
	cfg    *config.Config
	log    *logger.Logger
	render components.RenderContext
}

func newSession(cmd *cobra.Command, flags *rootFlags, operation string) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the file passed with --config.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}
	log = log.With("command", operation)

	themeName := cfg.Theme
	if flags.theme != "" {
		themeName = flags.theme
	}
	theme, ok := components.ThemeByName(themeName)
	if !ok {
		return nil, newCommandError(operation, "selecting theme", fmt.Errorf("unknown theme %q", themeName), fmt.Sprintf("Available themes: %v.", components.ThemeNames()))
	}

	render := components.DefaultContext().
		WithTheme(theme).
		WithFormat(cfg.Formatter())
	if width := outputWidth(cmd, cfg.Width); width > 0 {
		render = render.WithConstraints(components.WithMaxWidth(width))
	}

	return &session{cfg: cfg, log: log, render: render}, nil
}

// outputWidth prefers the configured width, then the terminal width.
func outputWidth(cmd *cobra.Command, configured int) int {
	if configured > 0 {
		return configured
	}
	if file, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			return width
		}
	}
	return 0
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
