package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/astro-impact/internal/adapters/prompt"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/spf13/cobra"
)

// console bundles the interactive streams of one command invocation.
type console struct {
	out      io.Writer
	errOut   io.Writer
	prompter *prompt.Prompter
}

func newConsole(cmd *cobra.Command) *console {
	return &console{
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		prompter: prompt.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
}

func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// reportError prints a recoverable failure so the menu can continue.
func (c *console) reportError(err error) {
	switch {
	case domain.IsInvariantViolation(err):
		_, _ = fmt.Fprintf(c.errOut, "Error: reference data defect: %v\n", err)
	case errors.Is(err, domain.ErrProviderUnauthorized):
		_, _ = fmt.Fprintf(c.errOut, "Error: %v\nSet API_KEY to a NASA API key (environment or .env file).\n", err)
	default:
		_, _ = fmt.Fprintf(c.errOut, "Error: %v\n", err)
	}
}

func (a *app) currentTheme(ctx context.Context) domain.Theme {
	theme, err := a.themes.Current(ctx)
	if err != nil {
		a.logger.Warn("theme unavailable, using default", slog.Any("error", err))
		return domain.ThemeDyslexiaFriendly
	}
	return theme
}
