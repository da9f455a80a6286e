package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCacheCmd(app *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or refresh the near-earth object cache",
	}

	cacheCmd.AddCommand(newCacheStatusCmd(app), newCacheRefreshCmd(app))
	return cacheCmd
}

func newCacheStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the cache lives and whether it is still fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.cache.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "path: %s\n", app.cachePath)
			if !status.Present {
				_, _ = fmt.Fprintln(out, "state: absent")
				return nil
			}

			state := "stale"
			if status.Fresh {
				state = "fresh"
			}
			_, _ = fmt.Fprintf(out, "state: %s\n", state)
			_, _ = fmt.Fprintf(out, "generated: %s (%s)\n",
				status.GeneratedAt.Format(time.DateTime),
				humanize.RelTime(status.GeneratedAt, app.clock.Now(), "ago", "from now"),
			)
			_, _ = fmt.Fprintf(out, "objects: %d\n", status.Objects)
			return nil
		},
	}
}

func newCacheRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the last week of near-earth objects and rewrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var envelope domain.Envelope
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching near-earth objects...", func(ctx context.Context) error {
				var err error
				envelope, err = app.cache.Refresh(ctx)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cached %d objects (timestamp %s)\n",
				len(envelope.Objects), domain.FormatTimestamp(envelope.GeneratedAt))
			return nil
		},
	}
}
