package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *app) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "List or change the table theme",
	}

	themeCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the available themes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				current := app.currentTheme(cmd.Context())
				for _, theme := range app.themes.Available() {
					marker := " "
					if theme == current {
						marker = "*"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", marker, theme, theme.Label())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set NAME",
			Short: "Persist the table theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := app.themes.Set(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", theme)
				return nil
			},
		},
	)

	return themeCmd
}

func pickTheme(ctx context.Context, app *app, c *console) error {
	themes := app.themes.Available()
	for i, theme := range themes {
		c.printf("%d. %s\n", i+1, theme.Label())
	}

	answer, err := c.prompter.Ask(fmt.Sprintf("\nWhich theme do you want to use? (1-%d): ", len(themes)))
	if err != nil {
		return err
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(themes) {
		c.printf("Invalid choice. Pick a number between 1 and %d.\n", len(themes))
		return nil
	}

	theme, err := app.themes.Set(ctx, string(themes[choice-1]))
	if err != nil {
		return err
	}
	c.printf("You picked the theme %s\n", theme.Label())
	return nil
}
