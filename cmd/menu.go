package cmd

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	menuChoicePrompt = "\nMake a choice (1-5): "
	menuPausePrompt  = "\nPress Enter to return to the main menu..."
	menuGoodbye      = "Thanks for using ASTRO-impact! See you next time."
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))

func printBanner(c *console) {
	c.println(bannerStyle.Render("ASTRO-impact"))
	c.println("Welcome to ASTRO-impact: simulate the impact of an asteroid!")
	c.println()
	c.println("What do you want to do?")
	c.println("1. View the list of asteroids")
	c.println("2. View the list of countries")
	c.println("3. Simulate an impact")
	c.println("4. Pick another table theme")
	c.println("5. Exit the program")
}

func runMenu(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()
	c := newConsole(cmd)

	warmCache(ctx, cmd, app, c)

	first := true
	for {
		if !first {
			if err := c.prompter.Pause(menuPausePrompt); err != nil {
				return err
			}
		}
		first = false

		printBanner(c)

		answer, err := c.prompter.Ask(menuChoicePrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		c.println()

		choice, err := strconv.Atoi(answer)
		if err != nil {
			c.println("Only whole numbers can be entered here.")
			continue
		}

		var actionErr error
		switch choice {
		case 1:
			actionErr = browseAsteroids(ctx, app, c)
		case 2:
			actionErr = browseCountries(ctx, app, c)
		case 3:
			actionErr = simulateInteractive(ctx, app, c)
		case 4:
			actionErr = pickTheme(ctx, app, c)
		case 5:
			c.println(menuGoodbye)
			return nil
		default:
			c.println("Invalid choice. Pick a number between 1 and 5.")
			continue
		}

		if errors.Is(actionErr, io.EOF) {
			return nil
		}
		if actionErr != nil {
			c.reportError(actionErr)
		}
	}
}

// warmCache makes sure the object cache is fresh before the first menu is shown. A
// failure is reported and the menu still opens.
func warmCache(ctx context.Context, cmd *cobra.Command, app *app, c *console) {
	status, err := app.cache.Status(ctx)
	if err != nil {
		c.reportError(err)
		return
	}
	if status.Present && status.Fresh {
		return
	}

	err = runFetchSpinner(ctx, cmd.ErrOrStderr(), "Fetching near-earth objects...", func(ctx context.Context) error {
		_, err := app.cache.EnsureFresh(ctx)
		return err
	})
	if err != nil {
		c.reportError(err)
	}
}
