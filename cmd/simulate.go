package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/astro-impact/internal/adapters/render/impact"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newSimulateCmd(app *app) *cobra.Command {
	var asteroidID string
	var countryName string
	var random bool
	var output string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate an asteroid hitting a country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output = strings.ToLower(strings.TrimSpace(output))
			switch output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unsupported output %q (use text, json or yaml)", output)
			}
			if !random && (asteroidID == "" || countryName == "") {
				return errors.New("--asteroid and --country are required unless --random is set")
			}

			ctx := cmd.Context()
			session := domain.NewSession()
			if asteroidID != "" {
				asteroid, err := app.catalog.Asteroid(ctx, domain.AsteroidID(asteroidID))
				if err != nil {
					return err
				}
				session.SetAsteroid(asteroid)
			}
			if countryName != "" {
				country, err := app.catalog.Country(ctx, countryName)
				if err != nil {
					return err
				}
				session.SetCountry(country)
			}

			var simErr error
			present := func(result domain.ImpactResult, err error) error {
				simErr = err
				return writeResult(ctx, cmd.OutOrStdout(), app, output, result, err)
			}

			if err := app.simulation.RunRandom(ctx, session, present); err != nil {
				return err
			}
			if simErr != nil {
				return fmt.Errorf("simulate: %w", simErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asteroidID, "asteroid", "", "asteroid ID from the object feed")
	cmd.Flags().StringVar(&countryName, "country", "", "English country name")
	cmd.Flags().BoolVar(&random, "random", false, "pick a random asteroid and/or country for whatever is not given")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	return cmd
}

func writeResult(ctx context.Context, w io.Writer, app *app, output string, result domain.ImpactResult, simErr error) error {
	switch output {
	case outputJSON:
		payload, err := json.MarshalIndent(impact.NewReport(result, simErr), "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(payload))
		return err
	case outputYAML:
		payload, err := yaml.Marshal(impact.NewReport(result, simErr))
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = w.Write(payload)
		return err
	default:
		rendered, err := app.impactRenderer(result, impact.RenderOptions{Theme: app.currentTheme(ctx), SimErr: simErr})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, rendered)
		return err
	}
}

// simulateInteractive fills the missing selection, at random or through a table, then
// runs the impact. The session is cleared once the report is shown.
func simulateInteractive(ctx context.Context, app *app, c *console) error {
	for !app.session.Ready() {
		if _, ok := app.session.Asteroid(); !ok {
			c.println("You have not selected an asteroid yet.")
			answer, err := c.prompter.Ask("Do you want to select a random asteroid? (y/n): ")
			if err != nil {
				return err
			}

			switch strings.ToLower(answer) {
			case "y":
				asteroid, err := app.catalog.RandomAsteroid(ctx)
				if err != nil {
					return err
				}
				app.session.SetAsteroid(asteroid)
				c.printf("Selected asteroid: %s\n\n", asteroid.Name)
			case "n":
				if err := browseAsteroids(ctx, app, c); err != nil {
					return err
				}
				continue
			default:
				return nil
			}
		}

		if _, ok := app.session.Country(); !ok {
			c.println("You have not selected a country yet.")
			answer, err := c.prompter.Ask("Do you want to select a random country? (y/n): ")
			if err != nil {
				return err
			}

			switch strings.ToLower(answer) {
			case "y":
				country, err := app.catalog.RandomCountry(ctx)
				if err != nil {
					return err
				}
				app.session.SetCountry(country)
				c.printf("Selected country: %s\n\n", country.Name)
			case "n":
				if err := browseCountries(ctx, app, c); err != nil {
					return err
				}
			default:
				return nil
			}
		}
	}

	return app.simulation.Run(app.session, func(result domain.ImpactResult, simErr error) error {
		return writeResult(ctx, c.out, app, outputText, result, simErr)
	})
}
