package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	tablerender "github.com/bnema/astro-impact/internal/adapters/render/table"
	"github.com/spf13/cobra"
)

type asteroidJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DiameterMinM   float64 `json:"diameter_min_m"`
	DiameterMaxM   float64 `json:"diameter_max_m"`
	VelocityKmH    float64 `json:"velocity_km_h"`
	VelocityKmS    float64 `json:"velocity_km_s"`
	MissDistanceKm float64 `json:"miss_distance_km"`
	Hazardous      bool    `json:"hazardous"`
}

type countryJSON struct {
	Name       string  `json:"name"`
	Population int64   `json:"population"`
	AreaKm2    float64 `json:"area_km2"`
	Density    float64 `json:"density"`
}

func newAsteroidsCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "asteroids",
		Short: "Print the near-earth objects of the last week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asteroids, err := app.catalog.Asteroids(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				payload := make([]asteroidJSON, 0, len(asteroids))
				for _, a := range asteroids {
					payload = append(payload, asteroidJSON{
						ID:             string(a.ID),
						Name:           a.Name,
						DiameterMinM:   a.DiameterMinM,
						DiameterMaxM:   a.DiameterMaxM,
						VelocityKmH:    a.VelocityKmH,
						VelocityKmS:    a.VelocityKmS,
						MissDistanceKm: a.MissDistanceKm,
						Hazardous:      a.Hazardous,
					})
				}
				return writeJSON(cmd.OutOrStdout(), payload)
			}

			ds := asteroidDataset(asteroids)
			return writeFullTable(cmd.OutOrStdout(), tablerender.NewRenderer(app.currentTheme(cmd.Context())), ds.Title, ds.Headers(), ds.Cells(ds.Rows))
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	return cmd
}

func newCountriesCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Print every country with its population, area and density",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries, err := app.catalog.Countries(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				payload := make([]countryJSON, 0, len(countries))
				for _, c := range countries {
					payload = append(payload, countryJSON{
						Name:       c.Name,
						Population: c.Population,
						AreaKm2:    c.AreaKm2,
						Density:    c.Density,
					})
				}
				return writeJSON(cmd.OutOrStdout(), payload)
			}

			ds := countryDataset(countries)
			return writeFullTable(cmd.OutOrStdout(), tablerender.NewRenderer(app.currentTheme(cmd.Context())), ds.Title, ds.Headers(), ds.Cells(ds.Rows))
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	return cmd
}

func writeJSON(w io.Writer, payload any) error {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func writeFullTable(w io.Writer, renderer *tablerender.Renderer, title string, headers []string, rows [][]string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, renderer.Table(headers, rows))
	return err
}
