package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/astro-impact/internal/adapters/render/impact"
	tablerender "github.com/bnema/astro-impact/internal/adapters/render/table"
	"github.com/bnema/astro-impact/internal/browser"
	"github.com/bnema/astro-impact/internal/domain"
)

func browseAsteroids(ctx context.Context, app *app, c *console) error {
	asteroids, err := app.catalog.Asteroids(ctx)
	if err != nil {
		return err
	}

	theme := app.currentTheme(ctx)
	b, err := browser.New(browser.Config[domain.Asteroid]{
		Dataset:  asteroidDataset(asteroids),
		Prompter: c.prompter,
		Renderer: tablerender.NewRenderer(theme),
		Output:   c.out,
		Select: func(_ context.Context, rows []domain.Asteroid) error {
			return chooseAsteroid(app, c, rows, theme)
		},
	})
	if err != nil {
		return err
	}

	_, err = b.Run(ctx)
	return err
}

func chooseAsteroid(app *app, c *console, rows []domain.Asteroid, theme domain.Theme) error {
	for {
		answer, err := c.prompter.Ask("Enter the asteroid ID: ")
		if err != nil {
			return err
		}

		asteroid, err := domain.FindAsteroid(rows, domain.AsteroidID(answer))
		if errors.Is(err, domain.ErrAsteroidNotFound) {
			c.println("No asteroid found with that ID. Try again.")
			continue
		}
		if err != nil {
			return err
		}

		app.session.SetAsteroid(asteroid)
		c.println(impact.AsteroidSummary(asteroid, theme))
		return nil
	}
}

func browseCountries(ctx context.Context, app *app, c *console) error {
	countries, err := app.catalog.Countries(ctx)
	if err != nil {
		return err
	}

	theme := app.currentTheme(ctx)
	b, err := browser.New(browser.Config[domain.Country]{
		Dataset:  countryDataset(countries),
		Prompter: c.prompter,
		Renderer: tablerender.NewRenderer(theme),
		Output:   c.out,
		Select: func(_ context.Context, rows []domain.Country) error {
			return chooseCountry(app, c, rows, theme)
		},
	})
	if err != nil {
		return err
	}

	_, err = b.Run(ctx)
	return err
}

func chooseCountry(app *app, c *console, rows []domain.Country, theme domain.Theme) error {
	c.println(impact.CountryDataNotice)
	for {
		answer, err := c.prompter.Ask("Enter the English name of the country (e.g. Netherlands): ")
		if err != nil {
			return err
		}

		country, err := domain.FindCountry(rows, answer)
		if errors.Is(err, domain.ErrCountryNotFound) {
			c.println(fmt.Sprintf("'%s' is not in the list of countries. Try again.", answer))
			continue
		}
		if err != nil {
			return err
		}

		app.session.SetCountry(country)
		c.println(impact.CountrySummary(country, theme))
		return nil
	}
}
