package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/astro-impact/internal/adapters/httpclient"
	"github.com/bnema/astro-impact/internal/adapters/neows"
	"github.com/bnema/astro-impact/internal/adapters/render/impact"
	"github.com/bnema/astro-impact/internal/adapters/repo/jsoncache"
	tomlrepo "github.com/bnema/astro-impact/internal/adapters/repo/toml"
	"github.com/bnema/astro-impact/internal/adapters/restcountries"
	"github.com/bnema/astro-impact/internal/application"
	"github.com/bnema/astro-impact/internal/config"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/jonboulle/clockwork"
)

type app struct {
	cfg            *config.Config
	logger         *slog.Logger
	clock          clockwork.Clock
	cache          *application.CacheService
	catalog        *application.CatalogService
	simulation     *application.SimulationService
	themes         *application.ThemeService
	session        *domain.Session
	cachePath      string
	impactRenderer func(domain.ImpactResult, impact.RenderOptions) (string, error)
	wired          bool
}

type wireOptions struct {
	ConfigFile string
	LogOutput  io.Writer
}

func (a *app) wire(opts wireOptions) error {
	if a.wired {
		return nil
	}

	cfg, err := config.Load(config.Options{ConfigFile: opts.ConfigFile})
	if err != nil {
		return err
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	envelopes, err := jsoncache.NewRepository(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("wire object cache: %w", err)
	}

	settings, err := tomlrepo.NewRepository(cfg.Viper())
	if err != nil {
		return fmt.Errorf("wire settings repository: %w", err)
	}

	httpOpts := []httpclient.Option{httpclient.WithTimeout(cfg.HTTP.Timeout)}
	feed := neows.NewClient(cfg.NeoWs.BaseURL, cfg.APIKey, httpOpts...)
	countries := restcountries.NewClient(cfg.Countries.BaseURL, httpOpts...)

	if a.clock == nil {
		a.clock = clockwork.NewRealClock()
	}

	cache := application.NewCacheService(envelopes, feed, a.clock, logger,
		application.WithRefreshAttempts(cfg.Cache.RefreshAttempts),
	)
	catalog := application.NewCatalogService(cache, countries)

	a.cfg = cfg
	a.logger = logger
	a.cache = cache
	a.catalog = catalog
	a.simulation = application.NewSimulationService(catalog, domain.RichterScale, logger)
	a.themes = application.NewThemeService(settings)
	a.session = domain.NewSession()
	a.cachePath = envelopes.Path()
	if a.impactRenderer == nil {
		a.impactRenderer = impact.Render
	}
	a.wired = true

	return nil
}
