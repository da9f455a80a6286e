// Package config loads runtime settings from .env, the environment and an optional
// config.toml, in that order of precedence after explicit overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ASTRO"
	AppDir    = "astro-impact"

	KeyAPIKey           = "api_key"
	KeyNeoWsBaseURL     = "neows.base_url"
	KeyCountriesBaseURL = "countries.base_url"
	KeyCachePath        = "cache.path"
	KeyLookbackDays     = "cache.lookback_days"
	KeyRefreshAttempts  = "cache.refresh_attempts"
	KeyHTTPTimeout      = "http.timeout"
	KeyLogLevel         = "log.level"
	KeySettingsPath     = "settings.path"

	DefaultNeoWsBaseURL     = "https://api.nasa.gov/neo/rest/v1"
	DefaultCountriesBaseURL = "https://restcountries.com/v3.1"
	DefaultLookbackDays     = 7
	DefaultRefreshAttempts  = 1
	DefaultLogLevel         = "warn"

	cacheFile    = "near_earth_objects.json"
	settingsFile = "settings.toml"
	configName   = "config"
	configType   = "toml"
)

type Config struct {
	APIKey    string         `mapstructure:"api_key"`
	NeoWs     ProviderConfig `mapstructure:"neows"`
	Countries ProviderConfig `mapstructure:"countries"`
	Cache     CacheConfig    `mapstructure:"cache"`
	HTTP      HTTPConfig     `mapstructure:"http"`
	Log       LogConfig      `mapstructure:"log"`
	Settings  SettingsConfig `mapstructure:"settings"`

	v *viper.Viper
}

type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type CacheConfig struct {
	Path            string `mapstructure:"path" validate:"required"`
	LookbackDays    int    `mapstructure:"lookback_days" validate:"eq=7"`
	RefreshAttempts int    `mapstructure:"refresh_attempts" validate:"min=1,max=5"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type SettingsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type Options struct {
	// ConfigFile overrides the config.toml lookup. A missing explicit file is an error.
	ConfigFile string
	// DotEnv lists .env files to load; nil means ".env" in the working directory.
	DotEnv []string
	// Viper receives the loaded values; a new instance is used when nil.
	Viper *viper.Viper
}

func Load(opts Options) (*Config, error) {
	// A missing .env is normal; real environment variables are never overridden.
	_ = godotenv.Load(opts.DotEnv...)

	v := opts.Viper
	if v == nil {
		v = viper.New()
	}

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIKey, EnvPrefix+"_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.v = v

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Viper returns the instance the config was read from.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func setDefaults(v *viper.Viper) error {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return fmt.Errorf("resolve cache directory: %w", err)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}

	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyNeoWsBaseURL, DefaultNeoWsBaseURL)
	v.SetDefault(KeyCountriesBaseURL, DefaultCountriesBaseURL)
	v.SetDefault(KeyCachePath, filepath.Join(cacheDir, AppDir, cacheFile))
	v.SetDefault(KeyLookbackDays, DefaultLookbackDays)
	v.SetDefault(KeyRefreshAttempts, DefaultRefreshAttempts)
	v.SetDefault(KeyHTTPTimeout, time.Duration(0))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeySettingsPath, filepath.Join(configDir, AppDir, settingsFile))

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(configDir, AppDir))

	return nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", explicit, err)
		}
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}
