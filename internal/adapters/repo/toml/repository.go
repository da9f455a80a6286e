// Package toml persists user settings in a small TOML document.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SettingsPathKey = "settings.path"

	settingsFileMode  = 0o600
	settingsDirMode   = 0o700
	settingsConfigDir = "astro-impact"
	settingsFile      = "settings.toml"
	tempFilePattern   = ".settings-*.toml.tmp"
)

type Repository struct {
	settingsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

// NewRepository resolves the settings file from settings.path, defaulting to
// settings.toml in the user config directory.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(SettingsPathKey) {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		cfg.SetDefault(SettingsPathKey, filepath.Join(configDir, settingsConfigDir, settingsFile))
	}

	settingsPath := cfg.GetString(SettingsPathKey)
	if settingsPath == "" {
		return nil, errors.New("settings path is empty")
	}
	absPath, err := filepath.Abs(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve settings path: %w", err)
	}
	settingsPath = filepath.Clean(absPath)

	return &Repository{settingsPath: settingsPath, mu: lockForPath(settingsPath)}, nil
}

func (r *Repository) Path() string {
	return r.settingsPath
}

// Theme returns the stored theme, or an empty theme when none was saved.
func (r *Repository) Theme(ctx context.Context) (domain.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}
	if file.Display.Theme == "" {
		return "", nil
	}

	return domain.ParseTheme(file.Display.Theme)
}

func (r *Repository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.Display.Theme = string(theme)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read settings file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode settings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.settingsPath), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.settingsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.settingsPath); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false
	return nil
}
