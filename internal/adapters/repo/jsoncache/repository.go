// Package jsoncache stores the object feed envelope as a single JSON document.
package jsoncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/astro-impact/internal/adapters/neows"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
)

const (
	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	tempFilePattern = ".near-earth-objects-*.json.tmp"
)

type Repository struct {
	path     string
	location *time.Location
	mu       *sync.RWMutex
}

type Option func(*Repository)

// WithLocation sets the zone the zoneless cache timestamp is read and written in.
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.location = loc
		}
	}
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EnvelopeRepository = (*Repository)(nil)

func NewRepository(path string, opts ...Option) (*Repository, error) {
	if path == "" {
		return nil, errors.New("cache path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve cache path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	r := &Repository{path: absPath, location: time.Local, mu: lockForPath(absPath)}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load(ctx context.Context) (domain.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return domain.Envelope{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Envelope{}, domain.ErrCacheMissing
		}
		return domain.Envelope{}, fmt.Errorf("read cache file: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: decode cache file: %v", domain.ErrCacheFormat, err)
	}

	generatedAt, err := domain.ParseTimestamp(file.Timestamp, r.location)
	if err != nil {
		return domain.Envelope{}, err
	}

	objects, err := neows.ObjectsToDomain(file.Objects)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrCacheFormat, err)
	}

	return domain.Envelope{GeneratedAt: generatedAt, Objects: objects}, nil
}

// Save replaces the cache file atomically.
func (r *Repository) Save(ctx context.Context, envelope domain.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := fileSchema{
		Objects:   neows.ObjectsFromDomain(envelope.Objects),
		Timestamp: domain.FormatTimestamp(envelope.GeneratedAt.In(r.location)),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(file)
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
	if err := os.MkdirAll(filepath.Dir(r.path), cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
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
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	cleanup = false
	return nil
}
