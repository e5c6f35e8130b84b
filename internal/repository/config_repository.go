package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/pkg/recordstore"
)

// ConfigRepository owns the portal config singleton.
type ConfigRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

// NewConfigRepository constructs a ConfigRepository.
func NewConfigRepository(store recordstore.Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Get returns the portal config, falling back to the seed defaults when the
// collection has never been written.
func (r *ConfigRepository) Get(ctx context.Context) (models.PortalConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Update runs mutate against the config inside one locked cycle.
func (r *ConfigRepository) Update(ctx context.Context, mutate func(*models.PortalConfig) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := mutate(&cfg); err != nil {
		return err
	}
	return r.store.Write(ctx, collectionConfig, cfg)
}

// EnsureSeeded writes the default config document if none exists yet.
func (r *ConfigRepository) EnsureSeeded(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cfg models.PortalConfig
	err := r.store.Read(ctx, collectionConfig, &cfg)
	if err == nil {
		return nil
	}
	if !errors.Is(err, recordstore.ErrNoRecord) {
		return err
	}
	return r.store.Write(ctx, collectionConfig, models.DefaultPortalConfig())
}

func (r *ConfigRepository) load(ctx context.Context) (models.PortalConfig, error) {
	var cfg models.PortalConfig
	if err := r.store.Read(ctx, collectionConfig, &cfg); err != nil {
		if errors.Is(err, recordstore.ErrNoRecord) {
			return models.DefaultPortalConfig(), nil
		}
		return models.PortalConfig{}, err
	}
	if cfg.MaxUnits == nil {
		cfg.MaxUnits = map[string]int{}
	}
	if cfg.Signatures == nil {
		cfg.Signatures = map[string]models.Signature{}
	}
	return cfg, nil
}
