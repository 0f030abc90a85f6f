package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/pkg/logger"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

// SettingsRepository stores the singleton academy settings record
type SettingsRepository struct {
	store kv.Store
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(store kv.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the stored settings, or the defaults when none are stored yet.
// A corrupted payload fails closed to the defaults and is logged.
func (r *SettingsRepository) Get(ctx context.Context) (models.AcademySettings, error) {
	data, err := r.store.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return models.DefaultSettings(), nil
		}
		return models.AcademySettings{}, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	var settings models.AcademySettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Error().Err(err).Str("key", settingsKey).Msg("Corrupted settings payload, falling back to defaults")
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// Update replaces the stored settings record wholesale
func (r *SettingsRepository) Update(ctx context.Context, settings models.AcademySettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := r.store.Put(ctx, settingsKey, data); err != nil {
		if errors.Is(err, kv.ErrStoreFull) {
			return fmt.Errorf("%w: %v", apperrors.ErrStorageFull, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
