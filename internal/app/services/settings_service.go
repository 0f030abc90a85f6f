package services

import (
	"context"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/repositories"
)

// SettingsService handles the singleton academy settings
type SettingsService interface {
	Get(ctx context.Context) (models.AcademySettings, error)
	Update(ctx context.Context, settings models.AcademySettings) error
}

type settingsServiceImpl struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (models.AcademySettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsServiceImpl) Update(ctx context.Context, settings models.AcademySettings) error {
	return s.settingsRepo.Update(ctx, settings)
}
