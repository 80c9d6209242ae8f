package mocks

import (
	"context"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
)

type AppConfigRepositoryMock struct {
	GetFunc   func(ctx context.Context) (*models.AppConfig, error)
	SaveFunc  func(ctx context.Context, cfg *models.AppConfig) error
	ResetFunc func(ctx context.Context) (*models.AppConfig, error)
}

func (m *AppConfigRepositoryMock) Get(ctx context.Context) (*models.AppConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return models.DefaultAppConfig(), nil
}

func (m *AppConfigRepositoryMock) Save(ctx context.Context, cfg *models.AppConfig) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cfg)
	}
	return nil
}

func (m *AppConfigRepositoryMock) Reset(ctx context.Context) (*models.AppConfig, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx)
	}
	return models.DefaultAppConfig(), nil
}
