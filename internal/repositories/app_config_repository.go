package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
)

// AppConfigRepository is the persistence backend for the dictation
// configuration. Get seeds defaults when no row exists yet, so first run
// behaves like any later run.
type AppConfigRepository interface {
	Get(ctx context.Context) (*models.AppConfig, error)
	Save(ctx context.Context, cfg *models.AppConfig) error
	Reset(ctx context.Context) (*models.AppConfig, error)
}

type appConfigRepository struct {
	db *gorm.DB
}

func NewAppConfigRepository(db *gorm.DB) AppConfigRepository {
	return &appConfigRepository{db: db}
}

func (r *appConfigRepository) Get(ctx context.Context) (*models.AppConfig, error) {
	var cfg models.AppConfig
	if err := r.db.WithContext(ctx).First(&cfg, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultAppConfig()
			if err := r.db.WithContext(ctx).Save(defaults).Error; err != nil {
				return nil, fmt.Errorf("seed default config: %w", err)
			}
			return defaults, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *appConfigRepository) Save(ctx context.Context, cfg *models.AppConfig) error {
	if err := validate(cfg); err != nil {
		return err
	}
	// Single-row table, always ID=1
	cfg.ID = 1
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *appConfigRepository) Reset(ctx context.Context) (*models.AppConfig, error) {
	defaults := models.DefaultAppConfig()
	if err := r.db.WithContext(ctx).Save(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

// validate enforces the ranges the backend guarantees. Out-of-range values
// are tolerated in the in-memory copy until save.
func validate(cfg *models.AppConfig) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Hotkey == "" {
		return errors.New("hotkey is required")
	}
	switch cfg.RecordingMode {
	case models.RecordingModeToggle, models.RecordingModePushToTalk:
	default:
		return fmt.Errorf("unknown recording mode %q", cfg.RecordingMode)
	}
	if cfg.MaxRecordingDurationSec < models.MaxRecordingDurationFloorSec ||
		cfg.MaxRecordingDurationSec > models.MaxRecordingDurationCeilingSec {
		return fmt.Errorf("max recording duration must be %d-%d seconds",
			models.MaxRecordingDurationFloorSec, models.MaxRecordingDurationCeilingSec)
	}
	if cfg.MinRecordingDurationMS < 0 {
		return errors.New("min recording duration cannot be negative")
	}
	return nil
}
