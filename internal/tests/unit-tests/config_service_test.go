package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/services"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/tests/mocks"
)

func TestConfigService_Load_Success(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})

	cfg, err := service.Load()

	assert.NoError(t, err)
	assert.Equal(t, "Ctrl+Shift+S", cfg.Hotkey)
	assert.Same(t, cfg, service.Current())
}

func TestConfigService_Load_Error_HoldsNothing(t *testing.T) {
	repo := &mocks.AppConfigRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppConfig, error) {
			return nil, errors.New("corrupt row")
		},
	}
	service := services.NewConfigService(repo)

	cfg, err := service.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Nil(t, service.Current())
}

func TestConfigService_Edit_BeforeLoad_Error(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})

	err := service.Edit("hotkey", "Ctrl+Alt+D")

	assert.Error(t, err)
}

func TestConfigService_Edit_MutatesInMemoryCopy(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})
	_, err := service.Load()
	assert.NoError(t, err)

	assert.NoError(t, service.Edit("hotkey", "Ctrl+Alt+D"))
	assert.NoError(t, service.Edit("recording_mode", "push_to_talk"))
	assert.NoError(t, service.Edit("enhance_enabled", false))
	// Numbers arrive from the frontend as float64.
	assert.NoError(t, service.Edit("max_recording_duration_sec", float64(90)))
	assert.NoError(t, service.Edit("vad_silence_threshold_sec", 2.5))

	cur := service.Current()
	assert.Equal(t, "Ctrl+Alt+D", cur.Hotkey)
	assert.Equal(t, models.RecordingModePushToTalk, cur.RecordingMode)
	assert.False(t, cur.EnhanceEnabled)
	assert.Equal(t, 90, cur.MaxRecordingDurationSec)
	assert.Equal(t, 2.5, cur.VADSilenceThresholdSec)
}

func TestConfigService_Edit_UnknownField(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})
	_, err := service.Load()
	assert.NoError(t, err)

	err = service.Edit("no_such_field", "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_field")
}

func TestConfigService_Edit_WrongType(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})
	_, err := service.Load()
	assert.NoError(t, err)

	assert.Error(t, service.Edit("hotkey", 42))
	assert.Error(t, service.Edit("enhance_enabled", "yes"))
	assert.Error(t, service.Edit("retry_count", "three"))
}

func TestConfigService_Edit_NeverPersists(t *testing.T) {
	saveCalls := 0
	repo := &mocks.AppConfigRepositoryMock{
		SaveFunc: func(ctx context.Context, cfg *models.AppConfig) error {
			saveCalls++
			return nil
		},
	}
	service := services.NewConfigService(repo)
	_, err := service.Load()
	assert.NoError(t, err)

	assert.NoError(t, service.Edit("hotkey", "Ctrl+Alt+D"))
	assert.NoError(t, service.Edit("language", "en"))
	assert.NoError(t, service.Edit("retry_count", float64(5)))

	assert.Equal(t, 0, saveCalls, "edits must never trigger a backend save")
}

func TestConfigService_Edit_ToleratesOutOfRangeUntilSave(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})
	_, err := service.Load()
	assert.NoError(t, err)

	// Out of the 10-120 range the backend enforces; accepted client-side.
	assert.NoError(t, service.Edit("max_recording_duration_sec", float64(500)))
	assert.Equal(t, 500, service.Current().MaxRecordingDurationSec)
}

func TestConfigService_Reset_ReplacesWholesale(t *testing.T) {
	service := services.NewConfigService(&mocks.AppConfigRepositoryMock{})
	_, err := service.Load()
	assert.NoError(t, err)

	assert.NoError(t, service.Edit("language", "ru"))
	assert.NoError(t, service.Edit("debug_save_audio", true))

	fresh, err := service.Reset()

	assert.NoError(t, err)
	assert.Equal(t, "auto", fresh.Language)
	assert.False(t, fresh.DebugSaveAudio)
	assert.Same(t, fresh, service.Current())
}

func TestDefaultAppConfig_Values(t *testing.T) {
	cfg := models.DefaultAppConfig()

	assert.Equal(t, 1, cfg.ConfigVersion)
	assert.Equal(t, "Ctrl+Shift+S", cfg.Hotkey)
	assert.Equal(t, models.RecordingModeToggle, cfg.RecordingMode)
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, "gpt-4o-mini-transcribe", cfg.STTModel)
	assert.Equal(t, "gpt-5-mini", cfg.EnhanceModel)
	assert.True(t, cfg.EnhanceEnabled)
	assert.True(t, cfg.VADAutoStop)
	assert.Equal(t, 5.0, cfg.VADSilenceThresholdSec)
	assert.True(t, cfg.VADTrimSilence)
	assert.Equal(t, 60, cfg.MaxRecordingDurationSec)
	assert.Equal(t, 300, cfg.MinRecordingDurationMS)
	assert.True(t, cfg.ShowNotifications)
	assert.Equal(t, "https://api.openai.com", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.ConnectTimeoutSec)
	assert.Equal(t, 30, cfg.ReadTimeoutSTTSec)
	assert.Equal(t, 15, cfg.ReadTimeoutEnhanceSec)
	assert.Equal(t, 3, cfg.RetryCount)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DebugSaveAudio)
}
