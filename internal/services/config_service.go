package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/repositories"
)

// ConfigService owns the single in-memory copy of the dictation
// configuration. Edits mutate it field by field; load and reset replace it
// wholesale. Nothing here persists - saving is the settings service's job.
type ConfigService interface {
	Startup(ctx context.Context)
	Load() (*models.AppConfig, error)
	Current() *models.AppConfig
	Edit(field string, value any) error
	Reset() (*models.AppConfig, error)
}

type configService struct {
	repo    repositories.AppConfigRepository
	context context.Context

	current *models.AppConfig
}

func NewConfigService(repo repositories.AppConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *configService) Load() (*models.AppConfig, error) {
	cfg, err := s.repo.Get(context.Background())
	if err != nil {
		// Hold nothing so the UI renders the failure state, not a stale form.
		s.current = nil
		return nil, err
	}
	s.current = cfg
	return s.current, nil
}

func (s *configService) Current() *models.AppConfig {
	return s.current
}

// Edit applies one field change to the in-memory copy. Values arrive from
// the frontend as JSON types (float64 for every number). Out-of-range
// values are tolerated here; the backend rejects them on save.
func (s *configService) Edit(field string, value any) error {
	if s.current == nil {
		return errors.New("no configuration loaded")
	}

	switch field {
	case "hotkey":
		return setString(&s.current.Hotkey, field, value)
	case "recording_mode":
		str, ok := value.(string)
		if !ok {
			return typeError(field, "string", value)
		}
		s.current.RecordingMode = models.RecordingMode(str)
		return nil
	case "language":
		return setString(&s.current.Language, field, value)
	case "stt_model":
		return setString(&s.current.STTModel, field, value)
	case "enhance_model":
		return setString(&s.current.EnhanceModel, field, value)
	case "enhance_enabled":
		return setBool(&s.current.EnhanceEnabled, field, value)
	case "vad_auto_stop":
		return setBool(&s.current.VADAutoStop, field, value)
	case "vad_silence_threshold_sec":
		return setFloat(&s.current.VADSilenceThresholdSec, field, value)
	case "vad_trim_silence":
		return setBool(&s.current.VADTrimSilence, field, value)
	case "max_recording_duration_sec":
		return setInt(&s.current.MaxRecordingDurationSec, field, value)
	case "min_recording_duration_ms":
		return setInt(&s.current.MinRecordingDurationMS, field, value)
	case "show_notifications":
		return setBool(&s.current.ShowNotifications, field, value)
	case "api_base_url":
		return setString(&s.current.APIBaseURL, field, value)
	case "connect_timeout_sec":
		return setInt(&s.current.ConnectTimeoutSec, field, value)
	case "read_timeout_stt_sec":
		return setInt(&s.current.ReadTimeoutSTTSec, field, value)
	case "read_timeout_enhance_sec":
		return setInt(&s.current.ReadTimeoutEnhanceSec, field, value)
	case "retry_count":
		return setInt(&s.current.RetryCount, field, value)
	case "log_level":
		return setString(&s.current.LogLevel, field, value)
	case "debug_save_audio":
		return setBool(&s.current.DebugSaveAudio, field, value)
	default:
		return fmt.Errorf("unknown config field %q", field)
	}
}

func (s *configService) Reset() (*models.AppConfig, error) {
	defaults, err := s.repo.Reset(context.Background())
	if err != nil {
		return nil, err
	}
	s.current = defaults
	return s.current, nil
}

func setString(dst *string, field string, value any) error {
	str, ok := value.(string)
	if !ok {
		return typeError(field, "string", value)
	}
	*dst = str
	return nil
}

func setBool(dst *bool, field string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return typeError(field, "bool", value)
	}
	*dst = b
	return nil
}

func setFloat(dst *float64, field string, value any) error {
	switch n := value.(type) {
	case float64:
		*dst = n
	case int:
		*dst = float64(n)
	default:
		return typeError(field, "number", value)
	}
	return nil
}

func setInt(dst *int, field string, value any) error {
	switch n := value.(type) {
	case float64:
		*dst = int(n)
	case int:
		*dst = n
	default:
		return typeError(field, "number", value)
	}
	return nil
}

func typeError(field, want string, value any) error {
	return fmt.Errorf("field %q expects %s, got %T", field, want, value)
}
