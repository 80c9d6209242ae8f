package models

// RecordingMode selects how the global hotkey drives a recording session.
type RecordingMode string

const (
	RecordingModeToggle     RecordingMode = "toggle"
	RecordingModePushToTalk RecordingMode = "push_to_talk"
)

// Bounds enforced on save for the recording-duration fields.
const (
	MaxRecordingDurationFloorSec   = 10
	MaxRecordingDurationCeilingSec = 120
)

// AppConfig is the full set of user-editable dictation settings.
// Single-row table (ID=1), replaced wholesale on load/reset. The API key
// lives in the OS keychain, never here.
type AppConfig struct {
	ID            uint          `json:"-" gorm:"primaryKey"`
	ConfigVersion int           `json:"config_version" gorm:"not null;default:1"`
	Hotkey        string        `json:"hotkey" gorm:"not null"`
	RecordingMode RecordingMode `json:"recording_mode" gorm:"not null;default:toggle"`

	// Recognition language: "auto", "ru", "en"
	Language     string `json:"language" gorm:"not null"`
	STTModel     string `json:"stt_model" gorm:"not null"`
	EnhanceModel string `json:"enhance_model" gorm:"not null"`

	EnhanceEnabled bool `json:"enhance_enabled"`

	VADAutoStop            bool    `json:"vad_auto_stop"`
	VADSilenceThresholdSec float64 `json:"vad_silence_threshold_sec"`
	VADTrimSilence         bool    `json:"vad_trim_silence"`

	MaxRecordingDurationSec int `json:"max_recording_duration_sec"`
	MinRecordingDurationMS  int `json:"min_recording_duration_ms"`

	ShowNotifications bool `json:"show_notifications"`

	APIBaseURL            string `json:"api_base_url" gorm:"not null"`
	ConnectTimeoutSec     int    `json:"connect_timeout_sec"`
	ReadTimeoutSTTSec     int    `json:"read_timeout_stt_sec"`
	ReadTimeoutEnhanceSec int    `json:"read_timeout_enhance_sec"`
	RetryCount            int    `json:"retry_count"`

	// "trace", "debug", "info", "warn", "error"
	LogLevel       string `json:"log_level" gorm:"not null;default:info"`
	DebugSaveAudio bool   `json:"debug_save_audio"`
}

// DefaultAppConfig returns the canonical defaults used on first run
// and on reset.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ID:                      1,
		ConfigVersion:           1,
		Hotkey:                  "Ctrl+Shift+S",
		RecordingMode:           RecordingModeToggle,
		Language:                "auto",
		STTModel:                "gpt-4o-mini-transcribe",
		EnhanceModel:            "gpt-5-mini",
		EnhanceEnabled:          true,
		VADAutoStop:             true,
		VADSilenceThresholdSec:  5.0,
		VADTrimSilence:          true,
		MaxRecordingDurationSec: 60,
		MinRecordingDurationMS:  300,
		ShowNotifications:       true,
		APIBaseURL:              "https://api.openai.com",
		ConnectTimeoutSec:       5,
		ReadTimeoutSTTSec:       30,
		ReadTimeoutEnhanceSec:   15,
		RetryCount:              3,
		LogLevel:                "info",
		DebugSaveAudio:          false,
	}
}

// Clone returns an independent copy so callers can diff against the
// in-memory original without aliasing it.
func (c *AppConfig) Clone() *AppConfig {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
