package events

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a status message for the frontend.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Event names the settings frontend subscribes to.
const (
	SettingsStatus        = "settings:status"
	SettingsStatusCleared = "settings:status:cleared"
)

// StatusEvent is the payload shown in the settings status area.
type StatusEvent struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStatus(severity Severity, message string) StatusEvent {
	return StatusEvent{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		Timestamp: time.Now(),
	}
}
