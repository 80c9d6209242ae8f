package services

import (
	"context"
	"sync"
	"time"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/events"
)

const defaultStatusExpiry = 3 * time.Second

// StatusService shows at most one ephemeral status message at a time.
// A newer Show replaces the current message and restarts the expiry timer.
type StatusService struct {
	context context.Context

	mu      sync.Mutex
	current *events.StatusEvent
	timer   *time.Timer
	expiry  time.Duration
}

func NewStatusService() *StatusService {
	return &StatusService{expiry: defaultStatusExpiry}
}

func (s *StatusService) Startup(ctx context.Context) {
	s.context = ctx
}

// SetExpiry overrides the auto-expiry interval. Used by tests.
func (s *StatusService) SetExpiry(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiry = d
}

// Show replaces any visible status and reschedules its expiry.
// Last write wins on both content and timer.
func (s *StatusService) Show(severity events.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	evt := events.NewStatus(severity, message)
	s.current = &evt
	events.Emit(s.context, events.SettingsStatus, evt)

	id := evt.ID
	s.timer = time.AfterFunc(s.expiry, func() { s.expire(id) })
}

// Current returns the visible status, or nil after expiry.
func (s *StatusService) Current() *events.StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *StatusService) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer Show superseded this timer; its own timer is pending.
	if s.current == nil || s.current.ID != id {
		return
	}
	evt := *s.current
	s.current = nil
	s.timer = nil
	events.Emit(s.context, events.SettingsStatusCleared, evt)
}
