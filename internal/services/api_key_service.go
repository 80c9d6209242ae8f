package services

import (
	"context"
	"strings"
	"sync"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/events"
)

// ValidationState tracks the advisory check of the current edit session.
type ValidationState string

const (
	ValidationUnchecked ValidationState = "unchecked"
	ValidationChecking  ValidationState = "checking"
	ValidationValid     ValidationState = "valid"
	ValidationInvalid   ValidationState = "invalid"
)

// ApiKeySnapshot is what the frontend binds against. The key itself is
// never part of it.
type ApiKeySnapshot struct {
	HasKey  bool            `json:"has_key"`
	Editing bool            `json:"editing"`
	State   ValidationState `json:"state"`
}

// ApiKeyService manages presence, edit mode and validation of the API key.
// The secret value stays in the keyring backend; only candidates passed in
// per call flow through here.
type ApiKeyService struct {
	context   context.Context
	keys      KeyringStore
	validator KeyValidator
	status    *StatusService
	gate      *OnboardingGate

	mu      sync.Mutex
	hasKey  bool
	editing bool
	state   ValidationState
}

func NewApiKeyService(keys KeyringStore, validator KeyValidator, status *StatusService, gate *OnboardingGate) *ApiKeyService {
	return &ApiKeyService{
		keys:      keys,
		validator: validator,
		status:    status,
		gate:      gate,
		state:     ValidationUnchecked,
	}
}

func (s *ApiKeyService) Startup(ctx context.Context) {
	s.context = ctx
}

// CheckPresence queries the keyring once at startup. A user without a key
// can never see the configured read-only state, so edit mode is forced
// open when nothing is stored.
func (s *ApiKeyService) CheckPresence() (bool, error) {
	has, err := s.keys.Has()
	if err != nil {
		s.status.Show(events.SeverityError, "Failed to check for a saved API key: "+err.Error())
		return false, err
	}

	s.mu.Lock()
	s.hasKey = has
	if !has {
		s.editing = true
	}
	s.mu.Unlock()
	return has, nil
}

func (s *ApiKeyService) BeginEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.state = ValidationUnchecked
}

func (s *ApiKeyService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.state = ValidationUnchecked
}

// Validate runs the advisory backend check. A backend failure collapses to
// invalid; the error text is surfaced as a status message so the user can
// tell a rejected key from a failed call.
func (s *ApiKeyService) Validate(candidate string) ValidationState {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return s.State()
	}

	s.setState(ValidationChecking)

	ok, err := s.validator.Validate(context.Background(), candidate)
	if err != nil {
		s.setState(ValidationInvalid)
		s.status.Show(events.SeverityError, "API key validation failed: "+err.Error())
		return ValidationInvalid
	}

	if ok {
		s.setState(ValidationValid)
		return ValidationValid
	}
	s.setState(ValidationInvalid)
	return ValidationInvalid
}

// Save persists the candidate. Validation is advisory, never a
// precondition. On failure edit mode stays open so the user can retry.
func (s *ApiKeyService) Save(candidate string) error {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil
	}

	if err := s.keys.Store(candidate); err != nil {
		s.status.Show(events.SeverityError, "Failed to save API key: "+err.Error())
		return err
	}

	s.mu.Lock()
	s.hasKey = true
	s.editing = false
	s.state = ValidationUnchecked
	s.mu.Unlock()

	s.gate.Clear()
	s.status.Show(events.SeveritySuccess, "API key saved")
	return nil
}

// Delete removes the stored key. Presence drops and edit mode opens,
// since there is no configured state left to show.
func (s *ApiKeyService) Delete() error {
	if err := s.keys.Delete(); err != nil {
		s.status.Show(events.SeverityError, "Failed to delete API key: "+err.Error())
		return err
	}

	s.mu.Lock()
	s.hasKey = false
	s.editing = true
	s.state = ValidationUnchecked
	s.mu.Unlock()

	s.status.Show(events.SeverityInfo, "API key deleted")
	return nil
}

func (s *ApiKeyService) Snapshot() ApiKeySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ApiKeySnapshot{HasKey: s.hasKey, Editing: s.editing, State: s.state}
}

func (s *ApiKeyService) State() ValidationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ApiKeyService) setState(state ValidationState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
