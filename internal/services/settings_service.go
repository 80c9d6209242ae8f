package services

import (
	"context"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/events"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/hotkey"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/repositories"
)

// SaveStatus is the three-way result of a save or reset. Partial means the
// configuration persisted but the live hotkey binding was not updated.
type SaveStatus string

const (
	SaveSuccess SaveStatus = "success"
	SavePartial SaveStatus = "partial"
	SaveFailure SaveStatus = "failure"
)

// SaveOutcome is what the frontend receives and what the status area shows.
type SaveOutcome struct {
	Status   SaveStatus      `json:"status"`
	Message  string          `json:"message"`
	Severity events.Severity `json:"severity"`
}

// SettingsService commits the in-memory configuration to the backend and
// rebinds the global hotkey when that setting changed. The rebind is only
// ever attempted after persistence is confirmed.
type SettingsService struct {
	context context.Context
	repo    repositories.AppConfigRepository
	store   ConfigService
	binder  hotkey.Binder
	status  *StatusService
}

func NewSettingsService(repo repositories.AppConfigRepository, store ConfigService, binder hotkey.Binder, status *StatusService) *SettingsService {
	return &SettingsService{repo: repo, store: store, binder: binder, status: status}
}

func (s *SettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

// Save persists local wholesale. The persisted hotkey is re-fetched first,
// rather than diffed against the last-loaded snapshot, so a local copy
// that drifted from backend truth cannot suppress or force a rebind.
func (s *SettingsService) Save(local *models.AppConfig) SaveOutcome {
	if local == nil {
		return s.report(SaveOutcome{
			Status:   SaveFailure,
			Message:  "No configuration to save",
			Severity: events.SeverityError,
		})
	}

	prior, err := s.repo.Get(context.Background())
	if err != nil {
		return s.report(SaveOutcome{
			Status:   SaveFailure,
			Message:  "Failed to read saved settings: " + err.Error(),
			Severity: events.SeverityError,
		})
	}

	if err := s.repo.Save(context.Background(), local); err != nil {
		return s.report(SaveOutcome{
			Status:   SaveFailure,
			Message:  "Failed to save settings: " + err.Error(),
			Severity: events.SeverityError,
		})
	}

	if prior.Hotkey != local.Hotkey {
		if err := s.binder.Rebind(local.Hotkey); err != nil {
			return s.report(SaveOutcome{
				Status:   SavePartial,
				Message:  "Settings saved, but the new hotkey could not be applied: " + err.Error(),
				Severity: events.SeverityWarning,
			})
		}
	}

	return s.report(SaveOutcome{
		Status:   SaveSuccess,
		Message:  "Settings saved",
		Severity: events.SeveritySuccess,
	})
}

// Reset replaces the configuration with backend defaults and rebinds the
// hotkey if the defaults changed it.
func (s *SettingsService) Reset() (*models.AppConfig, SaveOutcome) {
	priorHotkey := ""
	if cur := s.store.Current(); cur != nil {
		priorHotkey = cur.Hotkey
	}

	fresh, err := s.store.Reset()
	if err != nil {
		return nil, s.report(SaveOutcome{
			Status:   SaveFailure,
			Message:  "Failed to reset settings: " + err.Error(),
			Severity: events.SeverityError,
		})
	}

	if fresh.Hotkey != priorHotkey {
		if err := s.binder.Rebind(fresh.Hotkey); err != nil {
			return fresh, s.report(SaveOutcome{
				Status:   SavePartial,
				Message:  "Settings reset, but the default hotkey could not be applied: " + err.Error(),
				Severity: events.SeverityWarning,
			})
		}
	}

	return fresh, s.report(SaveOutcome{
		Status:   SaveSuccess,
		Message:  "Settings reset to defaults",
		Severity: events.SeveritySuccess,
	})
}

func (s *SettingsService) report(outcome SaveOutcome) SaveOutcome {
	s.status.Show(outcome.Severity, outcome.Message)
	return outcome
}
