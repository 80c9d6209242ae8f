package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/events"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/hotkey"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/services"
)

// App struct
type App struct {
	ctx              context.Context
	services         *services.Services
	binder           *hotkey.Manager
	dbClose          func() error
	launchOnboarding bool
	loadErr          error
}

// StartupState tells the frontend whether the form is usable, and in which
// presentation mode.
type StartupState struct {
	ConfigLoaded bool   `json:"config_loaded"`
	LoadError    string `json:"load_error"`
	HasAPIKey    bool   `json:"has_api_key"`
	Onboarding   bool   `json:"onboarding"`
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, binder *hotkey.Manager, launchOnboarding bool) *App {
	return &App{services: svc, binder: binder, launchOnboarding: launchOnboarding}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()

	a.services.Status.Startup(ctx)
	a.services.Config.Startup(ctx)
	a.services.ApiKeys.Startup(ctx)
	a.services.Settings.Startup(ctx)

	cfg, err := a.services.Config.Load()
	if err != nil {
		a.loadErr = err
		runtime.LogError(ctx, fmt.Sprintf("failed to load configuration: %v", err))
	}

	hasKey, err := a.services.ApiKeys.CheckPresence()
	if err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to check API key presence: %v", err))
	}
	a.services.Onboarding.Derive(a.launchOnboarding, hasKey)

	if cfg != nil {
		if err := a.binder.Rebind(cfg.Hotkey); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to register hotkey %q: %v", cfg.Hotkey, err))
			a.services.Status.Show(events.SeverityError,
				fmt.Sprintf("Failed to register hotkey %q: %v. Change it in settings.", cfg.Hotkey, err))
		}
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if err := a.binder.Unbind(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to unbind hotkey: %v", err))
	}

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// GetStartupState reports load/onboarding state for the settings window.
func (a *App) GetStartupState() StartupState {
	state := StartupState{
		ConfigLoaded: a.services.Config.Current() != nil,
		HasAPIKey:    a.services.ApiKeys.Snapshot().HasKey,
		Onboarding:   a.services.Onboarding.Active(),
	}
	if a.loadErr != nil {
		state.LoadError = a.loadErr.Error()
	}
	return state
}

// ReloadConfig retries the initial load after a load failure.
func (a *App) ReloadConfig() (*models.AppConfig, error) {
	cfg, err := a.services.Config.Load()
	a.loadErr = err
	return cfg, err
}

// SaveSettings commits the current in-memory configuration.
func (a *App) SaveSettings() services.SaveOutcome {
	return a.services.Settings.Save(a.services.Config.Current())
}

// ResetResult bundles the fresh defaults with the reset outcome, since
// bound methods can only return one value besides an error.
type ResetResult struct {
	Config  *models.AppConfig    `json:"config"`
	Outcome services.SaveOutcome `json:"outcome"`
}

// ResetSettings restores backend defaults wholesale.
func (a *App) ResetSettings() ResetResult {
	cfg, outcome := a.services.Settings.Reset()
	return ResetResult{Config: cfg, Outcome: outcome}
}
