package services

import (
	"gorm.io/gorm"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/hotkey"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/repositories"
)

// Services aggregates everything the settings window binds to.
type Services struct {
	Config     ConfigService
	ApiKeys    *ApiKeyService
	Settings   *SettingsService
	Status     *StatusService
	Onboarding *OnboardingGate
}

// NewServices constructs the service graph using repositories backed by db
// and the given hotkey binder.
func NewServices(db *gorm.DB, binder hotkey.Binder) *Services {
	configRepo := repositories.NewAppConfigRepository(db)

	status := NewStatusService()
	gate := NewOnboardingGate()
	config := NewConfigService(configRepo)
	validator := NewOpenAIKeyValidator(config.Current)
	apiKeys := NewApiKeyService(NewKeyringService(), validator, status, gate)
	settings := NewSettingsService(configRepo, config, binder, status)

	return &Services{
		Config:     config,
		ApiKeys:    apiKeys,
		Settings:   settings,
		Status:     status,
		Onboarding: gate,
	}
}
