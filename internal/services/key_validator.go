package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
)

// KeyValidator checks a candidate API key against the speech backend.
// The result is advisory: saving a key never requires validation first.
type KeyValidator interface {
	Validate(ctx context.Context, candidate string) (bool, error)
}

// OpenAIKeyValidator validates a key by listing models on the configured
// API base URL. 401/403 means the key is definitively rejected; any other
// non-2xx answer or transport failure is an error for the caller to surface.
type OpenAIKeyValidator struct {
	config func() *models.AppConfig
}

func NewOpenAIKeyValidator(config func() *models.AppConfig) *OpenAIKeyValidator {
	return &OpenAIKeyValidator{config: config}
}

func (v *OpenAIKeyValidator) Validate(ctx context.Context, candidate string) (bool, error) {
	cfg := v.config()
	if cfg == nil {
		cfg = models.DefaultAppConfig()
	}

	client := &http.Client{
		Timeout: time.Duration(cfg.ConnectTimeoutSec) * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.APIBaseURL+"/v1/models", nil)
	if err != nil {
		return false, fmt.Errorf("build validation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+candidate)

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("validation request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected validation response: %s", resp.Status)
	}
}
