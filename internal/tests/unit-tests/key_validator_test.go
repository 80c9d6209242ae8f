package unit_tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/models"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/services"
)

func validatorFor(baseURL string) *services.OpenAIKeyValidator {
	cfg := models.DefaultAppConfig()
	cfg.APIBaseURL = baseURL
	return services.NewOpenAIKeyValidator(func() *models.AppConfig { return cfg })
}

func TestOpenAIKeyValidator_Accepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, "Bearer sk-good", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok, err := validatorFor(srv.URL).Validate(context.Background(), "sk-good")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenAIKeyValidator_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ok, err := validatorFor(srv.URL).Validate(context.Background(), "sk-bad")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenAIKeyValidator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok, err := validatorFor(srv.URL).Validate(context.Background(), "sk-any")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestOpenAIKeyValidator_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ok, err := validatorFor(srv.URL).Validate(context.Background(), "sk-any")

	assert.Error(t, err)
	assert.False(t, ok)
}
