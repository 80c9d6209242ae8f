package unit_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/services"
)

func TestOnboardingGate_Derive(t *testing.T) {
	cases := []struct {
		name            string
		launchRequested bool
		hasKey          bool
		want            bool
	}{
		{"requested without key", true, false, true},
		{"requested with key", true, true, false},
		{"not requested without key", false, false, false},
		{"not requested with key", false, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := services.NewOnboardingGate()
			gate.Derive(tc.launchRequested, tc.hasKey)
			assert.Equal(t, tc.want, gate.Active())
		})
	}
}

func TestOnboardingGate_Clear_IsPermanent(t *testing.T) {
	gate := services.NewOnboardingGate()
	gate.Derive(true, false)
	assert.True(t, gate.Active())

	gate.Clear()
	assert.False(t, gate.Active())

	// Even if re-derivation were attempted with the same launch context,
	// the flag stays off for the rest of the session.
	gate.Derive(true, false)
	assert.False(t, gate.Active())
}
