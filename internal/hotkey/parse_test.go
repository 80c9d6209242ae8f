package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.design/x/hotkey"
)

func TestParse_Accelerators(t *testing.T) {
	cases := []struct {
		accel    string
		wantMods int
		wantKey  hotkey.Key
	}{
		{"Ctrl+Shift+S", 2, hotkey.KeyS},
		{"ctrl+shift+s", 2, hotkey.KeyS},
		{"Ctrl+Alt+D", 2, hotkey.KeyD},
		{"Shift+F5", 1, hotkey.KeyF5},
		{"Ctrl+Space", 1, hotkey.KeySpace},
		{"F12", 0, hotkey.KeyF12},
		{" Ctrl + Shift + S ", 2, hotkey.KeyS},
	}

	for _, tc := range cases {
		t.Run(tc.accel, func(t *testing.T) {
			mods, key, err := Parse(tc.accel)
			assert.NoError(t, err)
			assert.Len(t, mods, tc.wantMods)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, accel := range []string{"", "Ctrl+", "Bogus+S", "Ctrl+Bogus", "+", "Ctrl+Shift+"} {
		t.Run(accel, func(t *testing.T) {
			_, _, err := Parse(accel)
			assert.Error(t, err)
		})
	}
}
