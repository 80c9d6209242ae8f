// Package hotkey binds the configured global accelerator to the OS and
// rebinds it when the setting changes.
package hotkey

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// keys maps accelerator tokens to OS-independent key codes.
var keys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3,
	"f4": hotkey.KeyF4, "f5": hotkey.KeyF5, "f6": hotkey.KeyF6,
	"f7": hotkey.KeyF7, "f8": hotkey.KeyF8, "f9": hotkey.KeyF9,
	"f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space":  hotkey.KeySpace,
	"enter":  hotkey.KeyReturn,
	"return": hotkey.KeyReturn,
	"escape": hotkey.KeyEscape,
	"tab":    hotkey.KeyTab,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
}

// Parse turns an accelerator string such as "Ctrl+Shift+S" into the
// modifier set and key understood by the OS binding layer. The last
// token is the key; everything before it must be a modifier.
func Parse(accel string) ([]hotkey.Modifier, hotkey.Key, error) {
	tokens := strings.Split(accel, "+")
	for i := range tokens {
		tokens[i] = strings.ToLower(strings.TrimSpace(tokens[i]))
	}
	if len(tokens) == 0 || tokens[len(tokens)-1] == "" {
		return nil, 0, fmt.Errorf("invalid hotkey %q", accel)
	}

	var mods []hotkey.Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := modifiers[tok]
		if !ok {
			return nil, 0, fmt.Errorf("invalid hotkey %q: unknown modifier %q", accel, tok)
		}
		mods = append(mods, mod)
	}

	keyTok := tokens[len(tokens)-1]
	key, ok := keys[keyTok]
	if !ok {
		return nil, 0, fmt.Errorf("invalid hotkey %q: unknown key %q", accel, keyTok)
	}
	return mods, key, nil
}
