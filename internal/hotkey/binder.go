package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// Binder is the registration side effect the settings layer depends on.
// Rebind replaces the current global binding with the given accelerator.
type Binder interface {
	Rebind(accel string) error
}

// Manager owns the live OS hotkey registration. The press/release hooks
// feed the recording layer; the settings layer only cares about Rebind.
type Manager struct {
	mu      sync.Mutex
	current *hotkey.Hotkey
	bound   string
	done    chan struct{}

	OnPress   func()
	OnRelease func()
}

func NewManager() *Manager {
	return &Manager{}
}

// Bound reports the accelerator currently registered, if any.
func (m *Manager) Bound() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bound
}

// Rebind registers accel and releases the previous binding. The new
// registration happens first so a failure leaves the old binding intact.
func (m *Manager) Rebind(accel string) error {
	mods, key, err := Parse(accel)
	if err != nil {
		return err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %q: %w", accel, err)
	}

	m.mu.Lock()
	prev, prevDone := m.current, m.done
	m.current = hk
	m.bound = accel
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	if prev != nil {
		close(prevDone)
		if err := prev.Unregister(); err != nil {
			// The new binding is live; the stale one is only leaked.
			return fmt.Errorf("unregister previous hotkey: %w", err)
		}
	}

	go m.listen(hk, done)
	return nil
}

// Unbind releases the current registration, if any.
func (m *Manager) Unbind() error {
	m.mu.Lock()
	hk, done := m.current, m.done
	m.current = nil
	m.bound = ""
	m.done = nil
	m.mu.Unlock()

	if hk == nil {
		return nil
	}
	close(done)
	return hk.Unregister()
}

func (m *Manager) listen(hk *hotkey.Hotkey, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-hk.Keydown():
			if m.OnPress != nil {
				m.OnPress()
			}
		case <-hk.Keyup():
			if m.OnRelease != nil {
				m.OnRelease()
			}
		}
	}
}
