package services

import "sync"

// OnboardingGate derives the first-run presentation flag once at startup:
// active iff the launch context requested onboarding and no API key exists.
// A successful key save clears it for the rest of the session; it never
// re-derives afterward.
type OnboardingGate struct {
	mu      sync.Mutex
	active  bool
	cleared bool
}

func NewOnboardingGate() *OnboardingGate {
	return &OnboardingGate{}
}

func (g *OnboardingGate) Derive(launchRequested, hasKey bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cleared {
		return
	}
	g.active = launchRequested && !hasKey
}

func (g *OnboardingGate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Clear permanently deactivates onboarding for this session.
func (g *OnboardingGate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
	g.cleared = true
}
