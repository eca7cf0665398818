// Package games manages the minigame sessions the pet bargains with.
// Sessions are opaque to the behavior engine: it launches one, polls
// whether it is still running, and hears about the outcome exactly once.
package games

import (
	"log"
	"math/rand"
)

// RandIntn is swappable for deterministic game selection in tests.
var RandIntn = rand.Intn

// Session is one running minigame. The UI steps it every tick and feeds it
// key presses; the manager watches for it to finish.
type Session interface {
	// Name identifies the game in comments and results.
	Name() string
	// Prompt is the instruction line the UI shows.
	Prompt() string
	// Step advances the session by one tick.
	Step()
	// HandleKey feeds one key press into the session.
	HandleKey(key string)
	// Finished reports whether the session has reached an outcome.
	Finished() bool
	// Won reports the outcome; meaningful only once Finished.
	Won() bool
}

// Factory builds a fresh session.
type Factory func() Session

// ResultFunc hears the outcome of a finished session. won and lost are
// mutually exclusive; both false means the session ended without a verdict.
type ResultFunc func(won, lost bool, name string)

// Manager owns the registry of game factories and the current session.
// Registration is an explicit list, not discovery.
type Manager struct {
	factories []Factory
	current   Session
	reported  bool
	onResult  ResultFunc
}

// NewManager builds a manager with the given registry.
func NewManager(factories ...Factory) *Manager {
	return &Manager{factories: factories}
}

// SetResultFunc installs the outcome listener.
func (m *Manager) SetResultFunc(fn ResultFunc) {
	m.onResult = fn
}

// Launch starts a random game from the registry, replacing any session
// already running. Returns nil if the registry is empty.
func (m *Manager) Launch() Session {
	if len(m.factories) == 0 {
		log.Printf("games: nothing registered to launch")
		return nil
	}
	if m.current != nil && !m.reported {
		// Abandoning a live session counts as ending without a verdict.
		m.report(false, false, m.current.Name())
	}
	f := m.factories[RandIntn(len(m.factories))]
	m.current = f()
	m.reported = false
	log.Printf("games: launched %s", m.current.Name())
	return m.current
}

// Current returns the running session, or nil.
func (m *Manager) Current() Session {
	if m.current == nil || m.current.Finished() {
		return nil
	}
	return m.current
}

// Running reports whether a session is live.
func (m *Manager) Running() bool {
	return m.Current() != nil
}

// Update steps the current session and reports its outcome the tick it
// finishes. Safe to call every tick; a finished session reports only once.
func (m *Manager) Update() {
	if m.current == nil {
		return
	}
	if !m.current.Finished() {
		m.current.Step()
	}
	if m.current.Finished() && !m.reported {
		won := m.current.Won()
		m.report(won, !won, m.current.Name())
		m.current = nil
	}
}

// HandleKey forwards a key press to the live session, reporting whether one
// consumed it.
func (m *Manager) HandleKey(key string) bool {
	s := m.Current()
	if s == nil {
		return false
	}
	s.HandleKey(key)
	return true
}

func (m *Manager) report(won, lost bool, name string) {
	m.reported = true
	if m.onResult != nil {
		m.onResult(won, lost, name)
	}
}
