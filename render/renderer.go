// Package render draws generations to a terminal and reports key presses
// back to the game loop.
package render

import (
	"context"
	"unicode"

	"github.com/sheikhrachel/gof/model"
)

// Key is a key read from the terminal
type Key rune

const (
	KeyStart Key = 's'
	KeyQuit  Key = 'q'
)

func normalizeKey(r rune) Key {
	return Key(unicode.ToLower(r))
}

// IsStart reports whether k begins the simulation from the intro screen
func (k Key) IsStart() bool { return k == KeyStart }

// IsQuit reports whether k ends the session
func (k Key) IsQuit() bool { return k == KeyQuit }

// Renderer displays generations and polls for input without blocking
type Renderer interface {
	// Draw renders the grid and its generation number, then flushes.
	Draw(g *model.Grid, generation int) error
	// PollKey returns immediately; ok is false when no key is waiting.
	PollKey() (key Key, ok bool)
	// Close releases the terminal. Safe to call more than once.
	Close() error
}

// Outcome is the result of an intro screen
type Outcome int

const (
	Proceed Outcome = iota
	Shutdown
)

// IntroGate is implemented by renderers that show an intro screen before
// the first generation
type IntroGate interface {
	Intro(ctx context.Context) (Outcome, error)
}

// State is the lifecycle state of a renderer session
type State int

const (
	Uninitialized State = iota
	Intro
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Intro:
		return "intro"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

type session struct {
	state State
}

// State returns the current session state
func (s *session) State() State { return s.state }

// observe applies a polled key to the session, moving to Terminated on quit
func (s *session) observe(key Key, ok bool) (Key, bool) {
	if s.state == Terminated {
		return KeyQuit, true
	}
	if ok && key.IsQuit() {
		s.state = Terminated
	}
	return key, ok
}
