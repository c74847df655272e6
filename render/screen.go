package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/model"
)

const introPollInterval = 20 * time.Millisecond

var (
	// ErrNoDisplay is returned when no interactive terminal can be acquired
	ErrNoDisplay = errors.New("interactive terminal display unavailable")

	introBanner = []string{
		"----Conway's Game of Life----",
		"Use S to start game",
		"Use Q to quit game",
	}
)

// Screen is the interactive full-screen renderer. It owns the terminal
// from construction until Close, redrawing the same buffer each tick.
type Screen struct {
	session
	screen     tcell.Screen
	style      tcell.Style
	introPause time.Duration
	closed     bool
}

// OpenScreen acquires the process terminal
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(ErrNoDisplay, "[OpenScreen] %v", err)
	}
	return NewScreen(s)
}

// NewScreen initializes s and takes ownership of it. The renderer starts
// in the Intro state.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrapf(ErrNoDisplay, "[NewScreen] %v", err)
	}
	s.HideCursor()
	s.Clear()

	return &Screen{
		session:    session{state: Intro},
		screen:     s,
		style:      tcell.StyleDefault,
		introPause: introPollInterval,
	}, nil
}

// Intro repaints the banner and polls until the start or quit key is
// pressed, or ctx is cancelled
func (r *Screen) Intro(ctx context.Context) (Outcome, error) {
	if r.state != Intro {
		return 0, errors.Errorf("[Intro] renderer is %s", r.state)
	}

	for {
		if ctx.Err() != nil {
			r.state = Terminated
			return Shutdown, nil
		}

		r.drawLines(introBanner)
		r.screen.Show()

		key, ok := r.pollKey()
		switch {
		case ok && key.IsStart():
			r.state = Running
			r.screen.Clear()
			return Proceed, nil
		case ok && key.IsQuit():
			r.state = Terminated
			return Shutdown, nil
		case !ok:
			time.Sleep(r.introPause)
		}
	}
}

// Draw paints the frame for the given generation in place
func (r *Screen) Draw(g *model.Grid, generation int) error {
	switch r.state {
	case Terminated:
		return nil
	case Intro:
		r.state = Running
		r.screen.Clear()
	}

	r.drawLines(Frame(g, generation))
	r.screen.Show()
	return nil
}

// PollKey returns a waiting key press without blocking
func (r *Screen) PollKey() (Key, bool) {
	if r.closed {
		return r.observe(0, false)
	}
	return r.observe(r.pollKey())
}

// Close restores the terminal
func (r *Screen) Close() error {
	r.state = Terminated
	if r.closed {
		return nil
	}
	r.closed = true
	r.screen.Fini()
	return nil
}

func (r *Screen) drawLines(lines []string) {
	for y, line := range lines {
		x := 0
		for _, c := range line {
			r.screen.SetContent(x, y, c, nil, r.style)
			x++
		}
	}
}

func (r *Screen) pollKey() (Key, bool) {
	for r.screen.HasPendingEvent() {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return 0, false
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			// keys other than runes only ever count as "some other key"
			switch ev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return KeyQuit, true
			case tcell.KeyRune:
				return normalizeKey(ev.Rune()), true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}
