package render

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/gof/model"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreen(sim)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	sim.SetSize(40, 12)
	r.introPause = 0
	t.Cleanup(func() { _ = r.Close() })
	return r, sim
}

func screenLine(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestScreenIntroStart(t *testing.T) {
	r, sim := newTestScreen(t)
	if r.State() != Intro {
		t.Fatalf("new screen in state %s, want intro", r.State())
	}

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'S', tcell.ModNone)

	outcome, err := r.Intro(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Proceed {
		t.Fatalf("intro outcome %v, want Proceed", outcome)
	}
	if r.State() != Running {
		t.Fatalf("state after start key is %s, want running", r.State())
	}
}

func TestScreenIntroShowsBanner(t *testing.T) {
	r, sim := newTestScreen(t)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	// the banner is painted before every poll, so it is on screen when quit arrives
	outcome, err := r.Intro(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Shutdown {
		t.Fatalf("intro outcome %v, want Shutdown", outcome)
	}
	if r.State() != Terminated {
		t.Fatalf("state after quit key is %s, want terminated", r.State())
	}
	for i, want := range introBanner {
		if got := screenLine(sim, i); got != want {
			t.Errorf("banner line %d: got %q, want %q", i, got, want)
		}
	}
}

func TestScreenIntroCancelled(t *testing.T) {
	r, _ := newTestScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := r.Intro(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Shutdown {
		t.Fatalf("cancelled intro outcome %v, want Shutdown", outcome)
	}
}

func TestScreenDrawAndQuit(t *testing.T) {
	r, sim := newTestScreen(t)
	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	if _, err := r.Intro(context.Background()); err != nil {
		t.Fatal(err)
	}

	g := model.NewGrid(3, 3)
	g.Set(0, 1, true)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	if err := r.Draw(g, 12); err != nil {
		t.Fatal(err)
	}

	want := []string{"+---+", "|   |", "|***|", "|   |", "+---+", "Generation 12"}
	for i, line := range want {
		if got := screenLine(sim, i); got != line {
			t.Errorf("line %d: got %q, want %q", i, got, line)
		}
	}

	if _, ok := r.PollKey(); ok {
		t.Fatal("poll reported a key with none pending")
	}

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	if key, ok := r.PollKey(); !ok || key.IsQuit() {
		t.Fatalf("poll returned (%q, %v), want a non-quit key", key, ok)
	}
	if r.State() != Running {
		t.Fatalf("state after other key is %s, want running", r.State())
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if key, ok := r.PollKey(); !ok || !key.IsQuit() {
		t.Fatalf("poll returned (%q, %v), want quit", key, ok)
	}
	if r.State() != Terminated {
		t.Fatalf("state after quit is %s, want terminated", r.State())
	}
}

func TestScreenCtrlCQuits(t *testing.T) {
	r, sim := newTestScreen(t)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	if key, ok := r.PollKey(); !ok || !key.IsQuit() {
		t.Fatalf("ctrl+c polled as (%q, %v), want quit", key, ok)
	}
}

func TestScreenCloseIsIdempotent(t *testing.T) {
	r, _ := newTestScreen(t)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if r.State() != Terminated {
		t.Fatalf("closed screen in state %s", r.State())
	}
	if err := r.Draw(model.NewGrid(2, 2), 1); err != nil {
		t.Fatalf("draw after close: %v", err)
	}
	if key, ok := r.PollKey(); !ok || !key.IsQuit() {
		t.Fatal("closed screen did not report quit")
	}
}

func TestScreenSpecialKeyIsOther(t *testing.T) {
	r, sim := newTestScreen(t)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	key, ok := r.PollKey()
	if !ok {
		t.Fatal("arrow key not reported")
	}
	if key != 0 || key.IsQuit() || key.IsStart() {
		t.Fatalf("arrow key polled as %q, want a plain other key", key)
	}
	if r.State() == Terminated {
		t.Fatal("arrow key ended the session")
	}
}
