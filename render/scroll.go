package render

import (
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/model"
)

const (
	unixClearCmd    = "clear"
	windowsClearCmd = "cls"

	ansiClear = "\x1b[H\x1b[2J"
)

// Scroll is the plain fallback renderer: every tick it clears the terminal
// and prints the whole frame again. It reads no keys; the session ends on
// an external interrupt instead.
type Scroll struct {
	session
	out   io.Writer
	clear func() error
}

// NewScroll returns a scrolling renderer writing to out
func NewScroll(out io.Writer) *Scroll {
	r := &Scroll{
		session: session{state: Running},
		out:     out,
	}
	r.clear = r.clearTerminal
	return r
}

// Draw clears the terminal and reprints the frame
func (r *Scroll) Draw(g *model.Grid, generation int) error {
	if r.state == Terminated {
		return nil
	}
	if err := r.clear(); err != nil {
		return errors.Wrap(err, "[Scroll.Draw] failed to clear terminal")
	}
	if _, err := io.WriteString(r.out, strings.Join(Frame(g, generation), "\n")+"\n"); err != nil {
		return errors.Wrap(err, "[Scroll.Draw] failed to write frame")
	}
	return nil
}

// PollKey never has a key to report
func (r *Scroll) PollKey() (Key, bool) {
	return r.observe(0, false)
}

// Close ends the session; the terminal was never taken over
func (r *Scroll) Close() error {
	r.state = Terminated
	return nil
}

// clearTerminal runs the platform clear command, falling back to an ANSI
// erase when the command is missing
func (r *Scroll) clearTerminal() error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", windowsClearCmd)
	} else {
		cmd = exec.Command(unixClearCmd)
	}
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		_, err = io.WriteString(r.out, ansiClear)
		return err
	}
	return nil
}
