package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/model"
)

// Inline redraws the frame in place below the cursor without taking over
// the screen. Like Scroll it reads no keys.
type Inline struct {
	session
	writer *uilive.Writer
}

// NewInline returns an in-place renderer writing to out
func NewInline(out io.Writer) *Inline {
	w := uilive.New()
	w.Out = out
	return &Inline{
		session: session{state: Running},
		writer:  w,
	}
}

// Draw replaces the previously printed frame
func (r *Inline) Draw(g *model.Grid, generation int) error {
	if r.state == Terminated {
		return nil
	}
	fmt.Fprintln(r.writer, strings.Join(Frame(g, generation), "\n"))
	return errors.Wrap(r.writer.Flush(), "[Inline.Draw] failed to flush frame")
}

// PollKey never has a key to report
func (r *Inline) PollKey() (Key, bool) {
	return r.observe(0, false)
}

// Close ends the session, leaving the last frame on screen
func (r *Inline) Close() error {
	r.state = Terminated
	return nil
}
