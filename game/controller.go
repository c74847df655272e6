// Package game runs the simulation loop: draw, pause, advance, repeat
// until the renderer reports a quit.
package game

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/model"
	"github.com/sheikhrachel/gof/render"
	"github.com/sheikhrachel/gof/utils"
)

// Controller owns the universe and the renderer for the whole session
type Controller struct {
	universe *model.Universe
	renderer render.Renderer
	delay    time.Duration
	logger   *log.Logger
	stats    *utils.Stats

	// sleep is the pause between generations; it is never cut short
	sleep func(time.Duration)
}

// NewController wires a universe to a renderer
func NewController(u *model.Universe, r render.Renderer, delay time.Duration, logger *log.Logger) *Controller {
	return &Controller{
		universe: u,
		renderer: r,
		delay:    delay,
		logger:   logger,
		stats:    utils.NewStats(),
		sleep:    time.Sleep,
	}
}

// Run shows the intro if the renderer has one, then loops until a quit key
// is polled or ctx is cancelled. A quit is only seen at the poll after a
// full draw, pause and advance. The renderer is closed on every return.
//
// Keys are polled once per cycle after the step rather than straight after
// the draw, so the generation counter already reflects the step when the
// loop ends; a quit still ends the loop within one cycle.
func (c *Controller) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := c.renderer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "[Run] failed to release renderer")
		}
	}()

	if gate, ok := c.renderer.(render.IntroGate); ok {
		outcome, err := gate.Intro(ctx)
		if err != nil {
			return errors.Wrap(err, "[Run] intro failed")
		}
		if outcome == render.Shutdown {
			c.logger.Printf("quit from intro screen")
			return nil
		}
	}

	var (
		shutdown  bool
		lastFrame = time.Now()
	)
	for !shutdown {
		grid, generation := c.universe.Grid(), c.universe.Generation()
		if err := c.renderer.Draw(grid, generation); err != nil {
			return errors.Wrapf(err, "[Run] failed to draw generation %d", generation)
		}
		c.stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrame))
		lastFrame = time.Now()

		c.sleep(c.delay)
		c.universe.Step()

		shutdown = c.shouldStop(ctx)
	}

	c.logger.Printf("final stats: %d generations in %.1fs, %.1f gen/sec, %.1f avg population",
		c.stats.TotalGenerations, c.stats.Runtime().Seconds(),
		c.stats.GenerationsPerSecond, c.stats.AveragePopulation)
	return nil
}

// Generation returns the generation the universe is on
func (c *Controller) Generation() int {
	return c.universe.Generation()
}

func (c *Controller) shouldStop(ctx context.Context) bool {
	if key, ok := c.renderer.PollKey(); ok && key.IsQuit() {
		c.logger.Printf("quit key at generation %d", c.universe.Generation())
		return true
	}
	if ctx.Err() != nil {
		c.logger.Printf("interrupted at generation %d", c.universe.Generation())
		return true
	}
	return false
}
