package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/model"
	"github.com/sheikhrachel/gof/render"
	"github.com/sheikhrachel/gof/utils"
)

// newLogger picks the log destination. The full-screen renderer owns
// stdout and stderr, so without a log file its logs are dropped.
func newLogger(config utils.Config) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case config.LogFile != "":
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", config.LogFile)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case config.Mode == utils.ModeScreen:
		out = io.Discard
	}

	return log.New(out, "gof: ", log.LstdFlags), closeFn, nil
}

// newRenderer constructs the renderer for the configured mode
func newRenderer(config utils.Config) (render.Renderer, error) {
	switch config.Mode {
	case utils.ModeScroll:
		return render.NewScroll(os.Stdout), nil
	case utils.ModeInline:
		return render.NewInline(os.Stdout), nil
	default:
		screen, err := render.OpenScreen()
		if err != nil {
			return nil, errors.Wrap(err, "cannot start full-screen mode (try -mode scroll)")
		}
		return screen, nil
	}
}

// resolveSeed returns seed, or a clock-derived one when seed is zero
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// displayGameInfo logs the initial game information
func displayGameInfo(logger *log.Logger, config utils.Config, grid *model.Grid, seed uint64) {
	logger.Printf("mode: %s | grid: %dx%d | initial living cells: %d | p: %.2f | delay: %v | seed: %d",
		config.Mode, grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(),
		config.Probability, config.Delay(), seed)
}
