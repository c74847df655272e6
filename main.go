package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gof/game"
	"github.com/sheikhrachel/gof/model"
	"github.com/sheikhrachel/gof/utils"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config, err := utils.ParseArgs(os.Args[0], args, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, utils.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}

	logger, closeLog, err := newLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	defer closeLog()

	// Handle Ctrl+C and SIGTERM gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := resolveSeed(config.Seed)
	universe, err := model.RandomUniverse(config.Width, config.Height, config.Probability, seed, config.Workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	displayGameInfo(logger, config, universe.Grid(), seed)

	renderer, err := newRenderer(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}

	controller := game.NewController(universe, renderer, config.Delay(), logger)
	if err := controller.Run(ctx); err != nil {
		logger.Printf("%+v", err)
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	return exitOK
}
