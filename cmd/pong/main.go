package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/ttygame/pong/internal/config"
	"github.com/ttygame/pong/internal/draw"
	"github.com/ttygame/pong/internal/game"
	"github.com/ttygame/pong/internal/input"
	"github.com/ttygame/pong/internal/logging"
	"github.com/ttygame/pong/internal/loop"
	"github.com/ttygame/pong/internal/screen"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogFile)

	opts := loop.Options{
		Params:     game.DefaultParams(),
		TargetFPS:  cfg.TargetFPS,
		Seed:       cfg.Seed,
		HumanRight: cfg.HumanRight,
	}
	logger.Info("starting game", "backend", cfg.Backend, "fps", opts.TargetFPS, "human", cfg.HumanRight)

	var (
		final game.State
		err   error
	)
	switch cfg.Backend {
	case config.BackendTcell:
		final, err = runTcell(opts)
	default:
		final, err = runANSI(opts)
	}
	if err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game over", "ticks", final.Tick, "scoreA", final.ScoreA, "scoreB", final.ScoreB)
}

// runANSI plays on the raw terminal: stdin in raw mode, frames written as
// ANSI escapes to stdout.
func runANSI(opts loop.Options) (game.State, error) {
	// The field plus status line must fit; refuse rather than garble.
	if w, h, err := draw.TerminalSize(); err == nil {
		if w < opts.Params.Width || h < opts.Params.Height+1 {
			return game.State{}, fmt.Errorf("terminal too small: need %dx%d, have %dx%d",
				opts.Params.Width, opts.Params.Height+1, w, h)
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return game.State{}, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	sink := draw.NewTerminal(os.Stdout)
	if err := sink.Start(); err != nil {
		return game.State{}, err
	}
	defer func() {
		_ = sink.Stop()
	}()

	return loop.Run(stream, sink, opts)
}

// runTcell plays on a tcell screen, which owns the terminal for the run.
func runTcell(opts loop.Options) (game.State, error) {
	scr, err := screen.New()
	if err != nil {
		return game.State{}, fmt.Errorf("init screen: %w", err)
	}
	defer scr.Fini()

	return loop.Run(scr, scr, opts)
}
