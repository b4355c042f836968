// Package loop runs the fixed-rate game loop: poll input, advance the
// simulation one tick, render, hand the frame to the sink, sleep out the
// rest of the frame budget.
package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/ttygame/pong/internal/game"
	"github.com/ttygame/pong/internal/input"
	"github.com/ttygame/pong/internal/render"
)

// DefaultFPS matches the original cadence.
const DefaultFPS = 120

// Poller supplies the current frame's input without blocking.
type Poller interface {
	Poll() input.Input
}

// Options configures a game loop run.
type Options struct {
	Params     game.Params
	TargetFPS  int   // frames per second budget; DefaultFPS when zero
	Seed       int64 // rng seed; 0 means time-seeded
	HumanRight bool  // drive the right paddle from the keyboard
}

// Run plays the game until the quit key is pressed or the input source
// closes. The loop is single-threaded and cooperative: game state is owned
// by this goroutine for its entire lifetime, so one iteration's tick,
// render and write are never interleaved. Returns the final state.
func Run(p Poller, sink render.Sink, opts Options) (game.State, error) {
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	frameBudget := time.Second / time.Duration(fps)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(opts.Params, rand.New(rand.NewSource(seed)))
	if err != nil {
		return game.State{}, err
	}

	for {
		frameStart := time.Now()

		in := p.Poll()
		if in.Quit {
			return g.State(), nil
		}

		var right game.Control
		if opts.HumanRight {
			right = controlFrom(in)
		}
		st := g.Tick(game.Control{}, right)
		lines := render.Frame(st, g.Params())

		// Bounded sleep: whatever is left of the budget, floored at zero.
		// An overlong frame starts the next one immediately, no catch-up.
		work := time.Since(frameStart)
		sleep := frameBudget - work
		if sleep < 0 {
			sleep = 0
		}

		if err := sink.WriteFrame(lines, FPS(work, sleep)); err != nil {
			return g.State(), err
		}
		time.Sleep(sleep)
	}
}

// controlFrom maps held keys to a manual paddle control. Up and down held
// together cancel out.
func controlFrom(in input.Input) game.Control {
	c := game.Control{Manual: true}
	if in.Up {
		c.Move--
	}
	if in.Down {
		c.Move++
	}
	return c
}

// FPS reports the effective frame rate of a frame that worked for work and
// then slept for sleep, rounded to an integer. Zero when the duration is
// too small to measure.
func FPS(work, sleep time.Duration) int {
	total := (work + sleep).Seconds()
	if total <= 0 {
		return 0
	}
	return int(math.Round(1 / total))
}
