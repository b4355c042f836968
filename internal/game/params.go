// Package game implements the pong simulation: the opponent policy, ball
// physics, scoring, and the per-tick state machine that sequences them.
package game

import "fmt"

// Default field dimensions, matching the classic 80x25 layout.
const (
	DefaultWidth        = 80
	DefaultHeight       = 25
	DefaultPaddleHeight = 7
	DefaultPaddleSpeed  = 2
)

// Params holds the immutable field dimensions and paddle properties.
// Set once at startup and never modified.
type Params struct {
	Width        int // Field width in cells
	Height       int // Field height in cells
	PaddleHeight int // Paddle span in rows
	PaddleSpeed  int // Max rows a paddle moves per tick when tracking
}

// DefaultParams returns the standard field configuration.
func DefaultParams() Params {
	return Params{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
	}
}

// Validate rejects field configurations the simulation cannot play on.
// Called once at construction; the tick pipeline assumes valid params.
func (p Params) Validate() error {
	if p.Width <= 4 || p.Height <= 4 {
		return fmt.Errorf("field %dx%d is too small", p.Width, p.Height)
	}
	if p.PaddleHeight < 1 {
		return fmt.Errorf("paddle height %d must be positive", p.PaddleHeight)
	}
	if p.PaddleHeight >= p.Height {
		return fmt.Errorf("paddle height %d does not fit field height %d", p.PaddleHeight, p.Height)
	}
	if p.PaddleSpeed < 1 {
		return fmt.Errorf("paddle speed %d must be positive", p.PaddleSpeed)
	}
	return nil
}

// maxPaddleTop is the lowest row a paddle's top may occupy. Paddles live
// between the border rows, so the top stays in [1, maxPaddleTop].
func (p Params) maxPaddleTop() int {
	return p.Height - p.PaddleHeight - 1
}
