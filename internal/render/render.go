// Package render converts simulation state into terminal frames and defines
// the sink contract frontends implement to display them.
package render

import (
	"strings"

	"github.com/ttygame/pong/internal/game"
)

// Cell runes used by the frame builder.
const (
	CellBorder = '▀'
	CellBlock  = '█'
	CellBlank  = ' '
)

// Sink receives finished frames for display. WriteFrame gets the ordered
// rows of one frame plus the effective frame rate; how and where they are
// drawn is the sink's business.
type Sink interface {
	WriteFrame(lines []string, fps int) error
}

// Frame renders the state as Height rows of exactly Width cells each.
// Cell precedence, first match wins: border rows, left paddle, right paddle,
// ball, dotted center line, blank. Deterministic for a given state.
func Frame(s game.State, p game.Params) []string {
	lines := make([]string, p.Height)
	var row strings.Builder

	for y := 0; y < p.Height; y++ {
		row.Reset()
		row.Grow(p.Width * 3) // block runes are 3 bytes in UTF-8
		for x := 0; x < p.Width; x++ {
			row.WriteRune(cellAt(x, y, s, p))
		}
		lines[y] = row.String()
	}
	return lines
}

func cellAt(x, y int, s game.State, p game.Params) rune {
	switch {
	case y == 0 || y == p.Height-1:
		return CellBorder
	case x == 1 && y >= s.PaddleA && y < s.PaddleA+p.PaddleHeight:
		return CellBlock
	case x == p.Width-2 && y >= s.PaddleB && y < s.PaddleB+p.PaddleHeight:
		return CellBlock
	case x == s.BallX && y == s.BallY:
		return CellBlock
	case x == p.Width/2 && y%3 == 1:
		return CellBlock
	default:
		return CellBlank
	}
}
