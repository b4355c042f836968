package game

import "math/rand"

// Control selects how one paddle is driven for a single tick. The zero
// value leaves the paddle to the opponent policy.
type Control struct {
	Manual bool
	Move   int // -1 up, 0 hold, +1 down; applied at PaddleSpeed rows per tick
}

// Game owns the authoritative state and advances it one tick at a time.
// It is single-owner: not safe for concurrent use, by contract of the loop.
type Game struct {
	params Params
	state  State
	rng    *rand.Rand
}

// New validates the field parameters and creates a game with a randomized
// opening serve: ball near the vertical center, random direction and angle,
// paddles centered. The rng is the game's only source of randomness, so a
// fixed seed reproduces the full state sequence.
func New(p Params, rng *rand.Rand) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Game{params: p, rng: rng}

	vx := 1
	if rng.Float64() < 0.5 {
		vx = -1
	}
	g.state = State{
		PaddleA: (p.Height - p.PaddleHeight) / 2,
		PaddleB: (p.Height - p.PaddleHeight) / 2,
		BallX:   p.Width / 2,
		BallY:   g.serveRow(),
		VX:      vx,
		VY:      g.serveAngle(),
	}
	return g, nil
}

// Params returns the immutable field parameters.
func (g *Game) Params() Params {
	return g.params
}

// State returns a copy of the current state record.
func (g *Game) State() State {
	return g.state
}

// Tick advances the simulation one step: both paddles decide their targets,
// the ball moves and resolves collisions against them, and scoring finalizes
// the record. The new state is committed wholesale and returned; the tick
// counter increments on every call, serves included.
func (g *Game) Tick(left, right Control) State {
	s := g.state
	p := g.params

	leftTop := g.paddleTarget(s, SideA, left)
	rightTop := g.paddleTarget(s, SideB, right)

	x, y, vx, vy := advanceBall(s, p, leftTop, rightTop)

	next := State{
		Tick:    s.Tick + 1,
		PaddleA: leftTop,
		PaddleB: rightTop,
		BallX:   x,
		BallY:   y,
		VX:      vx,
		VY:      vy,
		ScoreA:  s.ScoreA,
		ScoreB:  s.ScoreB,
	}

	// A point resets the ball; the serve heads away from the paddle that
	// let it through, giving the conceding side the full half to recover.
	switch resolveOutcome(x, p) {
	case OutcomeScoreA:
		next.ScoreA++
		next.BallX = p.Width/2 + 1
		next.BallY = g.serveRow()
		next.VX = -1
		next.VY = g.serveAngle()
	case OutcomeScoreB:
		next.ScoreB++
		next.BallX = p.Width/2 - 1
		next.BallY = g.serveRow()
		next.VX = 1
		next.VY = g.serveAngle()
	}

	g.state = next
	return next
}

// paddleTarget resolves one side's paddle position for this tick: manual
// control moves the paddle by PaddleSpeed in the held direction, otherwise
// the opponent policy decides.
func (g *Game) paddleTarget(s State, side Side, c Control) int {
	if !c.Manual {
		return decideTarget(s, g.params, side, g.rng)
	}
	return clampTop(s.paddleTop(side)+c.Move*g.params.PaddleSpeed, g.params)
}

// serveRow picks a serve row within three rows of the vertical center,
// bounded to the playable rows for small fields.
func (g *Game) serveRow() int {
	row := g.params.Height/2 + g.rng.Intn(7) - 3
	return min(max(row, 1), g.params.Height-2)
}

// serveAngle picks a serve angle uniformly from the five vertical speeds.
func (g *Game) serveAngle() int {
	return g.rng.Intn(5) - 2
}
