package game

// advanceBall moves the ball one tick and resolves wall and paddle
// collisions against the freshly decided paddle targets. Wall reflection is
// applied before the paddle test, so a ball that grazes a wall and a paddle
// in the same tick is tested on the already-reflected row.
func advanceBall(s State, p Params, leftTop, rightTop int) (x, y, vx, vy int) {
	x = s.BallX + s.VX
	y = s.BallY + s.VY
	vx = s.VX
	vy = s.VY

	// Top/bottom wall bounce: clamp into the field and flip vertical speed.
	switch {
	case y <= 1:
		y = 1
		vy = -vy
	case y >= p.Height-2:
		y = p.Height - 2
		vy = -vy
	}

	// Paddle collision. A hit reverses the ball and picks the exit angle
	// from where on the paddle span it landed.
	switch {
	case x <= 1 && vx < 0 && y >= leftTop && y < leftTop+p.PaddleHeight:
		vx = 1
		vy = bounceAngle(y - leftTop)
	case x >= p.Width-2 && vx > 0 && y >= rightTop && y < rightTop+p.PaddleHeight:
		vx = -1
		vy = bounceAngle(y - rightTop)
	}

	return x, y, vx, vy
}

// bounceAngle maps the hit offset within the paddle span to the outgoing
// vertical speed: top edge sends the ball steeply up, the center returns it
// flat, the bottom edge steeply down.
func bounceAngle(d int) int {
	switch {
	case d == 0:
		return -2
	case d <= 2:
		return -1
	case d <= 4:
		return 0
	case d <= 5:
		return 1
	default:
		return 2
	}
}

// Outcome reports how a tick left the ball.
type Outcome int

const (
	OutcomeInPlay Outcome = iota
	OutcomeScoreA         // ball escaped past the right paddle
	OutcomeScoreB         // ball escaped past the left paddle
)

// resolveOutcome checks whether the advanced ball position crossed an end
// boundary. A ball past the left edge is a point for B and vice versa.
func resolveOutcome(x int, p Params) Outcome {
	switch {
	case x < 1:
		return OutcomeScoreB
	case x > p.Width-2:
		return OutcomeScoreA
	default:
		return OutcomeInPlay
	}
}
