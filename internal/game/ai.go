package game

import "math/rand"

// trickShotRange is how close (in columns) an incoming ball must be before
// the policy starts aiming instead of tracking.
const trickShotRange = 5

// trackProbability is the chance per tick that the policy tracks the ball
// while it is far away. The remaining ticks it holds still, which keeps the
// opponent beatable.
const trackProbability = 0.85

// trickShots maps one uniform draw to a row offset above the ball. Each
// offset parks the paddle so the ball lands in a different bounce zone,
// giving five distinct exit angles. Thresholds are cumulative; the straight
// shot (offset 3) is deliberately rare.
var trickShots = []struct {
	threshold float64
	offset    int
}{
	{0.25, 0}, // ball hits the top edge: steep up
	{0.50, 1}, // upper zone: diagonal up
	{0.55, 3}, // center zone: straight
	{0.75, 5}, // lower zone: diagonal down
	{1.01, 6}, // bottom edge: steep down
}

// decideTarget returns the row the given side wants its paddle top at this
// tick. With the ball incoming and close it lines up a trick shot at one of
// the five bounce zones; otherwise it tracks the ball defensively, with
// deliberate imperfection. The result is always within [1, maxPaddleTop].
func decideTarget(s State, p Params, side Side, rng *rand.Rand) int {
	incoming := s.VX < 0 && s.BallX <= trickShotRange
	if side == SideB {
		incoming = s.VX > 0 && s.BallX >= p.Width-1-trickShotRange
	}

	if incoming {
		r := rng.Float64()
		for _, shot := range trickShots {
			if r < shot.threshold {
				return clampTop(s.BallY-shot.offset, p)
			}
		}
	}

	top := s.paddleTop(side)
	if rng.Float64() < trackProbability {
		switch {
		case s.BallY < top+2:
			return clampTop(top-p.PaddleSpeed, p)
		case s.BallY > top+p.PaddleHeight-3:
			return clampTop(top+p.PaddleSpeed, p)
		}
	}
	return top
}

// clampTop bounds a paddle top row to the playable span between the borders.
func clampTop(top int, p Params) int {
	return min(max(top, 1), p.maxPaddleTop())
}
