package game

// Side identifies a player. A defends the left edge, B the right.
type Side int

const (
	SideA Side = iota // left paddle
	SideB             // right paddle
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// State is the complete simulation state for one tick. The Game replaces
// its record wholesale each tick, so a State value in a caller's hands is
// never partially updated.
type State struct {
	Tick int // frame counter, increments every tick including serves

	PaddleA int // top row of the left paddle
	PaddleB int // top row of the right paddle

	BallX int
	BallY int
	VX    int // horizontal direction, -1 or +1
	VY    int // vertical speed, -2..+2

	ScoreA int
	ScoreB int
}

// paddleTop returns the top row of the given side's paddle.
func (s State) paddleTop(side Side) int {
	if side == SideA {
		return s.PaddleA
	}
	return s.PaddleB
}
