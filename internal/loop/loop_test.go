package loop

import (
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ttygame/pong/internal/game"
	"github.com/ttygame/pong/internal/input"
)

// scriptedPoller reports a fixed input for n polls, then quits.
type scriptedPoller struct {
	n  int
	in input.Input
}

func (p *scriptedPoller) Poll() input.Input {
	if p.n <= 0 {
		return input.Input{Quit: true}
	}
	p.n--
	return p.in
}

// captureSink records every frame it is handed.
type captureSink struct {
	frames [][]string
	fps    []int
	err    error
}

func (c *captureSink) WriteFrame(lines []string, fps int) error {
	if c.err != nil {
		return c.err
	}
	c.frames = append(c.frames, lines)
	c.fps = append(c.fps, fps)
	return nil
}

func TestRun_RendersEveryTickUntilQuit(t *testing.T) {
	p := &scriptedPoller{n: 5}
	sink := &captureSink{}

	final, err := Run(p, sink, Options{
		Params:    game.DefaultParams(),
		TargetFPS: 1000,
		Seed:      42,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if final.Tick != 5 {
		t.Errorf("final tick = %d, want 5", final.Tick)
	}
	if len(sink.frames) != 5 {
		t.Fatalf("sink received %d frames, want 5", len(sink.frames))
	}

	params := game.DefaultParams()
	for i, frame := range sink.frames {
		if len(frame) != params.Height {
			t.Fatalf("frame %d has %d rows, want %d", i, len(frame), params.Height)
		}
		for _, line := range frame {
			if utf8.RuneCountInString(line) != params.Width {
				t.Fatalf("frame %d has a row of width %d, want %d",
					i, utf8.RuneCountInString(line), params.Width)
			}
		}
	}
	for i, fps := range sink.fps {
		if fps < 0 {
			t.Errorf("frame %d reported negative FPS %d", i, fps)
		}
	}
}

func TestRun_DeterministicWithSeed(t *testing.T) {
	run := func() game.State {
		sink := &captureSink{}
		final, err := Run(&scriptedPoller{n: 50}, sink, Options{
			Params:    game.DefaultParams(),
			TargetFPS: 1000,
			Seed:      7,
		})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return final
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different final states:\n%+v\n%+v", a, b)
	}
}

func TestRun_HumanControlMovesPaddle(t *testing.T) {
	sink := &captureSink{}
	final, err := Run(&scriptedPoller{n: 3, in: input.Input{Down: true}}, sink, Options{
		Params:     game.DefaultParams(),
		TargetFPS:  1000,
		Seed:       7,
		HumanRight: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	p := game.DefaultParams()
	start := (p.Height - p.PaddleHeight) / 2
	want := start + 3*p.PaddleSpeed
	if final.PaddleB != want {
		t.Errorf("paddle B = %d after 3 held-down ticks, want %d", final.PaddleB, want)
	}
}

func TestRun_SinkErrorStopsLoop(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	sink := &captureSink{err: sinkErr}
	_, err := Run(&scriptedPoller{n: 100}, sink, Options{
		Params:    game.DefaultParams(),
		TargetFPS: 1000,
		Seed:      1,
	})
	if !errors.Is(err, sinkErr) {
		t.Errorf("Run returned %v, want the sink's error", err)
	}
}

func TestRun_RejectsInvalidParams(t *testing.T) {
	_, err := Run(&scriptedPoller{}, &captureSink{}, Options{
		Params: game.Params{Width: 2, Height: 2, PaddleHeight: 7, PaddleSpeed: 2},
	})
	if err == nil {
		t.Error("Run accepted invalid field params")
	}
}

func TestFPS(t *testing.T) {
	tests := []struct {
		work, sleep time.Duration
		want        int
	}{
		{0, 0, 0},
		{10 * time.Millisecond, 0, 100},
		{2 * time.Millisecond, 8 * time.Millisecond, 100},
		{time.Second, 0, 1},
		{time.Millisecond, time.Millisecond, 500},
		{8 * time.Millisecond, 325 * time.Microsecond, 120},
	}
	for _, tt := range tests {
		if got := FPS(tt.work, tt.sleep); got != tt.want {
			t.Errorf("FPS(%v, %v) = %d, want %d", tt.work, tt.sleep, got, tt.want)
		}
	}
}
