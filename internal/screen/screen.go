// Package screen is the tcell-backed frontend. It implements the same
// poller and sink contracts as the raw ANSI path, for terminals where
// direct escape output misbehaves.
package screen

import (
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ttygame/pong/internal/input"
)

// keyHoldDuration mirrors the byte-stream poller's hold window so held
// keys read as continuous movement between events.
const keyHoldDuration = 30 * time.Millisecond

// Screen owns a tcell screen and adapts its event stream to the loop's
// non-blocking poll. It is both the input poller and the frame sink.
type Screen struct {
	scr    tcell.Screen
	events chan tcell.Event

	quit time.Time
	up   time.Time
	down time.Time
	done bool
}

// New initializes the terminal via tcell. Call Fini when done; tcell
// restores the terminal state itself.
func New() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	scr.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	scr.HideCursor()

	s := &Screen{
		scr:    scr,
		events: make(chan tcell.Event, 32),
	}
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s, nil
}

// Fini releases the terminal.
func (s *Screen) Fini() {
	s.scr.Fini()
}

// Poll drains pending events without blocking and reports the held keys.
func (s *Screen) Poll() input.Input {
	now := time.Now()

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.done = true
				break drain
			}
			s.handle(ev, now)
		default:
			break drain
		}
	}

	in := input.Input{
		Quit: !s.quit.IsZero() && now.Sub(s.quit) < keyHoldDuration,
		Up:   !s.up.IsZero() && now.Sub(s.up) < keyHoldDuration,
		Down: !s.down.IsZero() && now.Sub(s.down) < keyHoldDuration,
	}
	if s.done {
		in.Quit = true
	}
	return in
}

func (s *Screen) handle(ev tcell.Event, now time.Time) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = now
	case tcell.KeyUp:
		s.up = now
	case tcell.KeyDown:
		s.down = now
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			s.quit = now
		case 'w', 'W', 'i', 'I':
			s.up = now
		case 's', 'S', 'k', 'K':
			s.down = now
		}
	}
}

// WriteFrame draws the field cell by cell and a status line below it.
func (s *Screen) WriteFrame(lines []string, fps int) error {
	for y, line := range lines {
		x := 0
		for _, r := range line {
			s.scr.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	s.status(len(lines), fps)
	s.scr.Show()
	return nil
}

func (s *Screen) status(row, fps int) {
	x := 0
	for _, r := range "Press ESC to exit, FPS: " {
		s.scr.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, r := range strconv.Itoa(fps) {
		s.scr.SetContent(x, row, r, nil, yellow)
		x++
	}
	// Pad over digits left behind by a previously longer FPS figure.
	for pad := 0; pad < 4; pad++ {
		s.scr.SetContent(x+pad, row, ' ', nil, tcell.StyleDefault)
	}
}
