// Package input reads raw terminal bytes on a background goroutine and
// exposes a non-blocking per-frame poll, so input never stalls the frame
// cadence.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last press.
// Terminals auto-repeat slower than the frame rate, so a small window keeps
// held paddle movement smooth.
const keyHoldDuration = 30 * time.Millisecond

// Input is the current frame's input state.
type Input struct {
	Quit bool // Esc or q, or the input stream closed
	Up   bool
	Down bool
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit time.Time
	up   time.Time
	down time.Time
}

// Stream delivers input bytes via a channel and tracks key timestamps.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The stream reports Quit once r reaches EOF or fails.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all pending bytes without blocking and returns the current
// input state.
func (s *Stream) Poll() Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.state.apply(buf, now)

	in := s.state.snapshot(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// apply parses a batch of raw bytes and stamps the keys they press.
// CSI sequences for the arrow keys are recognized; a lone ESC quits.
func (k *keyState) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					k.up = now
				case 'B':
					k.down = now
				}
				i += 2
				continue
			}
			k.quit = now
			continue
		}
		switch buf[i] {
		case 'q', 'Q':
			k.quit = now
		case 'w', 'W', 'i', 'I':
			k.up = now
		case 's', 'S', 'k', 'K':
			k.down = now
		}
	}
}

// snapshot reports which keys were seen within the hold window.
func (k *keyState) snapshot(now time.Time) Input {
	return Input{
		Quit: !k.quit.IsZero() && now.Sub(k.quit) < keyHoldDuration,
		Up:   !k.up.IsZero() && now.Sub(k.up) < keyHoldDuration,
		Down: !k.down.IsZero() && now.Sub(k.down) < keyHoldDuration,
	}
}
