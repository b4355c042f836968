package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"
)

func TestKeyState_Apply(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		buf  []byte
		want Input
	}{
		{"quit key", []byte("q"), Input{Quit: true}},
		{"quit key upper", []byte("Q"), Input{Quit: true}},
		{"lone escape", []byte{0x1b}, Input{Quit: true}},
		{"up key", []byte("w"), Input{Up: true}},
		{"down key", []byte("s"), Input{Down: true}},
		{"vi up", []byte("i"), Input{Up: true}},
		{"vi down", []byte("k"), Input{Down: true}},
		{"arrow up", []byte("\x1b[A"), Input{Up: true}},
		{"arrow down", []byte("\x1b[B"), Input{Down: true}},
		{"unknown arrow ignored", []byte("\x1b[C"), Input{}},
		{"other keys ignored", []byte("xyz123 "), Input{}},
		{"both directions", []byte("\x1b[A\x1b[B"), Input{Up: true, Down: true}},
		{"empty", nil, Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k keyState
			k.apply(tt.buf, now)
			if got := k.snapshot(now); got != tt.want {
				t.Errorf("apply(%q) = %+v, want %+v", tt.buf, got, tt.want)
			}
		})
	}
}

func TestKeyState_HoldWindowExpires(t *testing.T) {
	now := time.Now()
	var k keyState
	k.apply([]byte("w"), now)

	if got := k.snapshot(now.Add(keyHoldDuration / 2)); !got.Up {
		t.Error("key released inside the hold window")
	}
	if got := k.snapshot(now.Add(keyHoldDuration * 2)); got.Up {
		t.Error("key still held after the hold window")
	}
}

func TestKeyState_ArrowSequenceIsNotQuit(t *testing.T) {
	// The ESC that introduces a CSI sequence must not read as the quit key.
	now := time.Now()
	var k keyState
	k.apply([]byte("\x1b[A"), now)
	if got := k.snapshot(now); got.Quit {
		t.Error("arrow key escape sequence reported quit")
	}
}

func TestStream_QuitOnClose(t *testing.T) {
	// EOF on the underlying reader must surface as a quit request so the
	// loop shuts down when the input side goes away.
	s := StartStream(bufio.NewReader(bytes.NewReader(nil)))

	deadline := time.Now().Add(2 * time.Second)
	for !s.Poll().Quit {
		if time.Now().After(deadline) {
			t.Fatal("Poll never reported quit after stream close")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStream_DeliversBytes(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewReader([]byte("w"))))

	deadline := time.Now().Add(2 * time.Second)
	for {
		in := s.Poll()
		if in.Up {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Poll never saw the buffered key press")
		}
		time.Sleep(time.Millisecond)
	}
}
