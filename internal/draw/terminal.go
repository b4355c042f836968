package draw

import (
	"bufio"
	"io"
	"strconv"
)

// Terminal writes frames to an ANSI terminal. Each frame is accumulated
// into one buffered write for optimal flow over slow links (e.g. SSH).
type Terminal struct {
	bufw   *bufio.Writer
	numBuf [20]byte // scratch for allocation-free integer formatting
}

// NewTerminal creates a frame sink writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{bufw: bufio.NewWriterSize(w, 8192)}
}

// Start prepares the terminal for frame output: cursor hidden, screen
// cleared. Pair with Stop.
func (t *Terminal) Start() error {
	HideCursor(t.bufw)
	ClearScreen(t.bufw)
	return t.bufw.Flush()
}

// Stop restores the cursor and clears the playfield.
func (t *Terminal) Stop() error {
	ClearScreen(t.bufw)
	ShowCursor(t.bufw)
	return t.bufw.Flush()
}

// WriteFrame draws one frame: the field rows from the top-left corner, then
// a status line with the exit hint and the frame rate in yellow.
func (t *Terminal) WriteFrame(lines []string, fps int) error {
	t.moveCursor(1, 1)
	for i, line := range lines {
		t.moveCursor(1, i+1)
		t.bufw.WriteString(line)
	}
	t.moveCursor(1, len(lines)+1)
	t.bufw.WriteString("Press ESC to exit, FPS: ")
	t.bufw.WriteString("\033[33m")
	t.bufw.Write(strconv.AppendInt(t.numBuf[:0], int64(fps), 10))
	t.bufw.WriteString("\033[0m\033[K")
	return t.bufw.Flush()
}

// moveCursor appends an ANSI cursor position sequence, 1-based.
func (t *Terminal) moveCursor(col, row int) {
	t.bufw.WriteString("\033[")
	t.bufw.Write(strconv.AppendInt(t.numBuf[:0], int64(row), 10))
	t.bufw.WriteByte(';')
	t.bufw.Write(strconv.AppendInt(t.numBuf[:0], int64(col), 10))
	t.bufw.WriteByte('H')
}
