package monitor

import (
	"errors"
	"io"

	"github.com/riskysoc/go-riskyboot/protocol"
)

// ErrOverrun is returned by LineReader.Feed when an input line reaches the
// buffer capacity before a terminator is seen. The in-progress line has been
// discarded; the caller reports the diagnostic.
var ErrOverrun = errors.New("line overrun")

// LineReader accumulates received bytes into a command buffer, one line at a
// time.
//
// A CR or LF terminates the line only if at least one non-terminator byte
// has been accumulated; bare terminators on an empty buffer are ignored, so
// CR, LF and CRLF framing all work without producing empty commands.
// Whitespace at the start of a fresh line is skipped for the same reason.
//
// When echo is enabled every accepted byte is written back to the echo sink,
// plus a terminator on line completion, so an operator on a raw terminal
// sees their keystrokes.
type LineReader struct {
	echoOut io.Writer
	echo    bool

	buf  []byte
	n    int
	line []byte
}

// NewLineReader returns a reader with the given buffer capacity (the
// protocol default if capacity <= 0). echoOut receives echoed bytes; it may
// be nil if echo is never enabled.
func NewLineReader(capacity int, echoOut io.Writer) *LineReader {
	if capacity <= 0 {
		capacity = protocol.BufferSize
	}
	return &LineReader{
		echoOut: echoOut,
		buf:     make([]byte, capacity),
	}
}

// SetEcho enables or disables keystroke echo.
func (r *LineReader) SetEcho(on bool) { r.echo = on }

// Feed appends one received byte to the in-progress line. ready is true when
// a complete line is available from Line; the caller must consume it before
// the next Feed. Feed returns ErrOverrun when the line exceeds the buffer
// capacity, discarding all pending input.
func (r *LineReader) Feed(c byte) (ready bool, err error) {
	if c == '\n' || c == '\r' {
		if r.n == 0 {
			return false, nil
		}
		if r.echo {
			r.writeEcho([]byte(protocol.Terminator))
		}
		r.line = r.buf[:r.n]
		r.n = 0
		return true, nil
	}

	if r.n == 0 && protocol.IsSpace(c) {
		return false, nil
	}

	r.buf[r.n] = c
	r.n++

	if r.echo {
		r.writeEcho(r.buf[r.n-1 : r.n])
	}

	if r.n >= len(r.buf) {
		r.n = 0
		return false, ErrOverrun
	}

	return false, nil
}

// Line returns the most recently completed line. The slice aliases the
// internal buffer and is valid until the next Feed.
func (r *LineReader) Line() []byte { return r.line }

func (r *LineReader) writeEcho(p []byte) {
	if r.echoOut != nil {
		_, _ = r.echoOut.Write(p)
	}
}
