package tag

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cadwire/dxfio/internal/pool"
)

// Writer emits (group code, value) pairs as paired lines.
//
// The group code is right-justified in a three-column field and both lines are
// terminated with CRLF, matching the canonical on-disk layout. Output is
// assembled in a pooled buffer and flushed per pair, so a Writer allocates
// nothing on the steady-state path.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	w     io.Writer
	buf   *pool.ByteBuffer
	pairs int
}

// NewWriter creates a Writer over the given stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: pool.GetLineBuffer(),
	}
}

// Pairs returns the number of (code, value) pairs written so far.
func (w *Writer) Pairs() int {
	return w.pairs
}

// Write emits one (code, value) pair.
func (w *Writer) Write(code int, value string) error {
	w.buf.Reset()
	w.appendCode(code)
	w.buf.AppendString(value)
	w.buf.AppendString("\r\n")

	if _, err := w.w.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("write tag %d: %w", code, err)
	}

	w.pairs++

	return nil
}

// Close releases the writer's internal buffer back to the pool.
// The Writer must not be used after Close.
func (w *Writer) Close() {
	pool.PutLineBuffer(w.buf)
	w.buf = nil
}

// appendCode appends the group-code line: the code right-justified in three
// columns, CRLF terminated. Codes wider than three digits print unpadded.
func (w *Writer) appendCode(code int) {
	s := strconv.Itoa(code)
	for pad := 3 - len(s); pad > 0; pad-- {
		w.buf.AppendByte(' ')
	}
	w.buf.AppendString(s)
	w.buf.AppendString("\r\n")
}
