package tag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cadwire/dxfio/errs"
)

// Reader pulls (group code, value) pairs off an input byte stream.
//
// Each call to Next consumes exactly one group-code line and its paired value
// line. The reader tolerates both LF and CRLF line endings and supports
// arbitrarily long value lines (binary-graphics data and long text fields).
//
// A clean end of stream at a pair boundary is reported as io.EOF; a stream
// that ends between a group-code line and its value line is a distinct error,
// so callers can always tell a clean boundary from a broken stream.
//
// Note: The Reader is NOT thread-safe. Each stream being decoded must own its
// own Reader.
type Reader struct {
	br          *bufio.Reader
	line        int
	maxValueLen int
	peeked      *Tag
}

// NewReader creates a Reader over the given stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br: bufio.NewReader(r),
	}
}

// SetMaxValueLen caps the accepted value-line length in bytes. Zero (the
// default) means unlimited. A longer value line fails the read with
// errs.ErrValueTooLong, a guard against hostile input demanding unbounded
// memory.
func (r *Reader) SetMaxValueLen(n int) {
	r.maxValueLen = n
}

// Line returns the number of the last line consumed (1-based).
// It is zero before the first call to Next.
func (r *Reader) Line() int {
	return r.line
}

// Next consumes and returns the next (code, value) pair.
//
// Returns:
//   - Tag: The decoded pair with its source line number
//   - error: io.EOF at a clean pair boundary, errs.ErrBareGroupCode when the
//     stream ends after a code line, errs.ErrInvalidGroupCode when the code
//     line is not numeric, or the underlying I/O error wrapped with the
//     current line number
func (r *Reader) Next() (Tag, error) {
	if r.peeked != nil {
		t := *r.peeked
		r.peeked = nil

		return t, nil
	}

	codeLine, err := r.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) && codeLine == "" {
			return Tag{}, io.EOF
		}
		if errors.Is(err, io.EOF) {
			// A code line with no trailing newline and no value line.
			return Tag{}, fmt.Errorf("%w at line %d", errs.ErrBareGroupCode, r.line)
		}

		return Tag{}, fmt.Errorf("read group code at line %d: %w", r.line, err)
	}

	codeLineNo := r.line

	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %q at line %d", errs.ErrInvalidGroupCode, strings.TrimSpace(codeLine), codeLineNo)
	}

	value, err := r.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return Tag{}, fmt.Errorf("read value at line %d: %w", r.line, err)
	}
	if errors.Is(err, io.EOF) && value == "" {
		return Tag{}, fmt.Errorf("%w at line %d", errs.ErrBareGroupCode, codeLineNo)
	}

	if r.maxValueLen > 0 && len(value) > r.maxValueLen {
		return Tag{}, fmt.Errorf("%w: %d bytes at line %d, limit %d",
			errs.ErrValueTooLong, len(value), r.line, r.maxValueLen)
	}

	return Tag{Code: code, Value: value, Line: codeLineNo}, nil
}

// Peek returns the next pair without consuming it.
// The following call to Next returns the same pair.
func (r *Reader) Peek() (Tag, error) {
	if r.peeked != nil {
		return *r.peeked, nil
	}

	t, err := r.Next()
	if err != nil {
		return Tag{}, err
	}

	r.peeked = &t

	return t, nil
}

// Unread pushes a pair back onto the reader so the next call to Next returns
// it. Only one pair can be pushed back at a time.
func (r *Reader) Unread(t Tag) {
	r.peeked = &t
}

// readLine reads one line, stripping the trailing LF or CRLF.
// bufio.Reader.ReadString grows as needed, so line length is unbounded.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if len(line) > 0 {
		r.line++
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, err
}
