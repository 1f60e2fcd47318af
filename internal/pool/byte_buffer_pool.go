package pool

import "sync"

const (
	// LineBufferDefaultSize is the initial capacity of a pooled line buffer.
	// Sized for a typical record body: a few dozen short tag lines.
	LineBufferDefaultSize = 1024

	// LineBufferMaxThreshold is the largest buffer returned to the pool.
	// Buffers that grew past this (binary-graphics lines, long text fields)
	// are dropped so the pool does not pin oversized allocations.
	LineBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a reusable byte slice wrapper used to assemble output lines
// before they reach the underlying writer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but retains its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// AppendBytes appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) AppendBytes(data []byte) {
	bb.B = append(bb.B, data...)
}

// AppendString appends a string to the buffer, growing it if necessary.
func (bb *ByteBuffer) AppendString(s string) {
	bb.B = append(bb.B, s...)
}

// AppendByte appends a single byte to the buffer.
func (bb *ByteBuffer) AppendByte(c byte) {
	bb.B = append(bb.B, c)
}

var lineBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(LineBufferDefaultSize)
	},
}

// GetLineBuffer obtains an empty line buffer from the pool.
func GetLineBuffer() *ByteBuffer {
	bb, _ := lineBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutLineBuffer returns a line buffer to the pool.
// Buffers that grew past LineBufferMaxThreshold are discarded.
func PutLineBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > LineBufferMaxThreshold {
		return
	}

	lineBufferPool.Put(bb)
}
