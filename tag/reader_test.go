package tag

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cadwire/dxfio/errs"
)

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader("  0\nSECTION\n  2\nENTITIES\n"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, Tag{Code: 0, Value: "SECTION", Line: 1}, tg)

	tg, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, Tag{Code: 2, Value: "ENTITIES", Line: 3}, tg)

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_CRLF(t *testing.T) {
	r := NewReader(strings.NewReader("  5\r\n1A\r\n"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 5, tg.Code)
	require.Equal(t, "1A", tg.Value)
}

func TestReader_CodeWithoutPadding(t *testing.T) {
	// Codes may arrive unpadded or padded with extra blanks.
	r := NewReader(strings.NewReader("0\nEOF\n   999  \ncomment\n"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 0, tg.Code)

	tg, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, 999, tg.Code)
	require.Equal(t, "comment", tg.Value)
}

func TestReader_BareGroupCode(t *testing.T) {
	r := NewReader(strings.NewReader("  0\n"))

	_, err := r.Next()
	require.ErrorIs(t, err, errs.ErrBareGroupCode)
}

func TestReader_BareGroupCodeNoNewline(t *testing.T) {
	r := NewReader(strings.NewReader("  0"))

	_, err := r.Next()
	require.ErrorIs(t, err, errs.ErrBareGroupCode)
}

func TestReader_InvalidGroupCode(t *testing.T) {
	r := NewReader(strings.NewReader("abc\nvalue\n"))

	_, err := r.Next()
	require.ErrorIs(t, err, errs.ErrInvalidGroupCode)
}

func TestReader_LongValueLine(t *testing.T) {
	long := strings.Repeat("A", 256*1024)
	r := NewReader(strings.NewReader("310\n" + long + "\n"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 310, tg.Code)
	require.Len(t, tg.Value, 256*1024)
}

func TestReader_MaxValueLen(t *testing.T) {
	r := NewReader(strings.NewReader("  1\nshort\n  1\nmuch too long\n"))
	r.SetMaxValueLen(8)

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "short", tg.Value)

	_, err = r.Next()
	require.ErrorIs(t, err, errs.ErrValueTooLong)
}

func TestReader_ValueWithoutTrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader("  1\nhello"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "hello", tg.Value)

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_PeekUnread(t *testing.T) {
	r := NewReader(strings.NewReader("  0\nLINE\n  8\nWALLS\n"))

	peeked, err := r.Peek()
	require.NoError(t, err)

	got, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, peeked, got)

	r.Unread(got)
	again, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, got, again)

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 8, tg.Code)
}

func TestReader_EmptyValueLine(t *testing.T) {
	r := NewReader(strings.NewReader("  1\n\n  0\nEOF\n"))

	tg, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "", tg.Value)

	tg, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, 0, tg.Code)
}
