package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
)

func TestDecode_String(t *testing.T) {
	v, err := Decode(1, "hello world")
	require.NoError(t, err)
	require.Equal(t, format.KindString, v.Kind)
	require.Equal(t, "hello world", v.Str)
}

func TestDecode_Double(t *testing.T) {
	v, err := Decode(40, "2.5")
	require.NoError(t, err)
	require.Equal(t, format.KindDouble, v.Kind)
	require.Equal(t, 2.5, v.Float)
}

func TestDecode_Int16(t *testing.T) {
	// Some writers pad integer values with blanks.
	v, err := Decode(70, "    66")
	require.NoError(t, err)
	require.Equal(t, format.KindInt16, v.Kind)
	require.Equal(t, int64(66), v.Int)
}

func TestDecode_Int16_Overflow(t *testing.T) {
	_, err := Decode(70, "70000")
	require.ErrorIs(t, err, errs.ErrMalformedValue)
}

func TestDecode_Int32(t *testing.T) {
	v, err := Decode(90, "123456789")
	require.NoError(t, err)
	require.Equal(t, int64(123456789), v.Int)

	_, err = Decode(90, "2147483648")
	require.ErrorIs(t, err, errs.ErrMalformedValue)
}

func TestDecode_Handle(t *testing.T) {
	v, err := Decode(5, "1A")
	require.NoError(t, err)
	require.Equal(t, format.KindHandle, v.Kind)
	require.Equal(t, uint64(0x1A), v.Handle)

	v, err = Decode(330, "ff")
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), v.Handle)
}

func TestDecode_Bool(t *testing.T) {
	v, err := Decode(290, "0")
	require.NoError(t, err)
	require.False(t, v.Bool)

	v, err = Decode(290, "1")
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(40, "not a number")
	require.ErrorIs(t, err, errs.ErrMalformedValue)

	_, err = Decode(5, "xyz")
	require.ErrorIs(t, err, errs.ErrMalformedValue)
}

func TestEncode_Values(t *testing.T) {
	cases := []struct {
		code int
		v    Value
		want string
	}{
		{1, String("hello"), "hello"},
		{40, Double(2.5), "2.5"},
		{40, Double(1), "1"},
		{70, Int16(66), "66"},
		{90, Int32(-7), "-7"},
		{160, Int64(1 << 40), "1099511627776"},
		{5, Handle(0x1A), "1a"},
		{290, Bool(true), "1"},
		{290, Bool(false), "0"},
	}

	for _, tc := range cases {
		raw, err := Encode(tc.code, tc.v)
		require.NoError(t, err)
		require.Equal(t, tc.want, raw)
	}
}

func TestEncode_KindMismatch(t *testing.T) {
	_, err := Encode(40, String("oops"))
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	values := []struct {
		code int
		v    Value
	}{
		{1, String("layer name")},
		{40, Double(0.000125)},
		{40, Double(-273.15)},
		{70, Int16(-32768)},
		{90, Int32(2147483647)},
		{5, Handle(0xDEADBEEF)},
		{290, Bool(true)},
	}

	for _, tc := range values {
		raw, err := Encode(tc.code, tc.v)
		require.NoError(t, err)

		back, err := Decode(tc.code, raw)
		require.NoError(t, err)
		require.True(t, Equal(tc.v, back), "code %d: %v != %v", tc.code, tc.v, back)
	}
}
