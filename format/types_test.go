package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindForCode(t *testing.T) {
	cases := []struct {
		code int
		want ValueKind
	}{
		{0, KindString},   // type name
		{1, KindString},   // primary text
		{5, KindHandle},   // record identifier
		{8, KindString},   // layer name
		{10, KindDouble},  // coordinate
		{40, KindDouble},  // scalar double
		{62, KindInt16},   // color
		{90, KindInt32},   // 32-bit int
		{100, KindString}, // subclass marker
		{102, KindString}, // control bracket
		{105, KindHandle},
		{160, KindInt64},
		{290, KindBool},
		{330, KindHandle}, // soft owner
		{360, KindHandle}, // hard owner
		{390, KindHandle},
		{999, KindString}, // comment
		{1040, KindDouble},
		{1071, KindInt32},
	}

	for _, tc := range cases {
		kind, ok := KindForCode(tc.code)
		require.True(t, ok, "code %d", tc.code)
		require.Equal(t, tc.want, kind, "code %d", tc.code)
	}
}

func TestKindForCode_Unknown(t *testing.T) {
	kind, ok := KindForCode(2000)
	require.False(t, ok)
	require.Equal(t, KindString, kind)

	_, ok = KindForCode(150)
	require.False(t, ok)
}

func TestValueKind_String(t *testing.T) {
	require.Equal(t, "Handle", KindHandle.String())
	require.Equal(t, "Double", KindDouble.String())
	require.Equal(t, "Unknown", ValueKind(0xFF).String())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}
