package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Assign(t *testing.T) {
	g := NewRegistry()

	a := NewLayer("A")
	b := NewLayer("B")
	require.Equal(t, uint64(1), g.Assign(a))
	require.Equal(t, uint64(2), g.Assign(b))
	require.Equal(t, 2, g.Len())

	got, ok := g.Resolve(1)
	require.True(t, ok)
	require.Same(t, Record(a), got)

	_, ok = g.Resolve(99)
	require.False(t, ok)
}

func TestRegistry_AssignPastDecodedHandles(t *testing.T) {
	g := NewRegistry()

	// A decoded record arrives with its identifier already set; the
	// allocator must never hand that range out again.
	decoded := NewLayer("DECODED")
	decoded.SetHandle(0x50)
	require.Equal(t, uint64(0x50), g.Assign(decoded))

	fresh := NewLayer("FRESH")
	require.Equal(t, uint64(0x51), g.Assign(fresh))
}

func TestRegistry_Lookup(t *testing.T) {
	g := NewRegistry()

	walls := NewLayer("Walls")
	require.NoError(t, g.Index("Walls", walls))

	got, ok := g.Lookup("WALLS")
	require.True(t, ok)
	require.Same(t, Record(walls), got)

	got, ok = g.Lookup("walls")
	require.True(t, ok)
	require.Same(t, Record(walls), got)

	_, ok = g.Lookup("DOORS")
	require.False(t, ok)
}

func TestRegistry_IndexReplacesSameName(t *testing.T) {
	g := NewRegistry()

	first := NewLayer("WALLS")
	second := NewLayer("walls")
	require.NoError(t, g.Index("WALLS", first))
	require.NoError(t, g.Index("walls", second))

	got, ok := g.Lookup("Walls")
	require.True(t, ok)
	require.Same(t, Record(second), got)
}
