package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadVector3Layout(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.pokeF32(0x1010, 1)
	f.pokeF32(0x1014, 2)
	f.pokeF32(0x1018, 3)

	a := Existing(f, 0x1000)
	v, err := a.ReadVector3(0x1010)
	require.NoError(t, err)
	require.Equal(t, Vector3{1, 2, 3}, v)
}

func TestReadVector2Layout(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.pokeF32(0x1020, -4)
	f.pokeF32(0x1024, 3)

	a := Existing(f, 0x1000)
	v, err := a.ReadVector2(0x1020)
	require.NoError(t, err)
	require.Equal(t, Vector2{-4, 3}, v)
	require.Equal(t, float32(5), v.Len())
}

func TestVectorMath(t *testing.T) {
	v := Vector3{3, 4, 0}
	require.Equal(t, float32(5), v.Len())

	n := v.Normalized()
	require.InDelta(t, 0.6, n.X, 1e-6)
	require.InDelta(t, 0.8, n.Y, 1e-6)
	require.Equal(t, float32(0), n.Z)

	require.Equal(t, Vector3{4, 6, 1}, v.Add(Vector3{1, 2, 1}))
	require.Equal(t, Vector3{2, 2, -1}, v.Sub(Vector3{1, 2, 1}))
}
