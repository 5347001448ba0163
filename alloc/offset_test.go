package alloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"memreach/process"
)

func TestOffsetAccessors(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteUINT32Offset(0x20, 0x11223344))
	v, err := a.ReadUINT32Offset(0x20)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), v)

	// the same bytes are visible through the absolute address
	abs, err := a.ReadUINT32(0x1020)
	require.NoError(t, err)
	require.Equal(t, v, abs)

	require.NoError(t, a.WriteFLOAT32Offset(0x30, 1.5))
	fv, err := a.ReadFLOAT32Offset(0x30)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), fv)

	require.NoError(t, a.WriteINT32Offset(0x40, -9))
	iv, err := a.ReadINT32Offset(0x40)
	require.NoError(t, err)
	require.Equal(t, int32(-9), iv)

	bv, err := a.ReadBOOLOffset(0x40) // low byte of -9 is non-zero
	require.NoError(t, err)
	require.True(t, bv)
}

func TestReadWriteAtBase(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteAtBase([]byte{9, 8, 7}))
	got, err := a.ReadAtBase(3)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8, 7}, got)
}

func TestWriteAllBufferedChunks(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	payload := bytes.Repeat([]byte{0xAB}, 10)
	require.NoError(t, a.WriteAllBuffered(payload, 4))

	// 4+4+2 bytes across three transfers at the expected addresses
	require.Equal(t, []process.Address{0x1000, 0x1004, 0x1008}, f.writeAddrs)

	got, err := a.ReadAtBase(10)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestWriteAllBufferedOffsetAbortsOnFailure(t *testing.T) {
	f := newFakeHandle(0x1000, 0x10)
	a := Existing(f, 0x1000)

	// second chunk runs past the mapped region and must abort the rest
	err := a.WriteAllBufferedOffset(0xC, bytes.Repeat([]byte{1}, 8), 4)
	require.Error(t, err)
	require.Len(t, f.writeAddrs, 2)
}

func TestWriteAllBufferedRejectsBadChunkSize(t *testing.T) {
	f := newFakeHandle(0x1000, 0x10)
	a := Existing(f, 0x1000)

	require.Error(t, a.WriteAllBuffered([]byte{1}, 0))
	require.Error(t, a.WriteAllBuffered([]byte{1}, -3))
}
