package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"memreach/process"
)

func TestReadBlobSingleTransfer(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.poke32(0x1010, 0xAABBCCDD)

	a := Existing(f, 0x1000)
	b, err := a.ReadBlob(0x1000, 0x40)
	require.NoError(t, err)

	require.Equal(t, process.Address(0x1000), b.Base())
	require.Len(t, b.Data(), 0x40)
	require.Len(t, f.readAddrs, 1)

	// typed access over the capture costs no further transfers
	v, err := b.ReadUINT32(0x1010)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAABBCCDD), v)

	ov, err := b.OffsetUINT32(0x10)
	require.NoError(t, err)
	require.Equal(t, v, ov)

	require.Len(t, f.readAddrs, 1)
}

func TestBlobIsSnapshot(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.poke32(0x1000, 1)

	a := Existing(f, 0x1000)
	b, err := a.ReadBlob(0x1000, 8)
	require.NoError(t, err)

	// the live target changes; the capture does not follow
	f.poke32(0x1000, 2)

	old, err := b.OffsetUINT32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), old)

	live, err := a.ReadUINT32(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint32(2), live)
}

func TestBlobBounds(t *testing.T) {
	b := NewBlob(0x2000, make([]byte, 8), 8)

	_, err := b.ReadUINT32(0x1FFF)
	require.Error(t, err)

	_, err = b.ReadUINT32(0x2006) // two bytes short
	require.Error(t, err)

	_, err = b.OffsetUINT64(8)
	require.Error(t, err)
}

func TestBlobPointerAndNTS(t *testing.T) {
	data := make([]byte, 0x20)
	copy(data[0x10:], "speedster\x00rest")
	b := NewBlob(0x3000, data, 8)

	data[0] = 0x44
	data[1] = 0x50 // 0x5044 little-endian

	p, err := b.OffsetPOINTER(0)
	require.NoError(t, err)
	require.Equal(t, process.Address(0x5044), p)

	s, err := b.OffsetNTS(0x10, 0x10)
	require.NoError(t, err)
	require.Equal(t, "speedster", s)

	// the scan clips at the capture end instead of failing
	s, err = b.ReadNTS(0x3010, 0x100)
	require.NoError(t, err)
	require.Equal(t, "speedster", s)
}

func TestBlobSubView(t *testing.T) {
	data := make([]byte, 0x20)
	data[0x10] = 42
	b := NewBlob(0x4000, data, 8)

	sub, err := b.OffsetBlob(0x10, 0x10)
	require.NoError(t, err)
	require.Equal(t, process.Address(0x4010), sub.Base())

	v, err := sub.OffsetUINT8(0)
	require.NoError(t, err)
	require.Equal(t, uint8(42), v)

	_, err = b.OffsetBlob(0x18, 0x10) // runs past the capture
	require.Error(t, err)
}

func TestBlob32BitPointer(t *testing.T) {
	data := []byte{0x00, 0x50, 0x00, 0x00}
	b := NewBlob(0x1000, data, 4)

	p, err := b.OffsetPOINTER(0)
	require.NoError(t, err)
	require.Equal(t, process.Address(0x5000), p)
}
