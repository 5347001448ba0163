package alloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"memreach/process"
)

func TestExistingIsPureValueAssembly(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.Equal(t, process.Address(0x1000), a.Base())
	require.Equal(t, process.Handle(f), a.Handle())
	require.Empty(t, f.readAddrs)
	require.Empty(t, f.writeAddrs)
}

func TestRoundTripUnsigned(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteUINT8(0x1000, 0xFE))
	v8, err := a.ReadUINT8(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint8(0xFE), v8)

	require.NoError(t, a.WriteUINT16(0x1010, 0xBEEF))
	v16, err := a.ReadUINT16(0x1010)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), v16)

	require.NoError(t, a.WriteUINT32(0x1020, 0xDEADBEEF))
	v32, err := a.ReadUINT32(0x1020)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), v32)

	require.NoError(t, a.WriteUINT64(0x1030, 0x0102030405060708))
	v64, err := a.ReadUINT64(0x1030)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v64)
}

func TestRoundTripSigned(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteINT8(0x1000, -5))
	i8, err := a.ReadINT8(0x1000)
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	require.NoError(t, a.WriteINT16(0x1010, -30000))
	i16, err := a.ReadINT16(0x1010)
	require.NoError(t, err)
	require.Equal(t, int16(-30000), i16)

	require.NoError(t, a.WriteINT32(0x1020, -123456))
	i32, err := a.ReadINT32(0x1020)
	require.NoError(t, err)
	require.Equal(t, int32(-123456), i32)

	require.NoError(t, a.WriteINT64(0x1030, -1234567890123))
	i64, err := a.ReadINT64(0x1030)
	require.NoError(t, err)
	require.Equal(t, int64(-1234567890123), i64)
}

func TestRoundTripFloat(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteFLOAT32(0x1000, 3.25))
	f32, err := a.ReadFLOAT32(0x1000)
	require.NoError(t, err)
	require.Equal(t, float32(3.25), f32)

	require.NoError(t, a.WriteFLOAT64(0x1010, -2.5e10))
	f64, err := a.ReadFLOAT64(0x1010)
	require.NoError(t, err)
	require.Equal(t, -2.5e10, f64)
}

func TestRoundTripBoolAndPointer(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteBOOL(0x1000, true))
	b, err := a.ReadBOOL(0x1000)
	require.NoError(t, err)
	require.True(t, b)

	require.NoError(t, a.WritePOINTER(0x1010, 0xCAFEBABE))
	p, err := a.ReadPOINTER(0x1010)
	require.NoError(t, err)
	require.Equal(t, process.Address(0xCAFEBABE), p)
}

func TestRoundTripBytesUnaligned(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	payload := []byte{1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, a.WriteBytes(0x1003, payload)) // deliberately unaligned
	got, err := a.ReadBytes(0x1003, 7)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestPartialReadSurfacedAsError(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.shortRead = 3

	a := Existing(f, 0x1000)
	_, err := a.ReadUINT64(0x1000)

	var pte *process.PartialTransferError
	require.ErrorAs(t, err, &pte)
	require.Equal(t, process.Address(0x1000), pte.Addr)
	require.Equal(t, 8, pte.Expected)
	require.Equal(t, 3, pte.Actual)
	require.False(t, pte.Write)
}

func TestPartialWriteSurfacedAsError(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	f.shortWrite = 1

	a := Existing(f, 0x1000)
	err := a.WriteUINT32(0x1000, 7)

	var pte *process.PartialTransferError
	require.ErrorAs(t, err, &pte)
	require.Equal(t, 4, pte.Expected)
	require.Equal(t, 1, pte.Actual)
	require.True(t, pte.Write)
}

func TestReadErrorCarriesPlatformCause(t *testing.T) {
	cause := errors.New("process has exited")
	f := newFakeHandle(0x1000, 0x100)
	f.readErr = cause

	a := Existing(f, 0x1000)
	_, err := a.ReadUINT32(0x1040)

	var re *process.ReadError
	require.ErrorAs(t, err, &re)
	require.Equal(t, process.Address(0x1040), re.Addr)
	require.ErrorIs(t, err, cause)
}

func TestWriteErrorCarriesPlatformCause(t *testing.T) {
	cause := errors.New("access denied")
	f := newFakeHandle(0x1000, 0x100)
	f.writeErr = cause

	a := Existing(f, 0x1000)
	err := a.WriteUINT32(0x1040, 1)

	var we *process.WriteError
	require.ErrorAs(t, err, &we)
	require.Equal(t, process.Address(0x1040), we.Addr)
	require.ErrorIs(t, err, cause)
}

func TestReadNTS(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	require.NoError(t, a.WriteBytes(0x1000, []byte("hello\x00junk")))

	s, err := a.ReadNTS(0x1000, 16)
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	// no terminator inside the scan window returns the whole window
	s, err = a.ReadNTS(0x1000, 4)
	require.NoError(t, err)
	require.Equal(t, "hell", s)
}

func TestZeroLengthTransfers(t *testing.T) {
	f := newFakeHandle(0x1000, 0x100)
	a := Existing(f, 0x1000)

	data, err := a.ReadBytes(0x1000, 0)
	require.NoError(t, err)
	require.Empty(t, data)

	require.NoError(t, a.WriteBytes(0x1000, nil))
	require.Empty(t, f.writeAddrs)
}
