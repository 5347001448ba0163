package alloc

import (
	"encoding/binary"
	"fmt"
	"math"

	"memreach/process"
)

// WriteUINT8 writes an unsigned 8-bit integer to the specified address
func (a Allocation) WriteUINT8(addr process.Address, value uint8) error {
	return a.WriteBytes(addr, []byte{value})
}

// WriteUINT16 writes an unsigned 16-bit integer to the specified address
func (a Allocation) WriteUINT16(addr process.Address, value uint16) error {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, value)
	return a.WriteBytes(addr, buf)
}

// WriteUINT32 writes an unsigned 32-bit integer to the specified address
func (a Allocation) WriteUINT32(addr process.Address, value uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	return a.WriteBytes(addr, buf)
}

// WriteUINT64 writes an unsigned 64-bit integer to the specified address
func (a Allocation) WriteUINT64(addr process.Address, value uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, value)
	return a.WriteBytes(addr, buf)
}

// WriteINT8 writes a signed 8-bit integer to the specified address
func (a Allocation) WriteINT8(addr process.Address, value int8) error {
	return a.WriteBytes(addr, []byte{uint8(value)})
}

// WriteINT16 writes a signed 16-bit integer to the specified address
func (a Allocation) WriteINT16(addr process.Address, value int16) error {
	return a.WriteUINT16(addr, uint16(value))
}

// WriteINT32 writes a signed 32-bit integer to the specified address
func (a Allocation) WriteINT32(addr process.Address, value int32) error {
	return a.WriteUINT32(addr, uint32(value))
}

// WriteINT64 writes a signed 64-bit integer to the specified address
func (a Allocation) WriteINT64(addr process.Address, value int64) error {
	return a.WriteUINT64(addr, uint64(value))
}

// WriteFLOAT32 writes a 32-bit floating point number to the specified address
func (a Allocation) WriteFLOAT32(addr process.Address, value float32) error {
	return a.WriteUINT32(addr, math.Float32bits(value))
}

// WriteFLOAT64 writes a 64-bit floating point number to the specified address
func (a Allocation) WriteFLOAT64(addr process.Address, value float64) error {
	return a.WriteUINT64(addr, math.Float64bits(value))
}

// WriteBOOL writes a byte to the specified address, 1 for true
func (a Allocation) WriteBOOL(addr process.Address, value bool) error {
	var b uint8
	if value {
		b = 1
	}
	return a.WriteUINT8(addr, b)
}

// WritePOINTER writes a pointer-sized value to the specified address. The
// width comes from the handle's PointerSize.
func (a Allocation) WritePOINTER(addr process.Address, value process.Address) error {
	switch a.h.PointerSize() {
	case 4:
		return a.WriteUINT32(addr, uint32(value))
	case 8:
		return a.WriteUINT64(addr, uint64(value))
	}
	return fmt.Errorf("unsupported pointer size %d", a.h.PointerSize())
}
