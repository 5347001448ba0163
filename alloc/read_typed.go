package alloc

import (
	"encoding/binary"
	"fmt"
	"math"

	"memreach/process"
)

// ReadUINT8 reads an unsigned 8-bit integer from the specified address
func (a Allocation) ReadUINT8(addr process.Address) (uint8, error) {
	data, err := a.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadUINT16 reads an unsigned 16-bit integer from the specified address
func (a Allocation) ReadUINT16(addr process.Address) (uint16, error) {
	data, err := a.ReadBytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUINT32 reads an unsigned 32-bit integer from the specified address
func (a Allocation) ReadUINT32(addr process.Address) (uint32, error) {
	data, err := a.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUINT64 reads an unsigned 64-bit integer from the specified address
func (a Allocation) ReadUINT64(addr process.Address) (uint64, error) {
	data, err := a.ReadBytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadINT8 reads a signed 8-bit integer from the specified address
func (a Allocation) ReadINT8(addr process.Address) (int8, error) {
	data, err := a.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return int8(data[0]), nil
}

// ReadINT16 reads a signed 16-bit integer from the specified address
func (a Allocation) ReadINT16(addr process.Address) (int16, error) {
	data, err := a.ReadBytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(data)), nil
}

// ReadINT32 reads a signed 32-bit integer from the specified address
func (a Allocation) ReadINT32(addr process.Address) (int32, error) {
	data, err := a.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(data)), nil
}

// ReadINT64 reads a signed 64-bit integer from the specified address
func (a Allocation) ReadINT64(addr process.Address) (int64, error) {
	data, err := a.ReadBytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(data)), nil
}

// ReadFLOAT32 reads a 32-bit floating point number from the specified address
func (a Allocation) ReadFLOAT32(addr process.Address) (float32, error) {
	data, err := a.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

// ReadFLOAT64 reads a 64-bit floating point number from the specified address
func (a Allocation) ReadFLOAT64(addr process.Address) (float64, error) {
	data, err := a.ReadBytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
}

// ReadBOOL reads a byte from the specified address, true when non-zero
func (a Allocation) ReadBOOL(addr process.Address) (bool, error) {
	data, err := a.ReadBytes(addr, 1)
	if err != nil {
		return false, err
	}
	return data[0] > 0, nil
}

// ReadPOINTER reads a pointer-sized value from the specified address. The
// width comes from the handle's PointerSize.
func (a Allocation) ReadPOINTER(addr process.Address) (process.Address, error) {
	size := a.h.PointerSize()
	data, err := a.ReadBytes(addr, process.Size(size))
	if err != nil {
		return 0, err
	}

	switch size {
	case 4:
		return process.Address(binary.LittleEndian.Uint32(data)), nil
	case 8:
		return process.Address(binary.LittleEndian.Uint64(data)), nil
	}
	return 0, fmt.Errorf("unsupported pointer size %d", size)
}
