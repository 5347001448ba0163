package alloc

import (
	"encoding/binary"
	"fmt"
	"math"

	"memreach/process"
)

// Blob is a block of target memory captured into the host at a single point
// in time, with typed accessors over the copy. It is an explicit snapshot
// taken by the caller: it does not track the live target, and pointer values
// inside it may already be stale. Live access keeps going through Allocation.
type Blob struct {
	base    process.Address
	data    []byte
	ptrSize uint
}

var _ process.Reader = (*Blob)(nil)
var _ process.OffsetReader = (*Blob)(nil)

// NewBlob wraps already-captured bytes starting at base in the target's
// address space. ptrSize is the target's pointer width in bytes.
func NewBlob(base process.Address, data []byte, ptrSize uint) *Blob {
	return &Blob{base: base, data: data, ptrSize: ptrSize}
}

// ReadBlob captures size bytes at addr into a Blob with one transfer.
func (a Allocation) ReadBlob(addr process.Address, size process.Size) (*Blob, error) {
	data, err := a.ReadBytes(addr, size)
	if err != nil {
		return nil, err
	}
	return NewBlob(addr, data, a.h.PointerSize()), nil
}

// Data returns the raw captured bytes
func (b *Blob) Data() []byte {
	return b.data
}

// Base returns the target address the capture started at
func (b *Blob) Base() process.Address {
	return b.base
}

// ReadBytes returns size bytes at the absolute target address addr, which
// must fall entirely inside the capture.
func (b *Blob) ReadBytes(addr process.Address, size process.Size) ([]byte, error) {
	if addr < b.base {
		return nil, fmt.Errorf("address %s below blob base %s", addr, b.base)
	}
	offset := uint64(addr - b.base)
	if offset+uint64(size) > uint64(len(b.data)) {
		return nil, fmt.Errorf("address %s + %s beyond blob end", addr, size)
	}
	return b.data[offset : offset+uint64(size)], nil
}

// ReadUINT8 reads an unsigned 8-bit integer from the specified address
func (b *Blob) ReadUINT8(addr process.Address) (uint8, error) {
	data, err := b.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadUINT16 reads an unsigned 16-bit integer from the specified address
func (b *Blob) ReadUINT16(addr process.Address) (uint16, error) {
	data, err := b.ReadBytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUINT32 reads an unsigned 32-bit integer from the specified address
func (b *Blob) ReadUINT32(addr process.Address) (uint32, error) {
	data, err := b.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUINT64 reads an unsigned 64-bit integer from the specified address
func (b *Blob) ReadUINT64(addr process.Address) (uint64, error) {
	data, err := b.ReadBytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadINT8 reads a signed 8-bit integer from the specified address
func (b *Blob) ReadINT8(addr process.Address) (int8, error) {
	v, err := b.ReadUINT8(addr)
	return int8(v), err
}

// ReadINT16 reads a signed 16-bit integer from the specified address
func (b *Blob) ReadINT16(addr process.Address) (int16, error) {
	v, err := b.ReadUINT16(addr)
	return int16(v), err
}

// ReadINT32 reads a signed 32-bit integer from the specified address
func (b *Blob) ReadINT32(addr process.Address) (int32, error) {
	v, err := b.ReadUINT32(addr)
	return int32(v), err
}

// ReadINT64 reads a signed 64-bit integer from the specified address
func (b *Blob) ReadINT64(addr process.Address) (int64, error) {
	v, err := b.ReadUINT64(addr)
	return int64(v), err
}

// ReadFLOAT32 reads a 32-bit floating point number from the specified address
func (b *Blob) ReadFLOAT32(addr process.Address) (float32, error) {
	v, err := b.ReadUINT32(addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFLOAT64 reads a 64-bit floating point number from the specified address
func (b *Blob) ReadFLOAT64(addr process.Address) (float64, error) {
	v, err := b.ReadUINT64(addr)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadPOINTER reads a pointer-sized value from the specified address
func (b *Blob) ReadPOINTER(addr process.Address) (process.Address, error) {
	switch b.ptrSize {
	case 4:
		v, err := b.ReadUINT32(addr)
		return process.Address(v), err
	case 8:
		v, err := b.ReadUINT64(addr)
		return process.Address(v), err
	}
	return 0, fmt.Errorf("unsupported pointer size %d", b.ptrSize)
}

// ReadNTS reads a null-terminated string from the specified address with a
// maximum length. The scan is clipped to the capture.
func (b *Blob) ReadNTS(addr process.Address, maxLength process.Size) (string, error) {
	if addr < b.base {
		return "", fmt.Errorf("address %s below blob base %s", addr, b.base)
	}
	offset := uint64(addr - b.base)
	if offset >= uint64(len(b.data)) {
		return "", fmt.Errorf("address %s beyond blob end", addr)
	}

	end := offset + uint64(maxLength)
	if end > uint64(len(b.data)) {
		end = uint64(len(b.data))
	}

	data := b.data[offset:end]
	for i, c := range data {
		if c == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}

// Capture-relative accessors.

func (b *Blob) OffsetUINT8(offset int64) (uint8, error) {
	return b.ReadUINT8(b.base.Add(offset))
}

func (b *Blob) OffsetUINT16(offset int64) (uint16, error) {
	return b.ReadUINT16(b.base.Add(offset))
}

func (b *Blob) OffsetUINT32(offset int64) (uint32, error) {
	return b.ReadUINT32(b.base.Add(offset))
}

func (b *Blob) OffsetUINT64(offset int64) (uint64, error) {
	return b.ReadUINT64(b.base.Add(offset))
}

func (b *Blob) OffsetINT8(offset int64) (int8, error) {
	return b.ReadINT8(b.base.Add(offset))
}

func (b *Blob) OffsetINT16(offset int64) (int16, error) {
	return b.ReadINT16(b.base.Add(offset))
}

func (b *Blob) OffsetINT32(offset int64) (int32, error) {
	return b.ReadINT32(b.base.Add(offset))
}

func (b *Blob) OffsetINT64(offset int64) (int64, error) {
	return b.ReadINT64(b.base.Add(offset))
}

func (b *Blob) OffsetFLOAT32(offset int64) (float32, error) {
	return b.ReadFLOAT32(b.base.Add(offset))
}

func (b *Blob) OffsetFLOAT64(offset int64) (float64, error) {
	return b.ReadFLOAT64(b.base.Add(offset))
}

func (b *Blob) OffsetPOINTER(offset int64) (process.Address, error) {
	return b.ReadPOINTER(b.base.Add(offset))
}

func (b *Blob) OffsetNTS(offset int64, maxLength process.Size) (string, error) {
	return b.ReadNTS(b.base.Add(offset), maxLength)
}

func (b *Blob) OffsetBytes(offset int64, size process.Size) ([]byte, error) {
	return b.ReadBytes(b.base.Add(offset), size)
}

// OffsetBlob returns a sub-view over part of the capture. The sub-view
// shares the underlying bytes.
func (b *Blob) OffsetBlob(offset int64, size process.Size) (process.OffsetReader, error) {
	addr := b.base.Add(offset)
	data, err := b.ReadBytes(addr, size)
	if err != nil {
		return nil, err
	}
	return NewBlob(addr, data, b.ptrSize), nil
}
