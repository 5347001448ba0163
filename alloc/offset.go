package alloc

import (
	"fmt"

	"memreach/process"
)

// Base-relative accessors. These are conveniences over the absolute-address
// primitives for when the allocation base itself is the structure of
// interest.

// ReadAtBase reads size bytes starting at the allocation base.
func (a Allocation) ReadAtBase(size process.Size) ([]byte, error) {
	return a.ReadBytes(a.base, size)
}

// ReadOffset reads size bytes at base+offset.
func (a Allocation) ReadOffset(offset int64, size process.Size) ([]byte, error) {
	return a.ReadBytes(a.base.Add(offset), size)
}

// WriteAtBase writes data starting at the allocation base.
func (a Allocation) WriteAtBase(data []byte) error {
	return a.WriteBytes(a.base, data)
}

// WriteOffset writes data at base+offset.
func (a Allocation) WriteOffset(offset int64, data []byte) error {
	return a.WriteBytes(a.base.Add(offset), data)
}

// ReadBOOLOffset reads a bool at base+offset.
func (a Allocation) ReadBOOLOffset(offset int64) (bool, error) {
	return a.ReadBOOL(a.base.Add(offset))
}

// ReadUINT32Offset reads a uint32 at base+offset.
func (a Allocation) ReadUINT32Offset(offset int64) (uint32, error) {
	return a.ReadUINT32(a.base.Add(offset))
}

// ReadINT32Offset reads an int32 at base+offset.
func (a Allocation) ReadINT32Offset(offset int64) (int32, error) {
	return a.ReadINT32(a.base.Add(offset))
}

// ReadFLOAT32Offset reads a float32 at base+offset.
func (a Allocation) ReadFLOAT32Offset(offset int64) (float32, error) {
	return a.ReadFLOAT32(a.base.Add(offset))
}

// WriteUINT32Offset writes a uint32 at base+offset.
func (a Allocation) WriteUINT32Offset(offset int64, value uint32) error {
	return a.WriteUINT32(a.base.Add(offset), value)
}

// WriteINT32Offset writes an int32 at base+offset.
func (a Allocation) WriteINT32Offset(offset int64, value int32) error {
	return a.WriteINT32(a.base.Add(offset), value)
}

// WriteFLOAT32Offset writes a float32 at base+offset.
func (a Allocation) WriteFLOAT32Offset(offset int64, value float32) error {
	return a.WriteFLOAT32(a.base.Add(offset), value)
}

// WriteAllBuffered writes data starting at the allocation base in chunks of
// at most chunkSize bytes. Designed for large payloads where a single
// transfer may be rejected.
func (a Allocation) WriteAllBuffered(data []byte, chunkSize int) error {
	return a.WriteAllBufferedOffset(0, data, chunkSize)
}

// WriteAllBufferedOffset writes data at base+offset in chunks of at most
// chunkSize bytes. Any failed or short chunk aborts the remainder.
func (a Allocation) WriteAllBufferedOffset(offset int64, data []byte, chunkSize int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("invalid chunk size %d", chunkSize)
	}

	written := 0
	for written < len(data) {
		end := written + chunkSize
		if end > len(data) {
			end = len(data)
		}

		if err := a.WriteBytes(a.base.Add(offset+int64(written)), data[written:end]); err != nil {
			return fmt.Errorf("buffered write at +%#x: %w", offset+int64(written), err)
		}
		written = end
	}

	return nil
}
