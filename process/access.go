package process

// Reader defines typed read operations against absolute target addresses.
// Values are decoded using the target's little-endian byte layout with no
// alignment requirement; the target's layout is authoritative and may be
// packed.
type Reader interface {
	// ReadUINT8 reads an unsigned 8-bit integer from the specified address
	ReadUINT8(addr Address) (uint8, error)

	// ReadUINT16 reads an unsigned 16-bit integer from the specified address
	ReadUINT16(addr Address) (uint16, error)

	// ReadUINT32 reads an unsigned 32-bit integer from the specified address
	ReadUINT32(addr Address) (uint32, error)

	// ReadUINT64 reads an unsigned 64-bit integer from the specified address
	ReadUINT64(addr Address) (uint64, error)

	// ReadINT8 reads a signed 8-bit integer from the specified address
	ReadINT8(addr Address) (int8, error)

	// ReadINT16 reads a signed 16-bit integer from the specified address
	ReadINT16(addr Address) (int16, error)

	// ReadINT32 reads a signed 32-bit integer from the specified address
	ReadINT32(addr Address) (int32, error)

	// ReadINT64 reads a signed 64-bit integer from the specified address
	ReadINT64(addr Address) (int64, error)

	// ReadFLOAT32 reads a 32-bit floating point number from the specified address
	ReadFLOAT32(addr Address) (float32, error)

	// ReadFLOAT64 reads a 64-bit floating point number from the specified address
	ReadFLOAT64(addr Address) (float64, error)

	// ReadPOINTER reads a pointer-sized value from the specified address
	ReadPOINTER(addr Address) (Address, error)

	// ReadNTS reads a null-terminated string from the specified address
	// with a maximum length
	ReadNTS(addr Address, maxLength Size) (string, error)

	// ReadBytes reads a fixed-length block of bytes from the specified address
	ReadBytes(addr Address, size Size) ([]byte, error)
}

// Writer defines typed write operations against absolute target addresses.
// Values are encoded little-endian, byte-exact, with no semantic validation.
type Writer interface {
	WriteUINT8(addr Address, value uint8) error
	WriteUINT16(addr Address, value uint16) error
	WriteUINT32(addr Address, value uint32) error
	WriteUINT64(addr Address, value uint64) error
	WriteINT8(addr Address, value int8) error
	WriteINT16(addr Address, value int16) error
	WriteINT32(addr Address, value int32) error
	WriteINT64(addr Address, value int64) error
	WriteFLOAT32(addr Address, value float32) error
	WriteFLOAT64(addr Address, value float64) error

	// WritePOINTER writes a pointer-sized value to the specified address
	WritePOINTER(addr Address, value Address) error

	// WriteBytes writes a block of bytes to the specified address
	WriteBytes(addr Address, data []byte) error
}

// OffsetReader is the capture-relative read surface of a memory blob: every
// offset is applied to the blob's capture base.
type OffsetReader interface {
	// Data returns the raw captured bytes
	Data() []byte

	// Base returns the target address the capture started at
	Base() Address

	OffsetUINT8(offset int64) (uint8, error)
	OffsetUINT16(offset int64) (uint16, error)
	OffsetUINT32(offset int64) (uint32, error)
	OffsetUINT64(offset int64) (uint64, error)
	OffsetINT8(offset int64) (int8, error)
	OffsetINT16(offset int64) (int16, error)
	OffsetINT32(offset int64) (int32, error)
	OffsetINT64(offset int64) (int64, error)
	OffsetFLOAT32(offset int64) (float32, error)
	OffsetFLOAT64(offset int64) (float64, error)

	// OffsetPOINTER reads a pointer-sized value at the given offset
	OffsetPOINTER(offset int64) (Address, error)

	// OffsetNTS reads a null-terminated string at the given offset with a
	// maximum length
	OffsetNTS(offset int64, maxLength Size) (string, error)

	// OffsetBytes reads a fixed-length block at the given offset
	OffsetBytes(offset int64, size Size) ([]byte, error)

	// OffsetBlob returns a sub-view over part of the capture
	OffsetBlob(offset int64, size Size) (OffsetReader, error)
}
