package alloc

import (
	"encoding/binary"
	"errors"
	"math"

	"memreach/process"
)

// fakeHandle simulates a target address space with a byte buffer standing in
// for remote memory. Every transfer is recorded so tests can assert on the
// exact read/write pattern.
type fakeHandle struct {
	base    process.Address
	mem     []byte
	ptrSize uint

	readAddrs  []process.Address // address of every ReadMemory call
	writeAddrs []process.Address // address of every WriteMemory call
	shortRead  int               // if > 0, ReadMemory reports this count with no error
	shortWrite int               // if > 0, WriteMemory reports this count with no error
	readErr    error             // if set, ReadMemory fails outright
	writeErr   error             // if set, WriteMemory fails outright
}

var _ process.Handle = (*fakeHandle)(nil)

func newFakeHandle(base process.Address, size int) *fakeHandle {
	return &fakeHandle{base: base, mem: make([]byte, size), ptrSize: 8}
}

func (f *fakeHandle) Pid() process.ProcessID { return 4242 }

func (f *fakeHandle) PointerSize() uint { return f.ptrSize }

func (f *fakeHandle) Close() error { return nil }

func (f *fakeHandle) slice(addr process.Address, n int) ([]byte, error) {
	if addr < f.base || uint64(addr)+uint64(n) > uint64(f.base)+uint64(len(f.mem)) {
		return nil, errors.New("bad address")
	}
	off := uint64(addr - f.base)
	return f.mem[off : off+uint64(n)], nil
}

func (f *fakeHandle) ReadMemory(addr process.Address, buf []byte) (int, error) {
	f.readAddrs = append(f.readAddrs, addr)
	if f.readErr != nil {
		return 0, f.readErr
	}

	src, err := f.slice(addr, len(buf))
	if err != nil {
		return 0, err
	}
	copy(buf, src)

	if f.shortRead > 0 && f.shortRead < len(buf) {
		return f.shortRead, nil
	}
	return len(buf), nil
}

func (f *fakeHandle) WriteMemory(addr process.Address, data []byte) (int, error) {
	f.writeAddrs = append(f.writeAddrs, addr)
	if f.writeErr != nil {
		return 0, f.writeErr
	}

	dst, err := f.slice(addr, len(data))
	if err != nil {
		return 0, err
	}
	copy(dst, data)

	if f.shortWrite > 0 && f.shortWrite < len(data) {
		return f.shortWrite, nil
	}
	return len(data), nil
}

func (f *fakeHandle) poke32(addr process.Address, v uint32) {
	dst, err := f.slice(addr, 4)
	if err != nil {
		panic(err)
	}
	binary.LittleEndian.PutUint32(dst, v)
}

func (f *fakeHandle) poke64(addr process.Address, v uint64) {
	dst, err := f.slice(addr, 8)
	if err != nil {
		panic(err)
	}
	binary.LittleEndian.PutUint64(dst, v)
}

func (f *fakeHandle) pokeF32(addr process.Address, v float32) {
	f.poke32(addr, math.Float32bits(v))
}
