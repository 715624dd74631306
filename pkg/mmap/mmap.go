// Package mmap maps physical peripheral registers into the process.
package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is the physical memory device.
const DevMem = "/dev/mem"

// MemoryMap represents a memory mapped register region
type MemoryMap struct {
	addr   uintptr
	region []byte
}

// NewMemoryMap maps size bytes of physical memory starting at addr
func NewMemoryMap(addr, size uintptr) (*MemoryMap, error) {
	return MapFile(DevMem, addr, size)
}

// MapFile maps size bytes of path starting at offset addr. The file is
// closed again once mapped.
func MapFile(path string, addr, size uintptr) (*MemoryMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	region, err := unix.Mmap(
		int(f.Fd()),
		int64(addr),
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %#x: %w", addr, err)
	}

	return &MemoryMap{addr: addr, region: region}, nil
}

// Close unmaps the region
func (m *MemoryMap) Close() error {
	return unix.Munmap(m.region)
}

// Addr returns the mapped start offset.
func (m *MemoryMap) Addr() uintptr {
	return m.addr
}

// Read32 reads the 32-bit register at byte offset
func (m *MemoryMap) Read32(offset uintptr) uint32 {
	return atomic.LoadUint32(m.word(offset))
}

// Write32 writes the 32-bit register at byte offset
func (m *MemoryMap) Write32(offset uintptr, value uint32) {
	atomic.StoreUint32(m.word(offset), value)
}

func (m *MemoryMap) word(offset uintptr) *uint32 {
	if offset%4 != 0 || int(offset)+4 > len(m.region) {
		panic(fmt.Sprintf("mmap: bad register offset %#x", offset))
	}
	return (*uint32)(unsafe.Pointer(&m.region[offset]))
}
