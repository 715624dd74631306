package gpio

import (
	"fmt"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/mmap"
)

// BCM283x GPIO block layout.
const (
	// GPIOOffset is the GPIO block offset from the peripheral base.
	GPIOOffset = 0x200000
	// BlockSize is the mapped length of the GPIO block.
	BlockSize = 4 * 1024

	gpfsel0 = 0x00
	gpset0  = 0x1c
	gpclr0  = 0x28
)

// Registers is a 32-bit register window.
type Registers interface {
	Read32(offset uintptr) uint32
	Write32(offset uintptr, value uint32)
}

// RegisterDriver writes the GPSET0/GPCLR0 registers directly. Only bank 0
// pins (0-31) can be used.
type RegisterDriver struct {
	regs   Registers
	masks  [NumLines]uint32
	settle Delay
	mem    *mmap.MemoryMap
}

// NewRegisterDriver configures the panel pins as outputs in regs.
func NewRegisterDriver(regs Registers, pins types.Pins, settle Delay) (*RegisterDriver, error) {
	if settle == nil {
		settle = NoDelay
	}
	d := &RegisterDriver{regs: regs, settle: settle}
	for l, pin := range PinNumbers(pins) {
		if pin < 0 || pin > 31 {
			return nil, fmt.Errorf("pin %d for %s is not in GPIO bank 0", pin, Line(l))
		}
		d.masks[l] = 1 << uint(pin)
		d.setOutput(pin)
	}
	return d, nil
}

// OpenRegisterDriver maps the GPIO block below peripheral base periphBase.
func OpenRegisterDriver(periphBase uintptr, pins types.Pins, settle Delay) (*RegisterDriver, error) {
	mem, err := mmap.NewMemoryMap(periphBase+GPIOOffset, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to map GPIO block: %w", err)
	}
	d, err := NewRegisterDriver(mem, pins, settle)
	if err != nil {
		mem.Close()
		return nil, err
	}
	d.mem = mem
	return d, nil
}

// setOutput switches pin to input first and then to output, the function
// select field must pass through 000.
func (d *RegisterDriver) setOutput(pin int) {
	off := uintptr(gpfsel0 + 4*(pin/10))
	shift := uint((pin % 10) * 3)
	v := d.regs.Read32(off) &^ (7 << shift)
	d.regs.Write32(off, v)
	d.regs.Write32(off, v|(1<<shift))
}

// Set writes the line mask to the set or clear register.
func (d *RegisterDriver) Set(l Line, high bool) {
	if high {
		d.regs.Write32(gpset0, d.masks[l])
	} else {
		d.regs.Write32(gpclr0, d.masks[l])
	}
	d.settle()
}

// Close unmaps the GPIO block when it was opened by OpenRegisterDriver.
func (d *RegisterDriver) Close() error {
	if d.mem == nil {
		return nil
	}
	return d.mem.Close()
}
