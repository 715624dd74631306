// Package discovery identifies the Raspberry Pi board the program runs on so
// the register backend can find the peripheral window.
package discovery

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CPUInfo is where the kernel describes the processor.
const CPUInfo = "/proc/cpuinfo"

// Peripheral base addresses.
const (
	BaseBCM2835 uintptr = 0x20000000 // Pi 1, Zero
	BaseBCM2836 uintptr = 0x3F000000 // Pi 2, Pi 3
)

// Board describes the detected hardware.
type Board struct {
	// Model is 1 for ARMv6 boards, 2 for ARMv7/ARMv8 boards and 0 if unknown.
	Model int
	// Revision is the hardware revision code, 0 if none was found.
	Revision uint32
	// PeriphBase is the ARM physical address of the peripherals.
	PeriphBase uintptr
}

// Detect reads /proc/cpuinfo.
func Detect() (Board, error) {
	f, err := os.Open(CPUInfo)
	if err != nil {
		return Board{}, fmt.Errorf("failed to open %s: %w", CPUInfo, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse scans cpuinfo text. Boards that cannot be identified fall back to
// the BCM2835 base of the first Pi models.
func Parse(r io.Reader) (Board, error) {
	b := Board{PeriphBase: BaseBCM2835}
	digits := 4

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch {
		case key == "model name" && b.Model == 0:
			switch {
			case strings.Contains(value, "ARMv6"):
				b.Model, digits, b.PeriphBase = 1, 4, BaseBCM2835
			case strings.Contains(value, "ARMv7"), strings.Contains(value, "ARMv8"):
				b.Model, digits, b.PeriphBase = 2, 6, BaseBCM2836
			}
		case key == "revision":
			// old style codes may carry an overvolt prefix, keep the low digits
			if len(value) > digits {
				value = value[len(value)-digits:]
			}
			rev, err := strconv.ParseUint(value, 16, 32)
			if err != nil {
				return b, fmt.Errorf("bad revision %q: %w", value, err)
			}
			b.Revision = uint32(rev)
		}
	}
	if err := sc.Err(); err != nil {
		return b, err
	}
	return b, nil
}
