// Package gpio drives the six FDS132 control lines. Every backend offers
// the same idempotent set/clear operation per line followed by a settle
// delay; none of them report errors on the write path.
package gpio

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

// Line names one of the panel control signals.
type Line int

const (
	ShiftClock Line = iota
	ShiftData
	Strobe
	RowA
	RowB
	RowC

	NumLines = 6
)

var lineNames = [NumLines]string{"clock", "data", "strobe", "row-a", "row-b", "row-c"}

func (l Line) String() string {
	if l < 0 || int(l) >= NumLines {
		return fmt.Sprintf("Line(%d)", int(l))
	}
	return lineNames[l]
}

// ParseLine looks up a line by its String name.
func ParseLine(name string) (Line, error) {
	for l, n := range lineNames {
		if n == name {
			return Line(l), nil
		}
	}
	return 0, fmt.Errorf("unknown line %q", name)
}

// Driver sets a single control line high or low.
type Driver interface {
	Set(line Line, high bool)
}

// Delay waits for a line change to settle.
type Delay func()

// NoDelay returns immediately.
func NoDelay() {}

// Spin returns a Delay that busy-waits for at least d. Sleeping is far too
// coarse for sub-microsecond pulses.
func Spin(d time.Duration) Delay {
	if d <= 0 {
		return NoDelay
	}
	return func() {
		for start := time.Now(); time.Since(start) < d; {
		}
	}
}

// PinNumbers orders the configured BCM numbers by Line.
func PinNumbers(p types.Pins) [NumLines]int {
	return [NumLines]int{
		ShiftClock: p.ShiftClock,
		ShiftData:  p.ShiftData,
		Strobe:     p.Strobe,
		RowA:       p.RowA,
		RowB:       p.RowB,
		RowC:       p.RowC,
	}
}

// faults logs the first write failure of each line. The scan loop runs
// thousands of writes per second so repeating the same error is useless.
type faults struct {
	backend  string
	reported [NumLines]bool
}

func (f *faults) report(l Line, err error) {
	if f.reported[l] {
		return
	}
	f.reported[l] = true
	logrus.WithFields(logrus.Fields{
		"backend": f.backend,
		"line":    l.String(),
	}).Errorf("Failed to set line: %v", err)
}
