package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

// CdevDriver drives the panel through the GPIO character device.
type CdevDriver struct {
	lines  [NumLines]*gpiocdev.Line
	settle Delay
	faults faults
}

// OpenCdev requests the six panel lines on chip as outputs, initially low.
func OpenCdev(chip string, pins types.Pins, settle Delay) (*CdevDriver, error) {
	if settle == nil {
		settle = NoDelay
	}
	d := &CdevDriver{settle: settle, faults: faults{backend: "cdev"}}
	for l, pin := range PinNumbers(pins) {
		line, err := gpiocdev.RequestLine(chip, pin,
			gpiocdev.AsOutput(0),
			gpiocdev.WithConsumer("fds132"))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("failed to request %s line %d on %s: %w", Line(l), pin, chip, err)
		}
		d.lines[l] = line
	}
	return d, nil
}

// Set writes the line value.
func (d *CdevDriver) Set(l Line, high bool) {
	v := 0
	if high {
		v = 1
	}
	if err := d.lines[l].SetValue(v); err != nil {
		d.faults.report(l, err)
	}
	d.settle()
}

// Close releases all requested lines.
func (d *CdevDriver) Close() error {
	var first error
	for i, line := range d.lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil && first == nil {
			first = err
		}
		d.lines[i] = nil
	}
	return first
}
