package gpio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

// PeriphDriver drives the panel through periph.io pin drivers.
type PeriphDriver struct {
	pins   [NumLines]pgpio.PinIO
	settle Delay
	faults faults
}

// OpenPeriph initializes the periph host drivers and claims the pins by
// their BCM names.
func OpenPeriph(pins types.Pins, settle Delay) (*PeriphDriver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph: %w", err)
	}
	if settle == nil {
		settle = NoDelay
	}
	d := &PeriphDriver{settle: settle, faults: faults{backend: "periph"}}
	for l, n := range PinNumbers(pins) {
		name := fmt.Sprintf("GPIO%d", n)
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("no pin named %s for %s", name, Line(l))
		}
		if err := p.Out(pgpio.Low); err != nil {
			return nil, fmt.Errorf("failed to set %s as output: %w", name, err)
		}
		d.pins[l] = p
	}
	return d, nil
}

// Set drives the pin level.
func (d *PeriphDriver) Set(l Line, high bool) {
	level := pgpio.Low
	if high {
		level = pgpio.High
	}
	if err := d.pins[l].Out(level); err != nil {
		d.faults.report(l, err)
	}
	d.settle()
}

// Close halts all pins.
func (d *PeriphDriver) Close() error {
	for _, p := range d.pins {
		if p == nil {
			continue
		}
		if err := p.Halt(); err != nil {
			return err
		}
	}
	return nil
}
