package gpio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

var (
	// sysfsRoot is the legacy GPIO class directory.
	sysfsRoot = "/sys/class/gpio"
	// exportSettle gives udev time to create the pin directory.
	exportSettle = 100 * time.Millisecond
)

// Pin represents a GPIO output pin using the sysfs interface. The value
// file stays open; reopening it on every write is too slow for scan-out.
type Pin struct {
	number int
	value  *os.File
}

// NewPin exports number and configures it as an output driven low.
func NewPin(number int) (*Pin, error) {
	logrus.Debugf("Creating GPIO pin %d using sysfs", number)

	if err := exportPin(number); err != nil {
		// EBUSY means it is already exported
		if !errors.Is(err, syscall.EBUSY) && !os.IsExist(err) {
			return nil, fmt.Errorf("failed to export pin %d: %w", number, err)
		}
		logrus.Debugf("Pin %d may already be exported, continuing...", number)
	}

	time.Sleep(exportSettle)

	if err := setPinDirection(number, "low"); err != nil {
		return nil, fmt.Errorf("failed to set pin %d direction: %w", number, err)
	}

	f, err := os.OpenFile(pinPath(number, "value"), os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open value of pin %d: %w", number, err)
	}

	return &Pin{number: number, value: f}, nil
}

// SetValue writes the pin level.
func (p *Pin) SetValue(high bool) error {
	b := []byte{'0'}
	if high {
		b[0] = '1'
	}
	_, err := p.value.WriteAt(b, 0)
	return err
}

// Close closes the value file and unexports the pin.
func (p *Pin) Close() error {
	logrus.Debugf("Closing GPIO pin %d", p.number)
	err := p.value.Close()
	if uerr := unexportPin(p.number); uerr != nil {
		// the pin might already be cleaned up
		logrus.Warnf("failed to unexport pin %d: %v", p.number, uerr)
	}
	return err
}

// SysfsDriver drives the panel through /sys/class/gpio.
type SysfsDriver struct {
	pins   [NumLines]*Pin
	settle Delay
	faults faults
}

// OpenSysfs exports and configures the six panel pins.
func OpenSysfs(pins types.Pins, settle Delay) (*SysfsDriver, error) {
	if settle == nil {
		settle = NoDelay
	}
	d := &SysfsDriver{settle: settle, faults: faults{backend: "sysfs"}}
	for l, n := range PinNumbers(pins) {
		p, err := NewPin(n)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("failed to open %s: %w", Line(l), err)
		}
		d.pins[l] = p
	}
	return d, nil
}

// Set writes the pin value.
func (d *SysfsDriver) Set(l Line, high bool) {
	if err := d.pins[l].SetValue(high); err != nil {
		d.faults.report(l, err)
	}
	d.settle()
}

// Close releases all pins.
func (d *SysfsDriver) Close() error {
	var first error
	for i, p := range d.pins {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
		d.pins[i] = nil
	}
	return first
}

func pinPath(number int, attr string) string {
	return filepath.Join(sysfsRoot, "gpio"+strconv.Itoa(number), attr)
}

func exportPin(number int) error {
	return writeAttr(filepath.Join(sysfsRoot, "export"), strconv.Itoa(number))
}

func unexportPin(number int) error {
	return writeAttr(filepath.Join(sysfsRoot, "unexport"), strconv.Itoa(number))
}

// setPinDirection accepts "in", "out", "low" or "high"; the last two set
// output with an initial level without a glitch.
func setPinDirection(number int, direction string) error {
	return writeAttr(pinPath(number, "direction"), direction)
}

func writeAttr(path, value string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(value); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
