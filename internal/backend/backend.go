// Package backend opens the GPIO driver named in the hardware config.
package backend

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/config"
	"github.com/fkcurrie/fds132-led-golang/internal/discovery"
	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
	"github.com/fkcurrie/fds132-led-golang/pkg/panelsim"
)

// Driver is a GPIO driver holding operating system resources.
type Driver interface {
	gpio.Driver
	io.Closer
}

// PreviewPitch is the LED spacing of saved previews in pixels.
const PreviewPitch = 8

// detect is replaced in tests.
var detect = discovery.Detect

// Open returns the driver selected by hw.Backend. Every line starts low.
func Open(hw types.HardwareConfig) (Driver, error) {
	settle := gpio.NoDelay
	if hw.PulseWidth > 0 {
		settle = gpio.Spin(time.Duration(hw.PulseWidth))
	}

	switch hw.Backend {
	case config.BackendMmap:
		board, err := detect()
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"model":    board.Model,
			"revision": fmt.Sprintf("%#x", board.Revision),
			"base":     fmt.Sprintf("%#x", board.PeriphBase),
		}).Debug("Detected board")
		return gpio.OpenRegisterDriver(board.PeriphBase, hw.Pins, settle)
	case config.BackendCdev:
		return gpio.OpenCdev(hw.Chip, hw.Pins, settle)
	case config.BackendPeriph:
		return gpio.OpenPeriph(hw.Pins, settle)
	case config.BackendSysfs:
		return gpio.OpenSysfs(hw.Pins, settle)
	case config.BackendSim:
		return panelsim.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", hw.Backend)
	}
}

// SavePreview writes the simulated panel to hw.Preview when the driver is a
// simulator and a preview path is configured.
func SavePreview(drv Driver, hw types.HardwareConfig) error {
	p, ok := drv.(*panelsim.Panel)
	if !ok || hw.Preview == "" {
		return nil
	}
	if err := p.Save(hw.Preview, PreviewPitch); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	logrus.WithField("path", hw.Preview).Info("Saved panel preview")
	return nil
}
