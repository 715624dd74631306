package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/fds132-led-golang/internal/config"
	"github.com/fkcurrie/fds132-led-golang/internal/discovery"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
	"github.com/fkcurrie/fds132-led-golang/pkg/panelsim"
)

func TestOpenSim(t *testing.T) {
	hw := config.DefaultConfig().Hardware
	hw.Backend = config.BackendSim

	drv, err := Open(hw)
	require.NoError(t, err)
	defer drv.Close()

	p, ok := drv.(*panelsim.Panel)
	require.True(t, ok)
	drv.Set(gpio.ShiftClock, true)
	assert.Equal(t, 1, p.Clocks())
}

func TestOpenUnknown(t *testing.T) {
	hw := config.DefaultConfig().Hardware
	hw.Backend = "spi"
	_, err := Open(hw)
	assert.Error(t, err)
}

func TestOpenMmapDetectFails(t *testing.T) {
	saved := detect
	defer func() { detect = saved }()
	boom := errors.New("no cpuinfo")
	detect = func() (discovery.Board, error) { return discovery.Board{}, boom }

	hw := config.DefaultConfig().Hardware
	_, err := Open(hw)
	assert.ErrorIs(t, err, boom)
}

func TestSavePreview(t *testing.T) {
	hw := config.DefaultConfig().Hardware
	hw.Backend = config.BackendSim
	drv, err := Open(hw)
	require.NoError(t, err)

	// No path configured, nothing written.
	require.NoError(t, SavePreview(drv, hw))

	hw.Preview = filepath.Join(t.TempDir(), "panel.png")
	require.NoError(t, SavePreview(drv, hw))
	info, err := os.Stat(hw.Preview)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSavePreviewIgnoresHardware(t *testing.T) {
	hw := config.DefaultConfig().Hardware
	hw.Preview = filepath.Join(t.TempDir(), "panel.png")
	require.NoError(t, SavePreview(&recorderDriver{}, hw))
	_, err := os.Stat(hw.Preview)
	assert.True(t, os.IsNotExist(err))
}

type recorderDriver struct{ gpio.Recorder }

func (*recorderDriver) Close() error { return nil }
