package gpio

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

func TestLineString(t *testing.T) {
	assert.Equal(t, "clock", ShiftClock.String())
	assert.Equal(t, "row-c", RowC.String())
	assert.Equal(t, "Line(9)", Line(9).String())
}

func TestParseLine(t *testing.T) {
	for l := Line(0); l < NumLines; l++ {
		got, err := ParseLine(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLine("oe")
	assert.Error(t, err)
}

func TestPinNumbers(t *testing.T) {
	got := PinNumbers(types.DefaultPins)
	assert.Equal(t, [NumLines]int{11, 9, 8, 22, 23, 24}, got)
}

func TestSpin(t *testing.T) {
	start := time.Now()
	Spin(200 * time.Microsecond)()
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Microsecond)

	// zero and negative widths must not block
	Spin(0)()
	Spin(-time.Second)()
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Set(ShiftClock, true)
	r.Set(ShiftClock, true)
	r.Set(ShiftClock, false)
	r.Set(ShiftClock, true)
	r.Set(Strobe, false)

	assert.Equal(t, 2, r.Pulses(ShiftClock))
	assert.Equal(t, 0, r.Pulses(Strobe))
	assert.True(t, r.Level(ShiftClock))
	assert.Len(t, r.Events, 5)

	r.Reset()
	assert.Empty(t, r.Events)
	assert.Equal(t, 0, r.Pulses(ShiftClock))
	assert.True(t, r.Level(ShiftClock), "levels survive Reset")
}

// fakeRegisters is a register window backed by a word slice.
type fakeRegisters struct {
	words  [BlockSize / 4]uint32
	writes []write
}

type write struct {
	offset uintptr
	value  uint32
}

func (f *fakeRegisters) Read32(offset uintptr) uint32 {
	return f.words[offset/4]
}

func (f *fakeRegisters) Write32(offset uintptr, value uint32) {
	f.words[offset/4] = value
	f.writes = append(f.writes, write{offset, value})
}

func TestRegisterDriverFunctionSelect(t *testing.T) {
	regs := &fakeRegisters{}
	// pin 9 configured as alt0 and pin 22 as input beforehand
	regs.words[0] = 4 << 27
	regs.words[2] = 0xffffffff

	_, err := NewRegisterDriver(regs, types.DefaultPins, nil)
	require.NoError(t, err)

	fsel := func(pin int) uint32 {
		return (regs.words[pin/10] >> uint((pin%10)*3)) & 7
	}
	for _, pin := range PinNumbers(types.DefaultPins) {
		assert.Equal(t, uint32(1), fsel(pin), "pin %d function", pin)
	}
	// untouched pins in the same register keep their function
	assert.Equal(t, uint32(7), fsel(20))
	assert.Equal(t, uint32(7), fsel(29))
}

func TestRegisterDriverSetClear(t *testing.T) {
	regs := &fakeRegisters{}
	d, err := NewRegisterDriver(regs, types.DefaultPins, nil)
	require.NoError(t, err)
	regs.writes = nil

	d.Set(ShiftClock, true)
	d.Set(ShiftData, false)
	d.Set(RowC, true)

	assert.Equal(t, []write{
		{gpset0, 1 << 11},
		{gpclr0, 1 << 9},
		{gpset0, 1 << 24},
	}, regs.writes)
	assert.NoError(t, d.Close())
}

func TestRegisterDriverRejectsBank1(t *testing.T) {
	pins := types.DefaultPins
	pins.Strobe = 40
	_, err := NewRegisterDriver(&fakeRegisters{}, pins, nil)
	assert.Error(t, err)
}

// fakeSysfs builds a gpio class directory for the default pins.
func fakeSysfs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "export"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "unexport"), nil, 0644))
	for _, n := range PinNumbers(types.DefaultPins) {
		dir := filepath.Join(root, "gpio"+strconv.Itoa(n))
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "direction"), []byte("in"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "value"), []byte("0"), 0644))
	}

	oldRoot, oldSettle := sysfsRoot, exportSettle
	sysfsRoot, exportSettle = root, 0
	t.Cleanup(func() { sysfsRoot, exportSettle = oldRoot, oldSettle })
	return root
}

func TestSysfsDriver(t *testing.T) {
	root := fakeSysfs(t)

	d, err := OpenSysfs(types.DefaultPins, nil)
	require.NoError(t, err)

	dir, err := os.ReadFile(filepath.Join(root, "gpio9", "direction"))
	require.NoError(t, err)
	assert.Equal(t, "low", string(dir))

	d.Set(ShiftData, true)
	v, err := os.ReadFile(filepath.Join(root, "gpio9", "value"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))

	d.Set(ShiftData, false)
	v, err = os.ReadFile(filepath.Join(root, "gpio9", "value"))
	require.NoError(t, err)
	assert.Equal(t, "0", string(v))

	assert.NoError(t, d.Close())
}

func TestSysfsDriverMissingPin(t *testing.T) {
	root := fakeSysfs(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "gpio24")))

	_, err := OpenSysfs(types.DefaultPins, nil)
	assert.Error(t, err)
}
