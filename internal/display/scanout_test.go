package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/fds132-led-golang/internal/font"
	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
	"github.com/fkcurrie/fds132-led-golang/pkg/panelsim"
)

func TestGlyphRow(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 0}
	for row, w := range want {
		assert.Equal(t, w, GlyphRow(row), "row %d", row)
	}
}

// TestRefreshPulseCounts checks the per refresh totals for several buffers.
func TestRefreshPulseCounts(t *testing.T) {
	buffers := map[string]func(*TextBuffer){
		"spaces": func(*TextBuffer) {},
		"text":   func(b *TextBuffer) { b.SetText("The quick brown fox jumps over the lazy dog") },
		"high codes": func(b *TextBuffer) {
			for i := 0; i < types.BufferSlots; i++ {
				b.Set(i, byte(128+i))
			}
		},
	}
	for name, setup := range buffers {
		t.Run(name, func(t *testing.T) {
			buf := NewTextBuffer()
			setup(buf)
			rec := &gpio.Recorder{}
			NewScanner(rec).Refresh(buf)

			assert.Equal(t, 7*46*6, rec.Pulses(gpio.ShiftClock))
			assert.Equal(t, 1932, rec.Pulses(gpio.ShiftClock))
			assert.Equal(t, 7, rec.Pulses(gpio.Strobe))
		})
	}
}

// TestRefreshSequence walks the recorded events of one refresh and checks
// row select, data bits and strobe order.
func TestRefreshSequence(t *testing.T) {
	buf := NewTextBuffer()
	buf.SetText("A")
	buf.Set(types.LookaheadSlot, 'W')
	rec := &gpio.Recorder{}
	NewScanner(rec).Refresh(buf)

	ev := rec.Events
	perRow := 3 + types.ShiftsPerRow*3 + 2
	require.Len(t, ev, 7*perRow)

	for row := 0; row < 7; row++ {
		e := ev[row*perRow:]
		assert.Equal(t, gpio.Event{Line: gpio.RowA, High: row&1 != 0}, e[0])
		assert.Equal(t, gpio.Event{Line: gpio.RowB, High: row&2 != 0}, e[1])
		assert.Equal(t, gpio.Event{Line: gpio.RowC, High: row&4 != 0}, e[2])

		r := GlyphRow(row)
		k := 3
		for slot := types.BufferSlots - 1; slot >= 0; slot-- {
			for col := 0; col < font.Columns; col++ {
				want := font.Pixel(buf.At(slot), r, col)
				assert.Equal(t, gpio.Event{Line: gpio.ShiftData, High: want}, e[k], "row %d slot %d col %d", row, slot, col)
				assert.Equal(t, gpio.Event{Line: gpio.ShiftClock, High: true}, e[k+1])
				assert.Equal(t, gpio.Event{Line: gpio.ShiftClock, High: false}, e[k+2])
				k += 3
			}
		}
		assert.Equal(t, gpio.Event{Line: gpio.Strobe, High: true}, e[k])
		assert.Equal(t, gpio.Event{Line: gpio.Strobe, High: false}, e[k+1])
	}
}

// TestRefreshOnSimulatedPanel decodes a refresh through the panel model
// and compares every LED with the font.
func TestRefreshOnSimulatedPanel(t *testing.T) {
	buf := NewTextBuffer()
	buf.SetText("Hello, world!  FDS132 panel   0123456789 \x02\x04\x7f")
	panel := panelsim.New()
	NewScanner(panel).Refresh(buf)

	for slot := 0; slot < types.VisibleSlots; slot++ {
		line, pos := slot/types.LineWidth, slot%types.LineWidth
		for r := 0; r < font.Rows; r++ {
			for col := 0; col < font.Columns; col++ {
				x := pos*font.Columns + col
				y := line*font.Rows + r
				assert.Equal(t, font.Pixel(buf.At(slot), r, col), panel.Pixel(x, y),
					"slot %d (%q) row %d col %d", slot, buf.At(slot), r, col)
			}
		}
	}
}

func TestIdle(t *testing.T) {
	rec := &gpio.Recorder{}
	NewScanner(rec).Idle()
	assert.Equal(t, []gpio.Event{
		{Line: gpio.ShiftClock, High: false},
		{Line: gpio.ShiftData, High: false},
	}, rec.Events)
}
