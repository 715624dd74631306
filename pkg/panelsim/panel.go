// Package panelsim simulates an FDS132 panel at the control line level. It
// decodes the shift clock, data, strobe and row select signals exactly as
// the shift register chain does, so anything written through a gpio.Driver
// can be inspected as pixels or saved as an image.
package panelsim

import (
	"strings"
	"sync"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
)

const (
	// Width is the number of LED columns.
	Width = types.PanelColumns
	// Height is the number of LED rows over all three lines.
	Height = types.Lines * types.PixelRows
	// Stages is the length of the shift register chain. Bits shifted
	// beyond it fall off the end.
	Stages = types.VisibleSlots * types.PixelsPerChar
)

// Panel is a simulated display. It implements gpio.Driver.
type Panel struct {
	mu      sync.Mutex
	levels  [gpio.NumLines]bool
	chain   [Stages]bool
	pixels  [Height][Width]bool
	clocks  int
	strobes int
}

// New returns a dark panel with all lines low.
func New() *Panel {
	return &Panel{}
}

// Set applies a line change. Rising clock edges shift the data level into
// the chain, rising strobe edges latch the chain into the selected row.
func (p *Panel) Set(l gpio.Line, high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rising := high && !p.levels[l]
	p.levels[l] = high
	if !rising {
		return
	}

	switch l {
	case gpio.ShiftClock:
		copy(p.chain[1:], p.chain[:Stages-1])
		p.chain[0] = p.levels[gpio.ShiftData]
		p.clocks++
	case gpio.Strobe:
		p.latch()
		p.strobes++
	}
}

// latch copies the chain into the pixel row addressed by the row select
// lines. Stage 0 holds the last bit shifted, the right pixel of the first
// character. Select code 7 addresses no row.
func (p *Panel) latch() {
	sel := 0
	if p.levels[gpio.RowA] {
		sel |= 1
	}
	if p.levels[gpio.RowB] {
		sel |= 2
	}
	if p.levels[gpio.RowC] {
		sel |= 4
	}
	if sel >= types.PixelRows {
		return
	}
	y := sel + 1
	if sel == types.PixelRows-1 {
		y = 0
	}

	for s, on := range p.chain {
		char := s / types.PixelsPerChar
		line := char / types.LineWidth
		x := (char%types.LineWidth)*types.PixelsPerChar + types.PixelsPerChar - 1 - s%types.PixelsPerChar
		p.pixels[line*types.PixelRows+y][x] = on
	}
}

// Pixel reports whether the LED at column x, row y is lit.
func (p *Panel) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixels[y][x]
}

// Clocks returns the number of shift clock pulses seen.
func (p *Panel) Clocks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clocks
}

// Strobes returns the number of latch pulses seen.
func (p *Panel) Strobes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.strobes
}

// Clear turns all LEDs off.
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pixels = [Height][Width]bool{}
}

// Close implements io.Closer so the panel can stand in for a hardware
// backend.
func (p *Panel) Close() error {
	return nil
}

// String draws the panel with '#' for lit and '.' for dark LEDs, one text
// line per LED row.
func (p *Panel) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if p.pixels[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
