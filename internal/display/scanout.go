package display

import (
	"github.com/fkcurrie/fds132-led-golang/internal/font"
	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
)

// Scanner shifts a text buffer into the panel shift registers one LED row
// at a time.
type Scanner struct {
	drv gpio.Driver
}

// NewScanner creates a scanner writing to drv.
func NewScanner(drv gpio.Driver) *Scanner {
	return &Scanner{drv: drv}
}

// GlyphRow returns the font row shown while select code row is active. The
// panel counts rows from 1, so select code 6 shows the top font row.
func GlyphRow(row int) int {
	if row == types.PixelRows-1 {
		return 0
	}
	return row + 1
}

// Idle drives clock and data low.
func (s *Scanner) Idle() {
	s.drv.Set(gpio.ShiftClock, false)
	s.drv.Set(gpio.ShiftData, false)
}

// Refresh scans all 7 rows of buf. Each row shifts 46 characters of 6 bits,
// last slot first and the left pixel of each character first, then pulses
// strobe to latch the row.
func (s *Scanner) Refresh(buf *TextBuffer) {
	for row := 0; row < types.PixelRows; row++ {
		s.drv.Set(gpio.RowA, row&1 != 0)
		s.drv.Set(gpio.RowB, row&2 != 0)
		s.drv.Set(gpio.RowC, row&4 != 0)

		r := GlyphRow(row)
		for i := types.BufferSlots - 1; i >= 0; i-- {
			bits := font.Row(buf.At(i), r)
			for bit := font.FirstBit; bit >= font.LastBit; bit-- {
				s.drv.Set(gpio.ShiftData, (bits>>uint(bit))&1 != 0)
				s.drv.Set(gpio.ShiftClock, true)
				s.drv.Set(gpio.ShiftClock, false)
			}
		}

		s.drv.Set(gpio.Strobe, true)
		s.drv.Set(gpio.Strobe, false)
	}
}
