package display

import (
	"math"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

const (
	// Landscape is drawn on the bottom line by both effects. Code 2 is a
	// tree glyph.
	Landscape = "\x02 * *\x02* \x02 * *  "

	// SnowFlake falls from the top line.
	SnowFlake = '*'
	// Tracer marks a rising rocket on the middle line.
	Tracer = 4
	// Burst is the exploded rocket on the top line.
	Burst = '*'
)

func (s *Session) drawLandscape() {
	s.buf.SetLine(2, Landscape, ' ')
}

// snow moves the top line down one line and draws new flakes, each top
// position with probability one half.
func (s *Session) snow() {
	for j := 0; j < types.LineWidth; j++ {
		s.buf.Set(types.MiddleLine+j, s.buf.At(types.TopLine+j))
	}
	s.drawLandscape()
	s.buf.Fill(types.TopLine, types.MiddleLine, ' ')

	for j := 0; j < types.LineWidth; j++ {
		if s.rng.Int31() <= math.MaxInt32/2 {
			s.buf.Set(types.TopLine+j, SnowFlake)
		}
	}
}

// fireworks alternates between launching tracers on the middle line, each
// position with probability 1/16, and bursting them on the top line.
func (s *Session) fireworks() {
	s.drawLandscape()

	s.phase++
	switch s.phase {
	case 1:
		for j := 0; j < types.LineWidth; j++ {
			c := byte(' ')
			if s.rng.Int31() <= math.MaxInt32/16 {
				c = Tracer
			}
			s.buf.Set(types.MiddleLine+j, c)
		}
	case 2:
		for j := 0; j < types.LineWidth; j++ {
			c := byte(' ')
			if s.buf.At(types.MiddleLine+j) == Tracer {
				c = Burst
			}
			s.buf.Set(types.TopLine+j, c)
			s.buf.Set(types.MiddleLine+j, 0)
		}
		s.phase = 0
	}
}
