package display

import (
	"github.com/fkcurrie/fds132-led-golang/internal/font"
	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

// Input control codes.
const (
	LineFeed       = 10
	FormFeed       = 12
	CarriageReturn = 13
)

// scrollLeft moves the marquee one character. Line ends are skipped.
func (s *Session) scrollLeft() error {
	for {
		c, err := s.in.ReadByte()
		if err != nil {
			return s.endOfInput(err)
		}
		if c == LineFeed || c == CarriageReturn {
			continue
		}
		s.buf.Set(types.LookaheadSlot, font.Normalize(c))
		s.buf.shiftLeft()
		return nil
	}
}

// scrollUp moves the lines up and reads a new bottom line.
func (s *Session) scrollUp() error {
	s.log.Debugf("scroll up before: %q", s.buf.String())
	s.buf.shiftUp()
	s.buf.Fill(types.BottomLine, types.VisibleSlots, font.Blank)
	err := s.fillLine(types.BottomLine)
	s.log.Debugf("scroll up after: %q lines=%d", s.buf.String(), s.lineCount)
	return err
}

// scrollDown moves the lines down and reads a new top line.
func (s *Session) scrollDown() error {
	s.log.Debugf("scroll down before: %q", s.buf.String())
	s.buf.shiftDown()
	s.buf.Fill(types.TopLine, types.MiddleLine, font.Blank)
	err := s.fillLine(types.TopLine)
	s.log.Debugf("scroll down after: %q lines=%d", s.buf.String(), s.lineCount)
	return err
}

// fillLine reads up to 15 characters into the line starting at start. A
// line feed ends the line early, a form feed clears the panel and restarts
// the line count. A line feed directly after a full line belongs to that
// line and is dropped.
func (s *Session) fillLine(start int) error {
	if s.lineCount == 3 {
		s.lineCount = 0
	}
	s.lineCount++
	defer s.buf.Set(types.LookaheadSlot, font.Blank)

	for i := 0; i < types.LineWidth; {
		c, err := s.in.ReadByte()
		if err != nil {
			s.fullLine = false
			return s.endOfInput(err)
		}

		switch c {
		case CarriageReturn:
			continue
		case LineFeed:
			if i == 0 && s.fullLine {
				s.fullLine = false
				continue
			}
			s.fullLine = false
			return nil
		case FormFeed:
			s.fullLine = false
			s.lineCount = 0
			s.buf.Fill(0, types.VisibleSlots, ' ')
			return nil
		}

		s.fullLine = false
		s.buf.Set(start+i, font.Normalize(c))
		i++
	}
	s.fullLine = true
	return nil
}
