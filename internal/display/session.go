// Package display runs the FDS132 refresh loop: it scans the text buffer
// out to the panel continuously and, every scroll delay, applies one
// mutation from the selected text mode or effect.
package display

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
)

// ErrInputExhausted is returned by Run and Pass when the input ends and the
// session is configured to exit on EOF.
var ErrInputExhausted = errors.New("end of input")

// Options configures a Session. Zero values select stdin-free defaults:
// no input, wall clock time, a time seeded random source and the standard
// logger.
type Options struct {
	Display types.DisplayConfig
	Input   io.Reader
	Now     func() time.Time
	Rand    *rand.Rand
	Logger  logrus.FieldLogger
}

// Session owns the text buffer and the tick counters of one display run.
// It is not safe for concurrent use; the refresh loop is its only user.
type Session struct {
	cfg  types.DisplayConfig
	scan *Scanner
	buf  *TextBuffer
	in   *bufio.Reader
	now  func() time.Time
	rng  *rand.Rand
	log  logrus.FieldLogger

	refreshes int
	lineCount int
	phase     int
	frozen    bool
	fullLine  bool
	ticks     uint64
}

// NewSession prepares a session drawing on drv.
func NewSession(drv gpio.Driver, opts Options) *Session {
	s := &Session{
		cfg:  opts.Display,
		scan: NewScanner(drv),
		buf:  NewTextBuffer(),
		now:  opts.Now,
		rng:  opts.Rand,
		log:  opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if opts.Input != nil {
		s.in = bufio.NewReader(opts.Input)
	}

	switch {
	case s.cfg.StaticText != nil:
		s.buf.SetText(*s.cfg.StaticText)
	case s.cfg.DateOverlay:
		s.buf.SetText(FormatDate(s.now()))
	}
	return s
}

// Buffer returns the live text buffer.
func (s *Session) Buffer() *TextBuffer {
	return s.buf
}

// LineCount returns the vertical scroll line counter (0-3).
func (s *Session) LineCount() int {
	return s.lineCount
}

// Frozen reports whether input ended and the display holds its content.
func (s *Session) Frozen() bool {
	return s.frozen
}

// Ticks returns the number of mutations applied so far.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Threshold returns the number of refresh passes before the next tick.
// After three lines of vertical scroll the extra three line delay applies.
func (s *Session) Threshold() int {
	if s.cfg.EffectMode == types.EffectOff && s.lineCount == 3 {
		return s.cfg.ScrollDelay + s.cfg.ThreeLineDelay
	}
	return s.cfg.ScrollDelay
}

// Run refreshes the panel until ctx is done or the input ends with exit on
// EOF set. A blocking input read holds the last latched row on the panel.
func (s *Session) Run(ctx context.Context) error {
	s.log.WithFields(logrus.Fields{
		"scroll": s.cfg.ScrollMode,
		"effect": s.cfg.EffectMode,
		"delay":  s.cfg.ScrollDelay,
		"static": s.cfg.StaticText != nil,
		"date":   s.cfg.DateOverlay,
	}).Info("Starting display loop")

	s.scan.Idle()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Pass(); err != nil {
			return err
		}
	}
}

// Pass scans the panel once and applies a tick when the refresh counter
// reaches the threshold.
func (s *Session) Pass() error {
	s.scan.Refresh(s.buf)

	if s.cfg.EffectMode == types.EffectSnow {
		s.drawLandscape()
	}

	s.refreshes++
	if s.refreshes < s.Threshold() {
		return nil
	}
	s.refreshes = 0
	return s.Tick()
}

// Tick applies one mutation immediately: an effect step, a date refresh or
// a scroll step. Static text and frozen input leave the buffer alone.
func (s *Session) Tick() error {
	s.ticks++
	switch s.cfg.EffectMode {
	case types.EffectSnow:
		s.snow()
		return nil
	case types.EffectFireworks:
		s.fireworks()
		return nil
	}

	switch {
	case s.cfg.DateOverlay:
		s.buf.SetText(FormatDate(s.now()))
		return nil
	case s.cfg.StaticText != nil, s.frozen:
		return nil
	case s.in == nil:
		s.frozen = true
		return nil
	}

	switch s.cfg.ScrollMode {
	case types.ScrollUp:
		return s.scrollUp()
	case types.ScrollDown:
		return s.scrollDown()
	default:
		return s.scrollLeft()
	}
}

// endOfInput applies the EOF policy. Read errors other than EOF end the
// input the same way.
func (s *Session) endOfInput(err error) error {
	if !errors.Is(err, io.EOF) {
		s.log.Warnf("Failed to read input: %v", err)
	}
	if s.cfg.ExitOnEOF {
		return ErrInputExhausted
	}
	s.log.Debug("End of input, holding display")
	s.frozen = true
	return nil
}
