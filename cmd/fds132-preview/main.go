package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/charset"
	"github.com/fkcurrie/fds132-led-golang/internal/display"
	"github.com/fkcurrie/fds132-led-golang/internal/types"
	"github.com/fkcurrie/fds132-led-golang/pkg/panelsim"
)

type options struct {
	text   string
	date   bool
	utf8   bool
	scroll int
	effect int
	ticks  int
	seed   int64
	output string
	pitch  int
	frame  string
	ascii  bool
}

func main() {
	var o options
	flag.StringVar(&o.text, "t", "FDS132 PREVIEW", "text to render")
	flag.BoolVar(&o.date, "d", false, "render the date instead of text")
	flag.BoolVar(&o.utf8, "utf8", false, "transliterate UTF-8 umlauts, sharp s and degree sign")
	flag.IntVar(&o.scroll, "u", int(types.ScrollLeft), "scroll mode used with -ticks: 0 left, 1 up, 2 down")
	flag.IntVar(&o.effect, "x", int(types.EffectOff), "effect used with -ticks: 0 off, 1 snow, 2 fireworks")
	flag.IntVar(&o.ticks, "ticks", 0, "stream the text and render after this many ticks")
	flag.Int64Var(&o.seed, "seed", 1, "random seed for effects")
	flag.StringVar(&o.output, "o", "fds132.png", "output image, .png, .bmp or .tiff")
	flag.IntVar(&o.pitch, "pitch", 8, "LED spacing in pixels")
	flag.StringVar(&o.frame, "frame", "", "SVG drawn behind the LEDs")
	flag.BoolVar(&o.ascii, "ascii", false, "also print the panel as text")
	flag.Parse()

	panel, err := render(o, time.Now())
	if err != nil {
		logrus.Fatalf("Failed to render: %v", err)
	}
	if o.ascii {
		fmt.Print(panel)
	}
	img, err := snapshot(panel, o)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	if err := panelsim.SaveImage(o.output, img); err != nil {
		logrus.Fatalf("%v", err)
	}
	logrus.WithField("path", o.output).Info("Wrote preview")
}

// snapshot draws the panel, over the -frame backdrop when one is given.
func snapshot(panel *panelsim.Panel, o options) (image.Image, error) {
	if o.frame == "" {
		return panel.Image(o.pitch), nil
	}
	f, err := os.Open(o.frame)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return panel.ImageOn(f, o.pitch)
}

// render drives the simulated panel through the real scan-out engine.
func render(o options, now time.Time) (*panelsim.Panel, error) {
	text := o.text
	if o.utf8 {
		text = charset.String(text)
	}

	panel := panelsim.New()
	if o.ticks <= 0 {
		buf := display.NewTextBuffer()
		if o.date {
			buf.SetText(display.FormatDate(now))
		} else {
			buf.SetText(text)
		}
		display.NewScanner(panel).Refresh(buf)
		return panel, nil
	}

	cfg := types.DisplayConfig{
		ScrollDelay: 1,
		ScrollMode:  types.ScrollMode(o.scroll),
		EffectMode:  types.EffectMode(o.effect),
		DateOverlay: o.date,
	}
	if !cfg.ScrollMode.Valid() || !cfg.EffectMode.Valid() {
		return nil, fmt.Errorf("invalid mode: scroll %d effect %d", o.scroll, o.effect)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	session := display.NewSession(panel, display.Options{
		Display: cfg,
		Input:   strings.NewReader(text),
		Now:     func() time.Time { return now },
		Rand:    newRand(o.seed),
		Logger:  logger,
	})
	for session.Ticks() < uint64(o.ticks) {
		if err := session.Pass(); err != nil && !errors.Is(err, display.ErrInputExhausted) {
			return nil, err
		}
		if session.Frozen() {
			break
		}
	}
	display.NewScanner(panel).Refresh(session.Buffer())
	return panel, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
