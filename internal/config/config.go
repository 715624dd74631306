package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

var (
	// ErrInvalidScrollMode is returned for scroll modes outside 0..2.
	ErrInvalidScrollMode = errors.New("invalid scroll mode")
	// ErrInvalidEffectMode is returned for effect modes outside 0..2.
	ErrInvalidEffectMode = errors.New("invalid effect mode")
	// ErrConflictingModes is returned when static text or the date overlay
	// is combined with an effect.
	ErrConflictingModes = errors.New("static text or date cannot be combined with an effect")
	// ErrInvalidDelay is returned for negative delays.
	ErrInvalidDelay = errors.New("delays must not be negative")
)

// Backend names accepted by HardwareConfig.Backend.
const (
	BackendMmap   = "mmap"
	BackendCdev   = "cdev"
	BackendPeriph = "periph"
	BackendSysfs  = "sysfs"
	BackendSim    = "sim"
)

// Config represents the application configuration
type Config struct {
	Display  types.DisplayConfig  `json:"display"`
	Hardware types.HardwareConfig `json:"hardware"`
}

// LoadConfig loads the configuration from a file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: types.DisplayConfig{
			ScrollDelay: 40,
			ScrollMode:  types.ScrollLeft,
			EffectMode:  types.EffectOff,
			Input:       "-",
		},
		Hardware: types.HardwareConfig{
			Backend:    BackendMmap,
			Chip:       "gpiochip0",
			Pins:       types.DefaultPins,
			PulseWidth: 250,
		},
	}
}

// Validate rejects option combinations the display loop cannot run.
func (c *Config) Validate() error {
	d := c.Display
	if !d.ScrollMode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidScrollMode, int(d.ScrollMode))
	}
	if !d.EffectMode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEffectMode, int(d.EffectMode))
	}
	if d.ScrollDelay < 0 || d.ThreeLineDelay < 0 || c.Hardware.PulseWidth < 0 {
		return ErrInvalidDelay
	}
	if d.EffectMode != types.EffectOff && (d.StaticText != nil || d.DateOverlay) {
		return ErrConflictingModes
	}
	switch c.Hardware.Backend {
	case BackendMmap, BackendCdev, BackendPeriph, BackendSysfs, BackendSim:
	default:
		return fmt.Errorf("unknown backend %q", c.Hardware.Backend)
	}
	return nil
}

// Parse builds the configuration from command line arguments. Values from
// the file named by -config are applied first; explicit flags override them.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { Usage(output, name) }

	def := DefaultConfig()
	var (
		path       = fs.String("config", "", "path to JSON config file")
		date       = fs.Bool("d", false, "display date and time")
		exitOnEOF  = fs.Bool("e", false, "exit on EOF, else the last text stays on the display")
		delay      = fs.Int("s", def.Display.ScrollDelay, "scroll delay in refresh passes")
		text       = fs.String("t", "", "text to display")
		scroll     = fs.Int("u", int(def.Display.ScrollMode), "scroll mode: 0 left, 1 up, 2 down")
		verbose    = fs.Bool("v", false, "verbose logging")
		threeLine  = fs.Int("w", def.Display.ThreeLineDelay, "extra delay after 3 lines in vertical scroll")
		effect     = fs.Int("x", int(def.Display.EffectMode), "effect: 0 off, 1 snow, 2 fireworks")
		input      = fs.String("i", def.Display.Input, "input file, - for stdin")
		utf8       = fs.Bool("utf8", false, "transliterate UTF-8 umlauts, sharp s and degree sign")
		backend    = fs.String("backend", def.Hardware.Backend, "GPIO backend: mmap, cdev, periph, sysfs, sim")
		chip       = fs.String("chip", def.Hardware.Chip, "gpiochip for the cdev backend")
		pulseWidth = fs.Int("pulse", def.Hardware.PulseWidth, "line settle time in nanoseconds")
		preview    = fs.String("preview", "", "PNG written on exit by the sim backend")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *path != "" {
		loaded, err := LoadConfig(*path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.Display.DateOverlay = *date
		case "e":
			cfg.Display.ExitOnEOF = *exitOnEOF
		case "s":
			cfg.Display.ScrollDelay = *delay
		case "t":
			t := *text
			cfg.Display.StaticText = &t
		case "u":
			cfg.Display.ScrollMode = types.ScrollMode(*scroll)
		case "v":
			cfg.Display.Verbose = *verbose
		case "w":
			cfg.Display.ThreeLineDelay = *threeLine
		case "x":
			cfg.Display.EffectMode = types.EffectMode(*effect)
		case "i":
			cfg.Display.Input = *input
		case "utf8":
			cfg.Display.Transliterate = *utf8
		case "backend":
			cfg.Hardware.Backend = *backend
		case "chip":
			cfg.Hardware.Chip = *chip
		case "pulse":
			cfg.Hardware.PulseWidth = *pulseWidth
		case "preview":
			cfg.Hardware.Preview = *preview
		}
	})

	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return nil, err
	}
	return cfg, nil
}

// Usage prints the option summary and examples.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, `
Usage: %[1]s [-d] [-e] [-h] [-s int] [-t text] [-u int] [-v] [-w int] [-x int]

-config file  JSON configuration, flags override its values.
-d            display date and time.
-e            exit on EOF, display will go black, else last text will be displayed.
-h            help (this help).
-i file       input file, default stdin.
-s int        scroll delay, default 40.
-t text       text to display.
-u int        scroll mode:
                0 horizontal left.
                1 vertically up.
                2 vertical down.
                default 0.
-v            verbose, logs buffer changes.
-w int        delay to wait after displaying 3 lines in vertical scroll, default 0.
-x int        special effects:
                0 off.
                1 snow.
                2 fireworks.
                default 0.
-utf8         map UTF-8 umlauts, sharp s and degree sign to panel glyphs.
-backend name mmap (default), cdev, periph, sysfs or sim.
-chip name    gpiochip for the cdev backend, default gpiochip0.
-pulse ns     line settle time, default 250.
-preview file PNG snapshot written on exit by the sim backend.

Examples, there are 3 lines of 15 characters available.

Horizontal scrolling text:
%[1]s < example.txt

Vertical scrolling text, keep lines at 15 characters or less, LF works:
%[1]s -u 1 -s 400 < example.txt

Display date and time:
%[1]s -d

Put a specific text on the display, use spaces to format:
%[1]s -t "Hello world"

`, name)
}
