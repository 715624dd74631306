package types

import "fmt"

// ScrollMode selects how input text moves across the panel.
type ScrollMode int

const (
	// ScrollLeft is the horizontal marquee.
	ScrollLeft ScrollMode = iota
	// ScrollUp feeds new lines in at the bottom.
	ScrollUp
	// ScrollDown feeds new lines in at the top.
	ScrollDown
)

func (m ScrollMode) String() string {
	switch m {
	case ScrollLeft:
		return "left"
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	}
	return fmt.Sprintf("ScrollMode(%d)", int(m))
}

// Valid reports whether m is a known scroll mode.
func (m ScrollMode) Valid() bool {
	return m >= ScrollLeft && m <= ScrollDown
}

// EffectMode selects a generative effect that replaces text input.
type EffectMode int

const (
	EffectOff EffectMode = iota
	EffectSnow
	EffectFireworks
)

func (m EffectMode) String() string {
	switch m {
	case EffectOff:
		return "off"
	case EffectSnow:
		return "snow"
	case EffectFireworks:
		return "fireworks"
	}
	return fmt.Sprintf("EffectMode(%d)", int(m))
}

// Valid reports whether m is a known effect mode.
func (m EffectMode) Valid() bool {
	return m >= EffectOff && m <= EffectFireworks
}

// Pins holds the BCM GPIO numbers wired to the panel.
type Pins struct {
	ShiftClock int `json:"shift_clock"`
	ShiftData  int `json:"shift_data"`
	Strobe     int `json:"strobe"`
	RowA       int `json:"row_a"`
	RowB       int `json:"row_b"`
	RowC       int `json:"row_c"`
}

// DefaultPins is the common FDS132 adapter board wiring.
var DefaultPins = Pins{
	ShiftClock: 11, // header pin 23
	ShiftData:  9,  // header pin 21
	Strobe:     8,  // header pin 24
	RowA:       22, // header pin 15
	RowB:       23, // header pin 16
	RowC:       24, // header pin 18
}

// DisplayConfig represents the behavior of the display loop
type DisplayConfig struct {
	ExitOnEOF      bool       `json:"exit_on_eof"`
	StaticText     *string    `json:"static_text,omitempty"`
	DateOverlay    bool       `json:"date_overlay"`
	ScrollDelay    int        `json:"scroll_delay"`
	ScrollMode     ScrollMode `json:"scroll_mode"`
	ThreeLineDelay int        `json:"three_line_delay"`
	EffectMode     EffectMode `json:"effect_mode"`
	Verbose        bool       `json:"verbose"`
	Transliterate  bool       `json:"transliterate"`
	Input          string     `json:"input"`
}

// HardwareConfig represents the GPIO side of the panel
type HardwareConfig struct {
	Backend    string `json:"backend"`
	Chip       string `json:"chip"`
	Pins       Pins   `json:"pins"`
	PulseWidth int    `json:"pulse_width_ns"`
	Preview    string `json:"preview"`
}
