package display

import (
	"strings"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

// TextBuffer holds the character codes shown on the panel, three lines of
// 15 left to right, top to bottom, followed by the lookahead slot.
type TextBuffer struct {
	slots [types.BufferSlots]byte
}

// NewTextBuffer returns a buffer filled with spaces.
func NewTextBuffer() *TextBuffer {
	b := &TextBuffer{}
	b.Fill(0, types.BufferSlots, ' ')
	return b
}

// At returns the code in slot i.
func (b *TextBuffer) At(i int) byte {
	return b.slots[i]
}

// Set stores c in slot i.
func (b *TextBuffer) Set(i int, c byte) {
	b.slots[i] = c
}

// Fill sets slots [from, to) to c.
func (b *TextBuffer) Fill(from, to int, c byte) {
	s := b.slots[from:to]
	for i := range s {
		s[i] = c
	}
}

// Line returns a copy of visible line n (0-2).
func (b *TextBuffer) Line(n int) []byte {
	start := n * types.LineWidth
	return append([]byte(nil), b.slots[start:start+types.LineWidth]...)
}

// SetLine copies up to 15 bytes of s into line n and pads the rest with pad.
func (b *TextBuffer) SetLine(n int, s string, pad byte) {
	start := n * types.LineWidth
	line := b.slots[start : start+types.LineWidth]
	k := copy(line, s)
	for i := k; i < len(line); i++ {
		line[i] = pad
	}
}

// SetText replaces the visible slots with s, truncated or padded with
// spaces to 45 bytes. The lookahead slot is cleared.
func (b *TextBuffer) SetText(s string) {
	visible := b.slots[:types.VisibleSlots]
	k := copy(visible, s)
	for i := k; i < len(visible); i++ {
		visible[i] = ' '
	}
	b.slots[types.LookaheadSlot] = 0
}

// Bytes returns a copy of all 46 slots.
func (b *TextBuffer) Bytes() [types.BufferSlots]byte {
	return b.slots
}

// shiftLeft moves every slot one position left. The lookahead slot keeps
// its value.
func (b *TextBuffer) shiftLeft() {
	copy(b.slots[:types.LookaheadSlot], b.slots[1:])
}

// shiftUp moves the middle and bottom lines up by one line.
func (b *TextBuffer) shiftUp() {
	copy(b.slots[types.TopLine:types.BottomLine], b.slots[types.MiddleLine:types.VisibleSlots])
}

// shiftDown moves the top and middle lines down by one line.
func (b *TextBuffer) shiftDown() {
	copy(b.slots[types.MiddleLine:types.VisibleSlots], b.slots[types.TopLine:types.BottomLine])
}

// String renders the visible lines separated by '|', with unprintable
// codes shown as '.'.
func (b *TextBuffer) String() string {
	var sb strings.Builder
	for i := 0; i < types.VisibleSlots; i++ {
		if i > 0 && i%types.LineWidth == 0 {
			sb.WriteByte('|')
		}
		c := b.slots[i]
		if c < ' ' || c > '~' {
			c = '.'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
