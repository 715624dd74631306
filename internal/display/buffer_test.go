package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

func TestNewTextBufferSpaces(t *testing.T) {
	b := NewTextBuffer()
	for i, c := range b.Bytes() {
		assert.Equal(t, byte(' '), c, "slot %d", i)
	}
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short is padded", "Hello", "Hello" + strings.Repeat(" ", 40)},
		{"long is truncated", strings.Repeat("x", 50), strings.Repeat("x", 45)},
		{"exact", strings.Repeat("abc", 15), strings.Repeat("abc", 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTextBuffer()
			b.SetText(tt.in)
			got := b.Bytes()
			assert.Equal(t, tt.want, string(got[:types.VisibleSlots]))
			assert.Equal(t, byte(0), got[types.LookaheadSlot])
		})
	}
}

func TestLines(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("line one       line two       line three")
	assert.Equal(t, "line one       ", string(b.Line(0)))
	assert.Equal(t, "line two       ", string(b.Line(1)))
	assert.Equal(t, "line three     ", string(b.Line(2)))

	// Line returns a copy
	b.Line(0)[0] = 'X'
	assert.Equal(t, byte('l'), b.At(0))

	b.SetLine(1, "ab", '-')
	assert.Equal(t, "ab-------------", string(b.Line(1)))
}

func TestShifts(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("AAAAAAAAAAAAAAABBBBBBBBBBBBBBBCCCCCCCCCCCCCCC")

	up := *b
	up.shiftUp()
	assert.Equal(t, "BBBBBBBBBBBBBBB", string(up.Line(0)))
	assert.Equal(t, "CCCCCCCCCCCCCCC", string(up.Line(1)))
	assert.Equal(t, "CCCCCCCCCCCCCCC", string(up.Line(2)))

	down := *b
	down.shiftDown()
	assert.Equal(t, "AAAAAAAAAAAAAAA", string(down.Line(0)))
	assert.Equal(t, "AAAAAAAAAAAAAAA", string(down.Line(1)))
	assert.Equal(t, "BBBBBBBBBBBBBBB", string(down.Line(2)))

	left := *b
	left.Set(types.LookaheadSlot, 'Z')
	left.shiftLeft()
	assert.Equal(t, byte('A'), left.At(0))
	assert.Equal(t, byte('B'), left.At(14))
	assert.Equal(t, byte('Z'), left.At(44))
	assert.Equal(t, byte('Z'), left.At(types.LookaheadSlot))
}

func TestString(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("hi")
	b.Set(15, 2)
	b.Set(16, 200)
	want := "hi             |..             |               "
	assert.Equal(t, want, b.String())
}
