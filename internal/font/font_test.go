package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRowNormalization checks that every code above 127 renders as blank.
func TestRowNormalization(t *testing.T) {
	for c := 0; c < 256; c++ {
		for r := 0; r < Rows; r++ {
			got := Row(byte(c), r)
			if c > 127 {
				if got != Row(0, r) {
					t.Errorf("Row(%d, %d) = %#08b, want blank %#08b", c, r, got, Row(0, r))
				}
				continue
			}
			if got != glyphs[c][r] {
				t.Errorf("Row(%d, %d) = %#08b, want %#08b", c, r, got, glyphs[c][r])
			}
		}
	}
}

func TestRowOutOfRange(t *testing.T) {
	assert.Equal(t, byte(0), Row('A', -1))
	assert.Equal(t, byte(0), Row('A', Rows))
}

func TestBlankAndSpace(t *testing.T) {
	assert.Equal(t, [Rows]byte{}, Glyph(Blank))
	assert.Equal(t, [Rows]byte{}, Glyph(' '))
}

// TestGlyphL checks bit orientation: the left stroke of 'L' is column 0.
func TestGlyphL(t *testing.T) {
	for r := 0; r < Rows; r++ {
		assert.True(t, Pixel('L', r, 1), "row %d left stroke", r)
		assert.False(t, Pixel('L', r, 0), "row %d spacing column", r)
	}
	for col := 1; col <= 5; col++ {
		assert.True(t, Pixel('L', Rows-1, col), "bottom bar col %d", col)
	}
	assert.False(t, Pixel('L', 0, 5))
}

func TestPixelColumnBounds(t *testing.T) {
	assert.False(t, Pixel('L', 3, -1))
	assert.False(t, Pixel('L', 3, Columns))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0, 0},
		{'A', 'A'},
		{127, 127},
		{128, Blank},
		{255, Blank},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
