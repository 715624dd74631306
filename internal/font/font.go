// Package font provides the FDS132 character generator: a fixed table of
// 6x7 pixel glyphs indexed by 7-bit character code.
package font

const (
	// NumGlyphs is the number of stored character codes.
	NumGlyphs = 128
	// Rows is the glyph height in pixels.
	Rows = 7
	// Columns is the number of pixel bits used per glyph row.
	Columns = 6
	// FirstBit and LastBit bound the pixel bits of a row byte, left to right.
	FirstBit = 7
	LastBit  = 2

	// Blank is the code substituted for anything outside the table.
	Blank byte = 0
)

// Normalize maps codes above 127 to Blank.
func Normalize(code byte) byte {
	if code >= NumGlyphs {
		return Blank
	}
	return code
}

// Row returns the stored row byte of the glyph for code. Only bits 7..2
// carry pixels. Codes above 127 render as Blank.
func Row(code byte, row int) byte {
	if row < 0 || row >= Rows {
		return 0
	}
	return glyphs[Normalize(code)][row]
}

// Pixel reports whether the pixel at column col (0 = left) of the given
// glyph row is lit.
func Pixel(code byte, row, col int) bool {
	if col < 0 || col >= Columns {
		return false
	}
	return (Row(code, row)>>uint(FirstBit-col))&1 != 0
}

// Glyph returns a copy of the full bitmap for code.
func Glyph(code byte) [Rows]byte {
	return glyphs[Normalize(code)]
}
