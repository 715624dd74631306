// Package charset maps UTF-8 text onto the FDS132 character set. The panel
// font replaces some ASCII punctuation with umlauts and symbols; this
// package turns the matching Unicode characters into those codes.
package charset

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/fkcurrie/fds132-led-golang/internal/font"
)

// glyphs lists the font positions of non-ASCII characters.
var glyphs = map[rune]byte{
	'Ä': 91,
	'Ö': 92,
	'Ü': 93,
	'°': 96,
	'ä': 123,
	'ö': 124,
	'ü': 125,
	'ß': 126,
}

// Code returns the font code for r and whether the font has it.
func Code(r rune) (byte, bool) {
	if r < utf8.RuneSelf {
		return byte(r), true
	}
	c, ok := glyphs[r]
	return c, ok
}

type transliterator struct {
	transform.NopResetter
}

// Transliterator returns a transformer from UTF-8 to one font code per
// rune. Runes without a glyph and invalid bytes become font.Blank.
func Transliterator() transform.Transformer {
	return transliterator{}
}

func (transliterator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		size := 1
		if c >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			var r rune
			r, size = utf8.DecodeRune(src[nSrc:])
			var ok bool
			if c, ok = Code(r); !ok {
				c = font.Blank
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// NewReader transliterates everything read from r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Transliterator())
}

// String transliterates s.
func String(s string) string {
	out, _, err := transform.String(Transliterator(), s)
	if err != nil {
		return s
	}
	return out
}
