package panelsim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

var (
	// Background fills the space between LEDs.
	Background = color.RGBA{16, 16, 16, 255}
	// LitColor is a lit LED.
	LitColor = color.RGBA{255, 48, 16, 255}
	// DarkColor is an unlit LED.
	DarkColor = color.RGBA{48, 20, 16, 255}
)

// Image draws the panel with round LEDs pitch pixels apart. One empty LED
// row separates the three text lines as on the real panel.
func (p *Panel) Image(pitch int) *image.RGBA {
	img := newCanvas(pitch)
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	p.drawLEDs(img, clampPitch(pitch))
	return img
}

// ImageOn draws the panel over an SVG backdrop scaled to the whole image.
func (p *Panel) ImageOn(backdrop io.Reader, pitch int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(backdrop)
	if err != nil {
		return nil, fmt.Errorf("failed to read backdrop: %w", err)
	}
	img := newCanvas(pitch)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	p.drawLEDs(img, clampPitch(pitch))
	return img, nil
}

func clampPitch(pitch int) int {
	if pitch < 2 {
		return 2
	}
	return pitch
}

func newCanvas(pitch int) *image.RGBA {
	pitch = clampPitch(pitch)
	gaps := types.Lines - 1
	return image.NewRGBA(image.Rect(0, 0, Width*pitch, (Height+gaps)*pitch))
}

func (p *Panel) drawLEDs(img *image.RGBA, pitch int) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	r := float64(pitch) * 0.4

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, lit := range []bool{false, true} {
		filler.Clear()
		if lit {
			filler.SetColor(LitColor)
		} else {
			filler.SetColor(DarkColor)
		}
		for y := 0; y < Height; y++ {
			gy := y + y/types.PixelRows
			for x := 0; x < Width; x++ {
				if p.pixels[y][x] != lit {
					continue
				}
				cx := (float64(x) + 0.5) * float64(pitch)
				cy := (float64(gy) + 0.5) * float64(pitch)
				rasterx.AddCircle(cx, cy, r, filler)
			}
		}
		filler.Draw()
	}
}

// Encode writes the panel image in format "png", "bmp" or "tiff".
func (p *Panel) Encode(w io.Writer, format string, pitch int) error {
	return EncodeImage(w, format, p.Image(pitch))
}

// EncodeImage writes img in format "png", "bmp" or "tiff".
func EncodeImage(w io.Writer, format string, img image.Image) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// Save writes the panel image to path, the format follows the extension.
func (p *Panel) Save(path string, pitch int) error {
	return SaveImage(path, p.Image(pitch))
}

// SaveImage writes img to path, the format follows the extension.
func SaveImage(path string, img image.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodeImage(f, format, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
