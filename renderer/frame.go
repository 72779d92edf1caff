package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/polaris-cpu/types"
)

// A rendered frame holding linear radiance values. Pixels are stored row by
// row starting from the top row; each row runs left to right.
type Frame struct {
	W      uint32
	H      uint32
	Pixels []types.Vec3
}

// Allocate a black frame.
func NewFrame(w, h uint32) *Frame {
	return &Frame{
		W:      w,
		H:      h,
		Pixels: make([]types.Vec3, int(w)*int(h)),
	}
}

// Get the radiance at pixel (x, y) where y = 0 is the top row.
func (f *Frame) At(x, y int) types.Vec3 {
	return f.Pixels[y*int(f.W)+x]
}

// Convert a radiance channel to an 8-bit value. Values are clamped to [0, 1];
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(255.999 * v)
}

// Convert the frame into an RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.W), int(f.H)))
	for y := 0; y < int(f.H); y++ {
		for x := 0; x < int(f.W); x++ {
			px := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{Quantize(px[0]), Quantize(px[1]), Quantize(px[2]), 255})
		}
	}
	return img
}

// Encode frame as PNG.
func (f *Frame) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// Encode frame as a plain-text (P3) PPM image.
func (f *Frame) WritePPM(w io.Writer) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", f.W, f.H); err != nil {
		return err
	}
	for _, px := range f.Pixels {
		if _, err := fmt.Fprintf(buf, "%d %d %d\n", Quantize(px[0]), Quantize(px[1]), Quantize(px[2])); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// Save frame to a file. The image format is selected by the file
// extension (.png or .ppm).
func (f *Frame) SaveFile(path string) error {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = f.WritePNG
	case ".ppm":
		encode = f.WritePPM
	default:
		return fmt.Errorf("renderer: unsupported image format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = encode(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
