package renderer

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/polaris-cpu/types"
)

func TestQuantize(t *testing.T) {
	type spec struct {
		in  float64
		exp uint8
	}
	specs := []spec{
		{math.NaN(), 0},
		{math.Inf(-1), 0},
		{-0.5, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{4.2, 255},
		{math.Inf(1), 255},
	}

	for idx, s := range specs {
		if out := Quantize(s.in); out != s.exp {
			t.Fatalf("[spec %d] expected Quantize(%f) to be %d; got %d", idx, s.in, s.exp, out)
		}
	}
}

func testFrame() *Frame {
	f := NewFrame(2, 2)
	f.Pixels[0] = types.RGB(1, 0, 0)
	f.Pixels[1] = types.RGB(0, 1, 0)
	f.Pixels[2] = types.RGB(0, 0, 1)
	f.Pixels[3] = types.RGB(math.NaN(), 2, 0.5)
	return f
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := testFrame().WritePPM(&buf); err != nil {
		t.Fatal(err)
	}

	exp := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n0 255 127\n"
	if buf.String() != exp {
		t.Fatalf("expected PPM output:\n%s\ngot:\n%s", exp, buf.String())
	}
}

func TestImageOrientation(t *testing.T) {
	img := testFrame().Image()

	type spec struct {
		x, y    int
		r, g, b uint8
	}
	specs := []spec{
		{0, 0, 255, 0, 0},
		{1, 0, 0, 255, 0},
		{0, 1, 0, 0, 255},
		{1, 1, 0, 255, 127},
	}

	for idx, s := range specs {
		c := img.RGBAAt(s.x, s.y)
		if c.R != s.r || c.G != s.g || c.B != s.b || c.A != 255 {
			t.Fatalf("[spec %d] expected pixel (%d, %d) to be (%d, %d, %d, 255); got %v", idx, s.x, s.y, s.r, s.g, s.b, c)
		}
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	f := testFrame()

	pngFile := filepath.Join(dir, "frame.png")
	if err := f.SaveFile(pngFile); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(pngFile)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("expected a 2x2 image; got %v", bounds)
	}

	ppmFile := filepath.Join(dir, "frame.PPM")
	if err := f.SaveFile(ppmFile); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(ppmFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
		t.Fatalf("expected a PPM header; got %q", data)
	}

	if err := f.SaveFile(filepath.Join(dir, "frame.bmp")); err == nil {
		t.Fatal("expected an error for an unsupported image format")
	}
}
