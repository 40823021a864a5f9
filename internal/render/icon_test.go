package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadIconScalesToRequestedSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	src := image.NewRGBA(image.Rect(0, 0, 48, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create icon: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode icon: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close icon: %v", err)
	}

	for _, method := range []InterpolationMethod{InterpolationFast, InterpolationGood, InterpolationBest} {
		s, err := LoadIcon(path, 24, 24, method)
		if err != nil {
			t.Fatalf("method %d: %v", method, err)
		}
		if s.Width() != 24 || s.Height() != 24 {
			t.Fatalf("method %d: got %dx%d", method, s.Width(), s.Height())
		}
		row := s.Row(12)
		if row[4*12] != 40 || row[4*12+1] != 120 || row[4*12+2] != 200 {
			t.Fatalf("method %d: center pixel %v, want bgr 40/120/200", method, row[4*12:4*12+4])
		}
	}
}

func TestLoadIconMissingFile(t *testing.T) {
	if _, err := LoadIcon(filepath.Join(t.TempDir(), "nope.png"), 16, 16, InterpolationFast); err == nil {
		t.Fatal("expected error for a missing icon file")
	}
}
