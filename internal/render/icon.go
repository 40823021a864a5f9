package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadIcon reads an icon file and returns it as a surface scaled to the
// requested size. Icons are GUI assets, so they bypass the imaging backend
// and decode with the standard codecs.
func LoadIcon(path string, width, height int, method InterpolationMethod) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	method.Interpolator().Scale(scaled, scaled.Bounds(), m, m.Bounds(), draw.Over, nil)

	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		row := s.Row(y)
		for x := 0; x < width; x++ {
			i := scaled.PixOffset(x, y)
			row[4*x] = scaled.Pix[i+2]
			row[4*x+1] = scaled.Pix[i+1]
			row[4*x+2] = scaled.Pix[i]
			row[4*x+3] = scaled.Pix[i+3]
		}
	}
	return s, nil
}
