package render

import (
	"fmt"
	"image"

	"github.com/astroview/stackview/internal/imaging"
)

const (
	bytesPerPixel = 4
	// Rows start on 16-byte boundaries so surfaces can be handed to the
	// display backend without repacking.
	rowAlignment = 16
)

// Surface is a renderable pixel buffer in the reference packed format
// (BGRA, 8 bits per channel). Its stride is at least the packed row width
// and may exceed it to satisfy the backend's row alignment.
type Surface struct {
	width  int
	height int
	stride int
	pix    []byte
}

// NewSurface allocates a zeroed surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface dimensions %dx%d", width, height)
	}
	stride := alignRow(width * bytesPerPixel)
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, height*stride),
	}, nil
}

func alignRow(n int) int {
	return (n + rowAlignment - 1) &^ (rowAlignment - 1)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the distance in bytes between the starts of adjacent rows.
func (s *Surface) Stride() int { return s.stride }

// Format returns the pixel format of the buffer, always the reference
// packed format.
func (s *Surface) Format() imaging.PixelFormat { return imaging.ReferenceFormat }

// Pix returns the whole backing buffer.
func (s *Surface) Pix() []byte { return s.pix }

// Row returns the writable row buffer, padding included.
func (s *Surface) Row(y int) []byte {
	return s.pix[y*s.stride : (y+1)*s.stride]
}

// ToImage copies the surface into an image.RGBA, dropping the row padding.
// The padding channel becomes opaque alpha.
func (s *Surface) ToImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		row := s.Row(y)
		for x := 0; x < s.width; x++ {
			i := m.PixOffset(x, y)
			m.Pix[i] = row[4*x+2]
			m.Pix[i+1] = row[4*x+1]
			m.Pix[i+2] = row[4*x]
			m.Pix[i+3] = 0xff
		}
	}
	return m
}
