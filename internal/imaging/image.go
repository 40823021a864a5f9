package imaging

import (
	"errors"
	"fmt"
)

// Palette maps an 8-bit index to an RGB triple. Required for Pal8 images.
type Palette [256][3]uint8

// Image is a decoded frame: fixed dimensions, a pixel format from the
// catalog, and a row-strided pixel buffer. The stride may exceed the packed
// row width; trailing bytes of each row are padding. Images are treated as
// immutable once decoded.
type Image struct {
	width   int
	height  int
	format  PixelFormat
	stride  int
	pix     []byte
	palette *Palette
}

var errInvalidDimensions = errors.New("invalid image dimensions")

// NewImage allocates a zeroed image with tightly packed rows.
func NewImage(width, height int, format PixelFormat) (*Image, error) {
	return NewImageWithStride(width, height, format, width*format.BytesPerPixel())
}

// NewImageWithStride allocates a zeroed image whose rows are stride bytes
// apart. The stride must cover the packed row width.
func NewImageWithStride(width, height int, format PixelFormat, stride int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errInvalidDimensions, width, height)
	}
	if format == PixInvalid {
		return nil, errors.New("image cannot use the invalid pixel format")
	}
	if min := width * format.BytesPerPixel(); stride < min {
		return nil, fmt.Errorf("stride %d is below the packed row width %d", stride, min)
	}
	return &Image{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		pix:    make([]byte, height*stride),
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Format returns the pixel format of the buffer.
func (img *Image) Format() PixelFormat { return img.format }

// Stride returns the distance in bytes between the starts of adjacent rows.
func (img *Image) Stride() int { return img.stride }

// Row returns the full row buffer, padding included. The slice aliases the
// image's backing storage.
func (img *Image) Row(y int) []byte {
	return img.pix[y*img.stride : (y+1)*img.stride]
}

// Palette returns the palette of a Pal8 image, or nil.
func (img *Image) Palette() *Palette { return img.palette }

// SetPalette attaches a palette. Meaningful only for Pal8 images.
func (img *Image) SetPalette(p *Palette) { img.palette = p }
