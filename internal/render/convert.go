package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/astroview/stackview/internal/imaging"
)

// ErrConversionUnsupported reports that the imaging backend could not bring
// a frame into the reference packed format. The frame cannot be displayed;
// callers skip it rather than treat this as fatal.
var ErrConversionUnsupported = errors.New("frame cannot be converted for display")

// Converter turns decoded frames into display surfaces. Metrics are
// optional; a nil Metrics disables instrumentation.
type Converter struct {
	lib     imaging.Library
	metrics *Metrics
}

// NewConverter builds a converter over the given imaging backend.
func NewConverter(lib imaging.Library, metrics *Metrics) *Converter {
	return &Converter{lib: lib, metrics: metrics}
}

// ConvertImageToSurface produces a surface holding img's pixels in the
// reference packed format. Frames not already in that format are converted
// through the imaging backend first; if that fails, no surface is returned.
// The source is read-only and never retained. The returned surface is
// fully populated for every row.
func (c *Converter) ConvertImageToSurface(img *imaging.Image) (*Surface, error) {
	startedAt := time.Now()

	s, err := c.convert(img)
	c.metrics.observeConversion(img.Format(), time.Since(startedAt), s, err)
	return s, err
}

func (c *Converter) convert(img *imaging.Image) (*Surface, error) {
	src := img
	if img.Format() != imaging.ReferenceFormat {
		converted, err := c.lib.ConvertPixelFormat(img, imaging.ReferenceFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %s source: %v", ErrConversionUnsupported, img.Format(), err)
		}
		src = converted
	}

	s, err := NewSurface(img.Width(), img.Height())
	if err != nil {
		return nil, err
	}

	// Each row is copied independently. The copy length is governed by the
	// destination stride; source and destination may be padded differently,
	// and any destination bytes past the source row stay zeroed.
	for y := 0; y < s.height; y++ {
		copy(s.Row(y), src.Row(y))
	}
	return s, nil
}
