package outputs

import (
	"errors"
	"fmt"

	"github.com/astroview/stackview/internal/imaging"
)

// Descriptor is the display metadata of one output format: the name shown
// in a save dialog, the file-chooser glob patterns, and the extension
// appended when the user types none.
type Descriptor struct {
	Format           imaging.OutputFormat
	Name             string
	Patterns         []string
	DefaultExtension string
}

// descriptorTable holds the fixed metadata per output format. Extend it
// together with the imaging catalog when a format is added.
var descriptorTable = map[imaging.OutputFormat]Descriptor{
	imaging.OutputBMP8: {
		Format:           imaging.OutputBMP8,
		Name:             "BMP 8-bit",
		Patterns:         []string{"*.bmp"},
		DefaultExtension: ".bmp",
	},
	imaging.OutputPNG8: {
		Format:           imaging.OutputPNG8,
		Name:             "PNG 8-bit",
		Patterns:         []string{"*.png"},
		DefaultExtension: ".png",
	},
	imaging.OutputTIFF16: {
		Format:           imaging.OutputTIFF16,
		Name:             "TIFF 16-bit (uncompressed)",
		Patterns:         []string{"*.tif", "*.tiff"},
		DefaultExtension: ".tif",
	},
	imaging.OutputJPEG8: {
		Format:           imaging.OutputJPEG8,
		Name:             "JPEG 8-bit",
		Patterns:         []string{"*.jpg", "*.jpeg"},
		DefaultExtension: ".jpg",
	},
	imaging.OutputWebP8: {
		Format:           imaging.OutputWebP8,
		Name:             "WebP 8-bit",
		Patterns:         []string{"*.webp"},
		DefaultExtension: ".webp",
	},
}

// ErrNotRegistered reports a descriptor lookup for a format the imaging
// backend never listed as supported. The registry's domain is fixed once it
// is built, so hitting this is a bug in the caller, not a runtime condition.
var ErrNotRegistered = errors.New("output format not registered")

// Registry holds one descriptor per output format the imaging backend
// supports, in the backend's report order. Built once at startup and
// read-only afterwards.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry enumerates the backend's supported output formats and builds
// their descriptors.
func NewRegistry(lib imaging.Library) (*Registry, error) {
	r := &Registry{}
	seen := make(map[imaging.OutputFormat]bool)
	for _, f := range lib.SupportedOutputFormats() {
		if seen[f] {
			continue
		}
		d, ok := descriptorTable[f]
		if !ok {
			return nil, fmt.Errorf("backend reports %s but the descriptor table has no entry for it", f)
		}
		seen[f] = true
		r.descriptors = append(r.descriptors, d)
	}
	return r, nil
}

// Descriptors returns all descriptors in report order.
func (r *Registry) Descriptors() []Descriptor {
	return r.descriptors
}

// Descriptor returns the descriptor of the given format. The error wraps
// ErrNotRegistered when the backend never reported the format.
func (r *Registry) Descriptor(f imaging.OutputFormat) (Descriptor, error) {
	for _, d := range r.descriptors {
		if d.Format == f {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s", ErrNotRegistered, f)
}
