package outputs

import (
	"errors"
	"testing"

	"github.com/astroview/stackview/internal/imaging"
)

// fakeLibrary reports a fixed capability list.
type fakeLibrary struct {
	formats []imaging.OutputFormat
}

func (f *fakeLibrary) SupportedOutputFormats() []imaging.OutputFormat {
	return f.formats
}

func (f *fakeLibrary) LoadImage(string) (*imaging.Image, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLibrary) SaveImage(*imaging.Image, string, imaging.OutputFormat) error {
	return errors.New("not implemented")
}

func (f *fakeLibrary) ConvertPixelFormat(img *imaging.Image, target imaging.PixelFormat) (*imaging.Image, error) {
	return imaging.ConvertPixelFormat(img, target)
}

func TestRegistryPreservesReportOrder(t *testing.T) {
	lib := &fakeLibrary{formats: []imaging.OutputFormat{
		imaging.OutputTIFF16,
		imaging.OutputBMP8,
		imaging.OutputPNG8,
	}}
	r, err := NewRegistry(lib)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	descrs := r.Descriptors()
	if len(descrs) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(descrs))
	}
	wantOrder := []imaging.OutputFormat{imaging.OutputTIFF16, imaging.OutputBMP8, imaging.OutputPNG8}
	for i, want := range wantOrder {
		if descrs[i].Format != want {
			t.Fatalf("position %d: got %s, want %s", i, descrs[i].Format, want)
		}
	}
}

func TestRegistryIgnoresDuplicateReports(t *testing.T) {
	lib := &fakeLibrary{formats: []imaging.OutputFormat{
		imaging.OutputPNG8,
		imaging.OutputPNG8,
		imaging.OutputBMP8,
	}}
	r, err := NewRegistry(lib)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if got := len(r.Descriptors()); got != 2 {
		t.Fatalf("got %d descriptors, want 2", got)
	}
}

func TestRegistryDescriptorLookup(t *testing.T) {
	lib := &fakeLibrary{formats: []imaging.OutputFormat{
		imaging.OutputBMP8,
		imaging.OutputTIFF16,
		imaging.OutputPNG8,
	}}
	r, err := NewRegistry(lib)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	d, err := r.Descriptor(imaging.OutputTIFF16)
	if err != nil {
		t.Fatalf("lookup tiff: %v", err)
	}
	if d.Name != "TIFF 16-bit (uncompressed)" {
		t.Fatalf("tiff name %q", d.Name)
	}
	if len(d.Patterns) != 2 || d.Patterns[0] != "*.tif" || d.Patterns[1] != "*.tiff" {
		t.Fatalf("tiff patterns %v", d.Patterns)
	}
	if d.DefaultExtension != ".tif" {
		t.Fatalf("tiff default extension %q", d.DefaultExtension)
	}
}

func TestRegistryLookupOfUnreportedFormat(t *testing.T) {
	lib := &fakeLibrary{formats: []imaging.OutputFormat{imaging.OutputPNG8}}
	r, err := NewRegistry(lib)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if _, err := r.Descriptor(imaging.OutputWebP8); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("got %v, want ErrNotRegistered", err)
	}
}

func TestRegistryCoversRealBackend(t *testing.T) {
	r, err := NewRegistry(imaging.NewLibrary())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	for _, d := range r.Descriptors() {
		if d.Name == "" || len(d.Patterns) == 0 || d.DefaultExtension == "" {
			t.Fatalf("descriptor for %s is incomplete: %+v", d.Format, d)
		}
	}
}
