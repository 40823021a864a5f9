//go:build govips && cgo

package imaging

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"
)

var (
	startupOnce sync.Once
	shutdownMu  sync.Mutex
	started     bool
)

// Startup initializes libvips. Safe to call more than once.
func Startup() error {
	startupOnce.Do(func() {
		vips.Startup(&vips.Config{
			MaxCacheFiles: 0,
			MaxCacheMem:   128 * 1024 * 1024,
			MaxCacheSize:  100,
		})

		shutdownMu.Lock()
		started = true
		shutdownMu.Unlock()
	})
	return nil
}

// Shutdown tears libvips down if Startup ran.
func Shutdown() {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if !started {
		return
	}
	vips.Shutdown()
	started = false
}

// NewLibrary returns the backend selected at build time.
func NewLibrary() Library {
	return govipsLibrary{}
}

// govipsLibrary delegates codec work to libvips. Pixels cross the cgo
// boundary as lossless PNG buffers, which keeps the binding to the small
// surface of govips APIs used here.
type govipsLibrary struct{}

func (govipsLibrary) SupportedOutputFormats() []OutputFormat {
	return []OutputFormat{OutputPNG8, OutputJPEG8, OutputWebP8}
}

func (govipsLibrary) LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	ref, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	defer ref.Close()

	pngBytes, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("read pixels of %s: %w", path, err)
	}

	m, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("read pixels of %s: %w", path, err)
	}
	return stdToImage(m)
}

func (govipsLibrary) SaveImage(img *Image, path string, out OutputFormat) error {
	m, err := imageToStd(img)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		return fmt.Errorf("stage pixels: %w", err)
	}

	ref, err := vips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return fmt.Errorf("stage pixels: %w", err)
	}
	defer ref.Close()

	var data []byte
	switch out {
	case OutputPNG8:
		data, _, err = ref.ExportPng(vips.NewPngExportParams())
	case OutputJPEG8:
		params := vips.NewJpegExportParams()
		params.Quality = 90
		data, _, err = ref.ExportJpeg(params)
	case OutputWebP8:
		data, _, err = ref.ExportWebp(vips.NewWebpExportParams())
	default:
		err = fmt.Errorf("output format %s is not supported by this backend", out)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	return nil
}

func (govipsLibrary) ConvertPixelFormat(img *Image, target PixelFormat) (*Image, error) {
	return ConvertPixelFormat(img, target)
}
