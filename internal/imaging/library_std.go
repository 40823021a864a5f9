//go:build !govips || !cgo

package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Startup prepares the imaging backend. The pure-Go backend needs none.
func Startup() error {
	return nil
}

// Shutdown releases backend resources.
func Shutdown() {}

// NewLibrary returns the backend selected at build time.
func NewLibrary() Library {
	return stdLibrary{}
}

// stdLibrary encodes and decodes with the standard library plus
// golang.org/x/image, so it builds everywhere without cgo.
type stdLibrary struct{}

func (stdLibrary) SupportedOutputFormats() []OutputFormat {
	return []OutputFormat{OutputBMP8, OutputPNG8, OutputTIFF16, OutputJPEG8}
}

func (stdLibrary) LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return stdToImage(m)
}

func (stdLibrary) SaveImage(img *Image, path string, out OutputFormat) error {
	m, err := imageToStd(img)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}

	switch out {
	case OutputBMP8:
		err = bmp.Encode(f, m)
	case OutputPNG8:
		err = png.Encode(f, m)
	case OutputTIFF16:
		err = tiff.Encode(f, m, &tiff.Options{Compression: tiff.Uncompressed})
	case OutputJPEG8:
		err = jpeg.Encode(f, m, &jpeg.Options{Quality: 90})
	default:
		err = fmt.Errorf("output format %s is not supported by this backend", out)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", path, err)
	}
	return nil
}

func (stdLibrary) ConvertPixelFormat(img *Image, target PixelFormat) (*Image, error) {
	return ConvertPixelFormat(img, target)
}
