package imaging

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedConversion reports that a source image cannot be brought
	// into the requested pixel format.
	ErrUnsupportedConversion = errors.New("unsupported pixel format conversion")
	// ErrNoPalette reports a Pal8 image with no palette attached.
	ErrNoPalette = errors.New("palette-indexed image has no palette")
)

// Rec. 709 luma weights, used when reducing color to mono. They sum to one,
// so mono-to-mono conversions preserve intensity exactly.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// ConvertPixelFormat returns a new tightly packed image holding img's pixels
// in the target format. The source is read-only; the result shares no
// storage with it. Converting to PixInvalid or PixPal8 fails, as does
// converting a Pal8 source that carries no palette.
func ConvertPixelFormat(img *Image, target PixelFormat) (*Image, error) {
	if img == nil {
		return nil, errors.New("nil source image")
	}
	if target == PixInvalid || target == PixPal8 {
		return nil, fmt.Errorf("%w: target %s", ErrUnsupportedConversion, target)
	}
	if img.format == PixPal8 && img.palette == nil {
		return nil, ErrNoPalette
	}
	if _, ok := pixelFormatSpecs[img.format]; !ok {
		return nil, fmt.Errorf("%w: source %s", ErrUnsupportedConversion, img.format)
	}

	out, err := NewImage(img.width, img.height, target)
	if err != nil {
		return nil, err
	}

	if img.format == target {
		packed := img.width * target.BytesPerPixel()
		for y := 0; y < img.height; y++ {
			copy(out.Row(y), img.Row(y)[:packed])
		}
		return out, nil
	}

	read := pixelReader(img)
	write := pixelWriter(target)
	for y := 0; y < img.height; y++ {
		src := img.Row(y)
		dst := out.Row(y)
		for x := 0; x < img.width; x++ {
			r, g, b := read(src, x)
			write(dst, x, r, g, b)
		}
	}
	return out, nil
}

// pixelReader returns a function yielding the normalized [0,1] RGB intensity
// of pixel x in a row. Mono sources replicate their single channel.
func pixelReader(img *Image) func(row []byte, x int) (r, g, b float64) {
	switch img.format {
	case PixMono8:
		return func(row []byte, x int) (float64, float64, float64) {
			v := float64(row[x]) / 255
			return v, v, v
		}
	case PixMono16:
		return func(row []byte, x int) (float64, float64, float64) {
			v := float64(binary.LittleEndian.Uint16(row[2*x:])) / 65535
			return v, v, v
		}
	case PixMono32f:
		return func(row []byte, x int) (float64, float64, float64) {
			v := float64(math.Float32frombits(binary.LittleEndian.Uint32(row[4*x:])))
			return v, v, v
		}
	case PixRGB8:
		return func(row []byte, x int) (float64, float64, float64) {
			i := 3 * x
			return float64(row[i]) / 255, float64(row[i+1]) / 255, float64(row[i+2]) / 255
		}
	case PixRGB16:
		return func(row []byte, x int) (float64, float64, float64) {
			i := 6 * x
			return float64(binary.LittleEndian.Uint16(row[i:])) / 65535,
				float64(binary.LittleEndian.Uint16(row[i+2:])) / 65535,
				float64(binary.LittleEndian.Uint16(row[i+4:])) / 65535
		}
	case PixRGB32f:
		return func(row []byte, x int) (float64, float64, float64) {
			i := 12 * x
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(row[i:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(row[i+4:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(row[i+8:])))
		}
	case PixBGRA8:
		return func(row []byte, x int) (float64, float64, float64) {
			i := 4 * x
			return float64(row[i+2]) / 255, float64(row[i+1]) / 255, float64(row[i]) / 255
		}
	case PixPal8:
		pal := img.palette
		return func(row []byte, x int) (float64, float64, float64) {
			entry := pal[row[x]]
			return float64(entry[0]) / 255, float64(entry[1]) / 255, float64(entry[2]) / 255
		}
	default:
		return func([]byte, int) (float64, float64, float64) { return 0, 0, 0 }
	}
}

// pixelWriter returns a function storing a normalized RGB intensity as
// pixel x of a row in the given format.
func pixelWriter(format PixelFormat) func(row []byte, x int, r, g, b float64) {
	switch format {
	case PixMono8:
		return func(row []byte, x int, r, g, b float64) {
			row[x] = quantize8(luma(r, g, b))
		}
	case PixMono16:
		return func(row []byte, x int, r, g, b float64) {
			binary.LittleEndian.PutUint16(row[2*x:], quantize16(luma(r, g, b)))
		}
	case PixMono32f:
		return func(row []byte, x int, r, g, b float64) {
			binary.LittleEndian.PutUint32(row[4*x:], math.Float32bits(float32(luma(r, g, b))))
		}
	case PixRGB8:
		return func(row []byte, x int, r, g, b float64) {
			i := 3 * x
			row[i] = quantize8(r)
			row[i+1] = quantize8(g)
			row[i+2] = quantize8(b)
		}
	case PixRGB16:
		return func(row []byte, x int, r, g, b float64) {
			i := 6 * x
			binary.LittleEndian.PutUint16(row[i:], quantize16(r))
			binary.LittleEndian.PutUint16(row[i+2:], quantize16(g))
			binary.LittleEndian.PutUint16(row[i+4:], quantize16(b))
		}
	case PixRGB32f:
		return func(row []byte, x int, r, g, b float64) {
			i := 12 * x
			binary.LittleEndian.PutUint32(row[i:], math.Float32bits(float32(r)))
			binary.LittleEndian.PutUint32(row[i+4:], math.Float32bits(float32(g)))
			binary.LittleEndian.PutUint32(row[i+8:], math.Float32bits(float32(b)))
		}
	default: // PixBGRA8; alpha is opaque padding
		return func(row []byte, x int, r, g, b float64) {
			i := 4 * x
			row[i] = quantize8(b)
			row[i+1] = quantize8(g)
			row[i+2] = quantize8(r)
			row[i+3] = 0xff
		}
	}
}

func luma(r, g, b float64) float64 {
	if r == g && g == b {
		return r
	}
	return lumaR*r + lumaG*g + lumaB*b
}

func quantize8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func quantize16(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * 65535))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
