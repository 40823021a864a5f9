package imaging

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// stdToImage repacks a decoded standard-library image into the catalog's
// layouts, preserving the native channel structure where one exists: gray
// sources stay mono, 16-bit sources keep their depth, paletted sources stay
// indexed. Everything else lands in RGB8.
func stdToImage(m image.Image) (*Image, error) {
	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := m.(type) {
	case *image.Gray:
		img, err := NewImage(w, h, PixMono8)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			row := img.Row(y)
			for x := 0; x < w; x++ {
				row[x] = src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
			}
		}
		return img, nil

	case *image.Gray16:
		img, err := NewImage(w, h, PixMono16)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			row := img.Row(y)
			for x := 0; x < w; x++ {
				binary.LittleEndian.PutUint16(row[2*x:], src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return img, nil

	case *image.Paletted:
		img, err := NewImage(w, h, PixPal8)
		if err != nil {
			return nil, err
		}
		var pal Palette
		for i, c := range src.Palette {
			if i >= len(pal) {
				break
			}
			r, g, b, _ := c.RGBA()
			pal[i] = [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
		img.SetPalette(&pal)
		for y := 0; y < h; y++ {
			row := img.Row(y)
			for x := 0; x < w; x++ {
				row[x] = src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)
			}
		}
		return img, nil

	case *image.RGBA64:
		img, err := NewImage(w, h, PixRGB16)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			row := img.Row(y)
			for x := 0; x < w; x++ {
				c := src.RGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				binary.LittleEndian.PutUint16(row[6*x:], c.R)
				binary.LittleEndian.PutUint16(row[6*x+2:], c.G)
				binary.LittleEndian.PutUint16(row[6*x+4:], c.B)
			}
		}
		return img, nil

	default:
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), m, bounds.Min, draw.Src)
		img, err := NewImage(w, h, PixRGB8)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			row := img.Row(y)
			for x := 0; x < w; x++ {
				i := rgba.PixOffset(x, y)
				row[3*x] = rgba.Pix[i]
				row[3*x+1] = rgba.Pix[i+1]
				row[3*x+2] = rgba.Pix[i+2]
			}
		}
		return img, nil
	}
}

// imageToStd builds a standard-library image over the catalog layouts so the
// codecs can encode it. Palette-indexed and float sources are brought into
// an encodable format first.
func imageToStd(img *Image) (image.Image, error) {
	switch img.format {
	case PixPal8:
		conv, err := ConvertPixelFormat(img, PixRGB8)
		if err != nil {
			return nil, err
		}
		return imageToStd(conv)

	case PixMono32f:
		conv, err := ConvertPixelFormat(img, PixMono16)
		if err != nil {
			return nil, err
		}
		return imageToStd(conv)

	case PixRGB32f:
		conv, err := ConvertPixelFormat(img, PixRGB16)
		if err != nil {
			return nil, err
		}
		return imageToStd(conv)

	case PixMono8:
		m := image.NewGray(image.Rect(0, 0, img.width, img.height))
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				m.SetGray(x, y, color.Gray{Y: row[x]})
			}
		}
		return m, nil

	case PixMono16:
		m := image.NewGray16(image.Rect(0, 0, img.width, img.height))
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				m.SetGray16(x, y, color.Gray16{Y: binary.LittleEndian.Uint16(row[2*x:])})
			}
		}
		return m, nil

	case PixRGB8:
		m := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				m.SetRGBA(x, y, color.RGBA{R: row[3*x], G: row[3*x+1], B: row[3*x+2], A: 0xff})
			}
		}
		return m, nil

	case PixRGB16:
		m := image.NewRGBA64(image.Rect(0, 0, img.width, img.height))
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				m.SetRGBA64(x, y, color.RGBA64{
					R: binary.LittleEndian.Uint16(row[6*x:]),
					G: binary.LittleEndian.Uint16(row[6*x+2:]),
					B: binary.LittleEndian.Uint16(row[6*x+4:]),
					A: 0xffff,
				})
			}
		}
		return m, nil

	case PixBGRA8:
		m := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				// The fourth channel is padding, not coverage.
				m.SetRGBA(x, y, color.RGBA{R: row[4*x+2], G: row[4*x+1], B: row[4*x], A: 0xff})
			}
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: source %s", ErrUnsupportedConversion, img.format)
	}
}
