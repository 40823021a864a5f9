package imaging

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestConvertMono8ToReference(t *testing.T) {
	img, err := NewImage(3, 2, PixMono8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	for y := 0; y < 2; y++ {
		row := img.Row(y)
		for x := 0; x < 3; x++ {
			row[x] = uint8(10 + 100*y + 40*x)
		}
	}

	out, err := ConvertPixelFormat(img, PixBGRA8)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out.Format() != PixBGRA8 {
		t.Fatalf("result format %s", out.Format())
	}
	for y := 0; y < 2; y++ {
		src := img.Row(y)
		dst := out.Row(y)
		for x := 0; x < 3; x++ {
			v := src[x]
			b, g, r, a := dst[4*x], dst[4*x+1], dst[4*x+2], dst[4*x+3]
			if b != v || g != v || r != v {
				t.Fatalf("pixel (%d,%d): got b=%d g=%d r=%d, want %d in all", x, y, b, g, r, v)
			}
			if a != 0xff {
				t.Fatalf("pixel (%d,%d): padding channel %d, want 255", x, y, a)
			}
		}
	}
}

func TestConvertRGB8ChannelOrder(t *testing.T) {
	img, err := NewImage(1, 1, PixRGB8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	row := img.Row(0)
	row[0], row[1], row[2] = 200, 100, 50 // r, g, b

	out, err := ConvertPixelFormat(img, PixBGRA8)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	dst := out.Row(0)
	if dst[0] != 50 || dst[1] != 100 || dst[2] != 200 {
		t.Fatalf("got b=%d g=%d r=%d, want 50/100/200", dst[0], dst[1], dst[2])
	}
}

func TestConvertMono8ToMono16PreservesIntensity(t *testing.T) {
	img, err := NewImage(256, 1, PixMono8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	row := img.Row(0)
	for x := range row {
		row[x] = uint8(x)
	}

	out, err := ConvertPixelFormat(img, PixMono16)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	dst := out.Row(0)
	for x := 0; x < 256; x++ {
		got := binary.LittleEndian.Uint16(dst[2*x:])
		want := uint16(x) * 257
		if got != want {
			t.Fatalf("x=%d: got %d, want %d", x, got, want)
		}
	}
}

func TestConvertFloatSourceClamps(t *testing.T) {
	img, err := NewImage(2, 1, PixMono32f)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	row := img.Row(0)
	binary.LittleEndian.PutUint32(row[0:], math.Float32bits(1.5))
	binary.LittleEndian.PutUint32(row[4:], math.Float32bits(-0.25))

	out, err := ConvertPixelFormat(img, PixMono8)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	dst := out.Row(0)
	if dst[0] != 255 || dst[1] != 0 {
		t.Fatalf("got %d and %d, want 255 and 0", dst[0], dst[1])
	}
}

func TestConvertPalettedSource(t *testing.T) {
	img, err := NewImage(2, 1, PixPal8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	var pal Palette
	pal[7] = [3]uint8{10, 20, 30}
	pal[9] = [3]uint8{200, 150, 100}
	img.SetPalette(&pal)
	row := img.Row(0)
	row[0], row[1] = 7, 9

	out, err := ConvertPixelFormat(img, PixRGB8)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	dst := out.Row(0)
	if dst[0] != 10 || dst[1] != 20 || dst[2] != 30 {
		t.Fatalf("pixel 0: got %v", dst[:3])
	}
	if dst[3] != 200 || dst[4] != 150 || dst[5] != 100 {
		t.Fatalf("pixel 1: got %v", dst[3:6])
	}
}

func TestConvertPalettedWithoutPaletteFails(t *testing.T) {
	img, err := NewImage(2, 2, PixPal8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}

	if _, err := ConvertPixelFormat(img, PixBGRA8); !errors.Is(err, ErrNoPalette) {
		t.Fatalf("got %v, want ErrNoPalette", err)
	}
}

func TestConvertRejectsInvalidTargets(t *testing.T) {
	img, err := NewImage(1, 1, PixMono8)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}

	for _, target := range []PixelFormat{PixInvalid, PixPal8} {
		if _, err := ConvertPixelFormat(img, target); !errors.Is(err, ErrUnsupportedConversion) {
			t.Fatalf("target %s: got %v, want ErrUnsupportedConversion", target, err)
		}
	}
}

func TestConvertSameFormatCopies(t *testing.T) {
	img, err := NewImageWithStride(2, 2, PixMono8, 5)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	img.Row(0)[0], img.Row(0)[1] = 1, 2
	img.Row(1)[0], img.Row(1)[1] = 3, 4

	out, err := ConvertPixelFormat(img, PixMono8)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out == img {
		t.Fatal("conversion must not alias the source")
	}
	if out.Stride() != 2 {
		t.Fatalf("result stride %d, want tight packing", out.Stride())
	}
	if out.Row(0)[0] != 1 || out.Row(0)[1] != 2 || out.Row(1)[0] != 3 || out.Row(1)[1] != 4 {
		t.Fatal("pixel content differs from the source")
	}
}
