package imaging

import "testing"

func TestFindMatchingFormat(t *testing.T) {
	cases := []struct {
		out      OutputFormat
		channels int
		want     PixelFormat
	}{
		{OutputBMP8, 1, PixMono8},
		{OutputBMP8, 3, PixRGB8},
		{OutputBMP8, 4, PixBGRA8},
		{OutputPNG8, 1, PixMono8},
		{OutputPNG8, 3, PixRGB8},
		{OutputTIFF16, 1, PixMono16},
		{OutputTIFF16, 3, PixRGB16},
		{OutputJPEG8, 3, PixRGB8},
		{OutputWebP8, 1, PixMono8},
		{OutputTIFF16, 4, PixInvalid},
		{OutputBMP8, 2, PixInvalid},
		{OutputPNG8, 0, PixInvalid},
	}
	for _, c := range cases {
		if got := FindMatchingFormat(c.out, c.channels); got != c.want {
			t.Errorf("FindMatchingFormat(%s, %d) = %s, want %s", c.out, c.channels, got, c.want)
		}
	}
}

func TestFindMatchingFormatSatisfiesBothConstraints(t *testing.T) {
	for out := OutputInvalid + 1; out < numOutputFormats; out++ {
		for channels := 1; channels <= 4; channels++ {
			got := FindMatchingFormat(out, channels)
			if got == PixInvalid {
				continue
			}
			if got.ChannelCount() != channels {
				t.Errorf("(%s, %d): %s has %d channels", out, channels, got, got.ChannelCount())
			}
			if got.BitsPerChannel() != out.RequiredBitsPerChannel() {
				t.Errorf("(%s, %d): %s has %d bits, output needs %d",
					out, channels, got, got.BitsPerChannel(), out.RequiredBitsPerChannel())
			}

			// No other matchable entry may satisfy the same pair.
			for f := PixInvalid + 1; f < numPixelFormats; f++ {
				if f == got || f == PixPal8 {
					continue
				}
				if f.ChannelCount() == channels && f.BitsPerChannel() == out.RequiredBitsPerChannel() {
					t.Errorf("(%s, %d): both %s and %s match", out, channels, got, f)
				}
			}
		}
	}
}

func TestFindMatchingFormatNeverReturnsPalette(t *testing.T) {
	for out := OutputInvalid; out < numOutputFormats+3; out++ {
		for channels := -1; channels <= 8; channels++ {
			if got := FindMatchingFormat(out, channels); got == PixPal8 {
				t.Fatalf("FindMatchingFormat(%s, %d) returned the palette format", out, channels)
			}
		}
	}
}
