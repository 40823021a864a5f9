package imaging

import "fmt"

// PixelFormat identifies the in-memory layout of a decoded frame. Every
// format is fully described by its channel count and bits per channel; the
// pair is fixed per identifier for the lifetime of the process.
type PixelFormat int

const (
	// PixInvalid is the "no format" sentinel. FindMatchingFormat returns it
	// when no catalog entry satisfies a request.
	PixInvalid PixelFormat = iota
	// PixPal8 is palette-indexed. It is never a valid conversion target.
	PixPal8
	PixMono8
	PixMono16
	PixMono32f
	PixRGB8
	PixRGB16
	PixRGB32f
	// PixBGRA8 is the reference packed format required by the rendering
	// backend for display surfaces: four 8-bit channels, alpha unused.
	PixBGRA8

	numPixelFormats
)

// ReferenceFormat is the packed layout display surfaces use.
const ReferenceFormat = PixBGRA8

type formatSpec struct {
	channels       int
	bitsPerChannel int
}

var pixelFormatSpecs = map[PixelFormat]formatSpec{
	PixPal8:    {channels: 1, bitsPerChannel: 8},
	PixMono8:   {channels: 1, bitsPerChannel: 8},
	PixMono16:  {channels: 1, bitsPerChannel: 16},
	PixMono32f: {channels: 1, bitsPerChannel: 32},
	PixRGB8:    {channels: 3, bitsPerChannel: 8},
	PixRGB16:   {channels: 3, bitsPerChannel: 16},
	PixRGB32f:  {channels: 3, bitsPerChannel: 32},
	PixBGRA8:   {channels: 4, bitsPerChannel: 8},
}

var pixelFormatNames = map[PixelFormat]string{
	PixInvalid: "invalid",
	PixPal8:    "pal8",
	PixMono8:   "mono8",
	PixMono16:  "mono16",
	PixMono32f: "mono32f",
	PixRGB8:    "rgb8",
	PixRGB16:   "rgb16",
	PixRGB32f:  "rgb32f",
	PixBGRA8:   "bgra8",
}

// ChannelCount returns the number of channels of the format.
func (f PixelFormat) ChannelCount() int {
	return pixelFormatSpecs[f].channels
}

// BitsPerChannel returns the bit depth of a single channel.
func (f PixelFormat) BitsPerChannel() int {
	return pixelFormatSpecs[f].bitsPerChannel
}

// BytesPerPixel returns the packed size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	spec := pixelFormatSpecs[f]
	return spec.channels * spec.bitsPerChannel / 8
}

func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// OutputFormat identifies a persistable image encoding. Which formats are
// actually available depends on the imaging backend; see
// Library.SupportedOutputFormats.
type OutputFormat int

const (
	OutputInvalid OutputFormat = iota
	OutputBMP8
	OutputPNG8
	OutputTIFF16
	OutputJPEG8
	OutputWebP8

	numOutputFormats
)

var outputFormatBits = map[OutputFormat]int{
	OutputBMP8:   8,
	OutputPNG8:   8,
	OutputTIFF16: 16,
	OutputJPEG8:  8,
	OutputWebP8:  8,
}

var outputFormatNames = map[OutputFormat]string{
	OutputInvalid: "invalid",
	OutputBMP8:    "bmp",
	OutputPNG8:    "png",
	OutputTIFF16:  "tiff",
	OutputJPEG8:   "jpeg",
	OutputWebP8:   "webp",
}

// RequiredBitsPerChannel returns the channel depth an image must have before
// it can be written in this format.
func (f OutputFormat) RequiredBitsPerChannel() int {
	return outputFormatBits[f]
}

func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat resolves a format name as used on the command line.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range outputFormatNames {
		if f != OutputInvalid && n == name {
			return f, nil
		}
	}
	return OutputInvalid, fmt.Errorf("unknown output format: %q", name)
}

// The matcher relies on (channels, bits) identifying at most one matchable
// format. A catalog edit that breaks this is a programming error, caught at
// startup rather than silently resolved by scan order.
func init() {
	seen := make(map[formatSpec]PixelFormat)
	for f := PixInvalid + 1; f < numPixelFormats; f++ {
		if f == PixPal8 {
			continue
		}
		spec, ok := pixelFormatSpecs[f]
		if !ok {
			panic(fmt.Sprintf("imaging: %s missing from the pixel format catalog", f))
		}
		if prev, dup := seen[spec]; dup {
			panic(fmt.Sprintf("imaging: %s and %s share channels=%d bits=%d", prev, f, spec.channels, spec.bitsPerChannel))
		}
		seen[spec] = f
	}
	for f := OutputInvalid + 1; f < numOutputFormats; f++ {
		if _, ok := outputFormatBits[f]; !ok {
			panic(fmt.Sprintf("imaging: %s missing from the output format catalog", f))
		}
	}
}
