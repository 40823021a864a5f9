package imaging

// FindMatchingFormat selects the pixel format an image must hold before it
// can be written in the given output format with the given channel count:
// the catalog entry whose channel count equals numChannels and whose bit
// depth equals the output format's required depth. Palette-indexed entries
// are never candidates. Formats are scanned in ascending identifier order;
// the catalog guarantees at most one entry matches (see the init check in
// format.go), so the order only pins down reproducibility.
//
// PixInvalid means the output format cannot represent such an image. That is
// an ordinary outcome the caller must check for, not an error.
func FindMatchingFormat(out OutputFormat, numChannels int) PixelFormat {
	required := out.RequiredBitsPerChannel()
	for f := PixInvalid + 1; f < numPixelFormats; f++ {
		if f == PixPal8 {
			continue
		}
		spec := pixelFormatSpecs[f]
		if spec.channels == numChannels && spec.bitsPerChannel == required {
			return f
		}
	}
	return PixInvalid
}
