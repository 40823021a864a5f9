package imaging

// Library is the imaging backend the frontend delegates codec work to. Two
// implementations exist: a pure-Go backend built on the standard image model
// (default) and a libvips-backed one selected with the govips build tag.
// Backends differ in which output formats they can write; the descriptor
// registry is built from whatever SupportedOutputFormats reports.
type Library interface {
	// SupportedOutputFormats lists the writable output formats in a fixed
	// order. The list never changes during the life of the process.
	SupportedOutputFormats() []OutputFormat

	// LoadImage decodes the file into an image in its native pixel layout.
	LoadImage(path string) (*Image, error)

	// SaveImage encodes the image to path in the given output format. The
	// caller is expected to have converted the image to the pixel format
	// FindMatchingFormat selected for out.
	SaveImage(img *Image, path string, out OutputFormat) error

	// ConvertPixelFormat rewrites the image into the target format. See the
	// package-level ConvertPixelFormat for the contract.
	ConvertPixelFormat(img *Image, target PixelFormat) (*Image, error)
}
