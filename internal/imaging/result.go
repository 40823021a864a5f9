package imaging

// ResultCode is a status code reported by the imaging backend while decoding
// or encoding. Codes are informational; they map to display text and nothing
// else.
type ResultCode int

const (
	ResultSuccess ResultCode = iota
	ResultInvalidParameters
	ResultLastStep
	ResultNoMoreImages
	ResultNoPalette
	ResultCannotOpenFile
	ResultBMPMalformed
	ResultBMPUnsupported
	ResultUnsupportedFileFormat
	ResultOutOfMemory
	ResultCannotCreateFile
	ResultTIFFIncompleteHeader
	ResultTIFFUnknownVersion
	ResultTIFFIncompleteField
	ResultTIFFDiffChannelDepths
	ResultTIFFCompressed
	ResultTIFFBadPlanarConfig
	ResultUnsupportedPixelFormat
	ResultTIFFIncompletePixelData
	ResultAVIMalformed
	ResultAVIUnsupportedFormat
	ResultInvalidImageDimensions
	ResultSERMalformed
	ResultSERUnsupportedFormat
	ResultNoVideoStream
	ResultDecodingError
)

var resultMessages = map[ResultCode]string{
	ResultSuccess:                 "Success",
	ResultInvalidParameters:       "Invalid parameters",
	ResultLastStep:                "Last step",
	ResultNoMoreImages:            "No more images",
	ResultNoPalette:               "No palette",
	ResultCannotOpenFile:          "Cannot open file",
	ResultBMPMalformed:            "Malformed BMP file",
	ResultBMPUnsupported:          "Unsupported BMP file",
	ResultUnsupportedFileFormat:   "Unsupported file format",
	ResultOutOfMemory:             "Out of memory",
	ResultCannotCreateFile:        "Cannot create file",
	ResultTIFFIncompleteHeader:    "Incomplete TIFF header",
	ResultTIFFUnknownVersion:      "Unknown TIFF version",
	ResultTIFFIncompleteField:     "Incomplete TIFF field",
	ResultTIFFDiffChannelDepths:   "Channels have different bit depths",
	ResultTIFFCompressed:          "TIFF compression is not supported",
	ResultTIFFBadPlanarConfig:     "Unsupported TIFF planar configuration",
	ResultUnsupportedPixelFormat:  "Unsupported pixel format",
	ResultTIFFIncompletePixelData: "Incomplete TIFF pixel data",
	ResultAVIMalformed:            "Malformed AVI file",
	ResultAVIUnsupportedFormat:    "Unsupported AVI video format",
	ResultInvalidImageDimensions:  "Invalid image dimensions",
	ResultSERMalformed:            "Malformed SER file",
	ResultSERUnsupportedFormat:    "Unsupported SER format",
	ResultNoVideoStream:           "Video stream not found",
	ResultDecodingError:           "Decoding error",
}

// Message returns display text for the code. Codes outside the taxonomy get
// a generic fallback rather than failing.
func (c ResultCode) Message() string {
	if msg, ok := resultMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}
