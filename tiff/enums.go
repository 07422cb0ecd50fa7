package tiff

// CompressionScheme is the value of the Compression tag (259).
type CompressionScheme uint16

const (
	CompressionNone          CompressionScheme = 1
	CompressionCCITTRLE      CompressionScheme = 2
	CompressionCCITTFax3     CompressionScheme = 3
	CompressionCCITTFax4     CompressionScheme = 4
	CompressionLZW           CompressionScheme = 5
	CompressionStandardJPEG  CompressionScheme = 6
	CompressionJPEG          CompressionScheme = 7
	CompressionDeflate       CompressionScheme = 8
	CompressionPackBits      CompressionScheme = 32773
	CompressionLegacyDeflate CompressionScheme = 32946
)

func (c CompressionScheme) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionCCITTRLE:
		return "CCITTRLE"
	case CompressionCCITTFax3:
		return "CCITTFax3"
	case CompressionCCITTFax4:
		return "CCITTFax4"
	case CompressionLZW:
		return "LZW"
	case CompressionStandardJPEG:
		return "StandardJPEG"
	case CompressionJPEG:
		return "JPEG"
	case CompressionDeflate, CompressionLegacyDeflate:
		return "Deflate"
	case CompressionPackBits:
		return "PackBits"
	default:
		return "Unknown"
	}
}

// PredictorScheme is the value of the Predictor tag (317).
type PredictorScheme uint16

const (
	PredictorNone       PredictorScheme = 1
	PredictorHorizontal PredictorScheme = 2
	PredictorFloat      PredictorScheme = 3
)

func (p PredictorScheme) String() string {
	switch p {
	case PredictorNone:
		return "None"
	case PredictorHorizontal:
		return "Horizontal"
	case PredictorFloat:
		return "FloatingPoint"
	default:
		return "Unknown"
	}
}

// SampleFormat is one entry of the SampleFormat tag (339): how to interpret
// the raw bits of each sample.
type SampleFormat uint16

const (
	SampleFormatUnsignedInteger SampleFormat = 1
	SampleFormatSignedInteger   SampleFormat = 2
	SampleFormatFloat           SampleFormat = 3
	SampleFormatUndefined       SampleFormat = 4
)

// PlanarConfiguration is the value of the PlanarConfiguration tag (284).
type PlanarConfiguration uint16

const (
	PlanarConfigurationChunky PlanarConfiguration = 1
	PlanarConfigurationPlanar PlanarConfiguration = 2
)

// ResolutionUnit is the value of the ResolutionUnit tag (296).
type ResolutionUnit uint16

const (
	ResolutionUnitNone       ResolutionUnit = 1
	ResolutionUnitInch       ResolutionUnit = 2
	ResolutionUnitCentimeter ResolutionUnit = 3
)

// SubfileType is a bitmask from the NewSubfileType tag (254).
type SubfileType uint32

const (
	SubfileTypeReducedImage SubfileType = 1 << 0
	SubfileTypeMultiPage    SubfileType = 1 << 1
	SubfileTypeMask         SubfileType = 1 << 2
)
