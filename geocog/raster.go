// Package geocog reads Cloud-Optimized GeoTIFF rasters: georeferenced
// pixel data organized into strips or tiles, with reduced-resolution
// overview levels, readable from a local file or an HTTP range source
// without downloading the whole image.
package geocog

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/tingold/tiffcore/tiff"
)

// SampleKind is the native Go representation a pixel's stored bits decode
// to, derived from a tiff.Sample's BitsPerSample and Format rather than
// from the TIFF field DType of any one tag - a raster's pixel kind and a
// directory entry's on-disk type are different things even though earlier
// GeoTIFF tooling often conflated them.
type SampleKind int

const (
	KindUint8 SampleKind = iota
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindFloat32
	KindFloat64
)

func (k SampleKind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindInt8:
		return "int8"
	case KindUint16:
		return "uint16"
	case KindInt16:
		return "int16"
	case KindUint32:
		return "uint32"
	case KindInt32:
		return "int32"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// sampleKind classifies a sample's stored representation.
func sampleKind(s tiff.Sample) (SampleKind, error) {
	switch {
	case s.BitsPerSample == 8 && s.Format == tiff.SampleFormatUnsignedInteger:
		return KindUint8, nil
	case s.BitsPerSample == 8 && s.Format == tiff.SampleFormatSignedInteger:
		return KindInt8, nil
	case s.BitsPerSample == 16 && s.Format == tiff.SampleFormatUnsignedInteger:
		return KindUint16, nil
	case s.BitsPerSample == 16 && s.Format == tiff.SampleFormatSignedInteger:
		return KindInt16, nil
	case s.BitsPerSample == 32 && s.Format == tiff.SampleFormatUnsignedInteger:
		return KindUint32, nil
	case s.BitsPerSample == 32 && s.Format == tiff.SampleFormatSignedInteger:
		return KindInt32, nil
	case s.BitsPerSample == 32 && s.Format == tiff.SampleFormatFloat:
		return KindFloat32, nil
	case s.BitsPerSample == 64 && s.Format == tiff.SampleFormatFloat:
		return KindFloat64, nil
	default:
		return 0, fmt.Errorf("geocog: unsupported sample: %d bits, format %d", s.BitsPerSample, s.Format)
	}
}

// RasterData is a decoded window of pixels, stored flat in
// band-interleaved-by-pixel order: index = y*Width*Bands + x*Bands + band.
// Every sample, regardless of its on-disk width, is widened to float64 so
// a caller can work with one type across byte/uint16/int32/float32 source
// images without a type switch at every pixel.
type RasterData struct {
	Data   []float64
	Width  int
	Height int
	Bands  int
	Bounds orb.Bound
}

func newRasterData(width, height, bands int, bounds orb.Bound) *RasterData {
	return &RasterData{
		Data:   make([]float64, width*height*bands),
		Width:  width,
		Height: height,
		Bands:  bands,
		Bounds: bounds,
	}
}

// Index returns the flat array index for the given band, x, y coordinates.
func (r *RasterData) Index(band, x, y int) int {
	return y*r.Width*r.Bands + x*r.Bands + band
}

// At returns the value at the specified band, x, y coordinates, or 0 if
// out of range.
func (r *RasterData) At(band, x, y int) float64 {
	if band < 0 || band >= r.Bands || x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return 0
	}
	return r.Data[r.Index(band, x, y)]
}

// Set stores the value at the specified band, x, y coordinates.
func (r *RasterData) Set(band, x, y int, value float64) {
	if band < 0 || band >= r.Bands || x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	r.Data[r.Index(band, x, y)] = value
}

// GetBand returns a newly allocated slice of every pixel value for one band.
func (r *RasterData) GetBand(band int) []float64 {
	if band < 0 || band >= r.Bands {
		return nil
	}
	out := make([]float64, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out[y*r.Width+x] = r.At(band, x, y)
		}
	}
	return out
}

// GetPixel returns a newly allocated slice of every band's value at x, y.
func (r *RasterData) GetPixel(x, y int) []float64 {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return nil
	}
	out := make([]float64, r.Bands)
	base := r.Index(0, x, y)
	copy(out, r.Data[base:base+r.Bands])
	return out
}
