// Package compress implements the decompression readers a TIFF strip or
// tile's raw bytes are run through before predictor reversal and pixel
// unpacking: the identity passthrough, PackBits, zlib-wrapped Deflate, and
// LZW.
package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/tingold/tiffcore/tiff"
)

// NewDecompressReader returns the reader that turns a chunk's compressed
// bytes into its raw, predictor-encoded sample stream, chosen by scheme.
// CompressionLegacyDeflate (32946) is treated identically to
// CompressionDeflate: it is the pre-Adobe-registration tag value some
// early encoders emitted for the same zlib-wrapped stream.
func NewDecompressReader(scheme tiff.CompressionScheme, r io.Reader) (io.Reader, error) {
	switch scheme {
	case tiff.CompressionNone:
		return r, nil
	case tiff.CompressionPackBits:
		return NewPackBitsReader(r), nil
	case tiff.CompressionDeflate, tiff.CompressionLegacyDeflate:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("tiff: opening deflate stream: %w", err)
		}
		return zr, nil
	case tiff.CompressionLZW:
		return newLZWReader(r), nil
	default:
		return nil, &tiff.UnsupportedCompressionError{Value: uint16(scheme)}
	}
}
