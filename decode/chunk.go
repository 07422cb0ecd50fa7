// Package decode ties together the structural tiff package, the compress
// package's decompression readers and the predictor package's row
// reversal into a single call that turns one Metadata chunk into a plain
// stream of samples, ready for a caller-supplied pixel unpacker. Multi-byte
// samples stay in the file's byte order; they are not converted to the
// host's byte order.
package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tingold/tiffcore/byteorder"
	"github.com/tingold/tiffcore/tiff"
	"github.com/tingold/tiffcore/tiff/compress"
	"github.com/tingold/tiffcore/tiff/predictor"
)

// Chunk reads and fully reverses one chunk of meta's pixel data from src:
// decompression per meta.Compression, then predictor reversal per
// meta.Predictor, returning the raw interleaved samples in row-major
// order, encoded in order's byte order (the file's, not the host's).
//
// Predictor reversal requires every sample to share the same bit depth;
// mixed-depth channels (legal in TIFF, vanishingly rare in practice) are
// rejected rather than guessed at.
func Chunk(order byteorder.ByteOrder, meta *tiff.Metadata, src io.ReadSeeker, c tiff.Chunk) ([]byte, error) {
	if _, err := src.Seek(int64(c.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("decode: seeking to chunk: %w", err)
	}
	raw := make([]byte, c.ByteCount)
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, fmt.Errorf("decode: reading chunk: %w", err)
	}
	return ChunkBytes(order, meta, raw, c)
}

// ChunkBytes is Chunk's decompression and predictor-reversal stage split
// out to operate on an already-fetched byte slice, for callers (parallel
// region readers) that need to serialize the seek-and-read against a
// single shared stream but run decompression concurrently across chunks.
func ChunkBytes(order byteorder.ByteOrder, meta *tiff.Metadata, raw []byte, c tiff.Chunk) ([]byte, error) {
	r, err := compress.NewDecompressReader(meta.Compression, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode: opening chunk: %w", err)
	}

	samplesPerPixel := len(meta.Samples)
	if samplesPerPixel == 0 {
		return nil, fmt.Errorf("decode: metadata has no samples")
	}
	bitsPerSample := meta.Samples[0].BitsPerSample
	for _, s := range meta.Samples {
		if s.Format != meta.Samples[0].Format || s.BitsPerSample != bitsPerSample {
			if meta.Predictor != tiff.PredictorNone {
				return nil, fmt.Errorf("decode: predictor reversal requires uniform sample depth, chunk has mixed depths")
			}
			break
		}
	}
	bytesPerSample := int(bitsPerSample+7) / 8

	rowBytes := int(c.Width) * samplesPerPixel * bytesPerSample
	total := rowBytes * int(c.Height)
	out := make([]byte, total)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("decode: reading decompressed chunk: %w", err)
	}

	if meta.Predictor == tiff.PredictorNone || bytesPerSample*8 != int(bitsPerSample) {
		return out, nil
	}

	for row := 0; row < int(c.Height); row++ {
		rowBuf := out[row*rowBytes : (row+1)*rowBytes]
		switch meta.Predictor {
		case tiff.PredictorHorizontal:
			if err := predictor.DecodeIntegerRow(order, samplesPerPixel, bytesPerSample, rowBuf); err != nil {
				return nil, fmt.Errorf("decode: row %d: %w", row, err)
			}
		case tiff.PredictorFloat:
			if err := predictor.DecodeFloatRow(order == byteorder.BigEndian, bytesPerSample, rowBuf); err != nil {
				return nil, fmt.Errorf("decode: row %d: %w", row, err)
			}
		default:
			return nil, fmt.Errorf("decode: unsupported predictor scheme %d", meta.Predictor)
		}
	}
	return out, nil
}

// NewChunkReader is a convenience wrapper returning Chunk's result as an
// io.Reader, for callers that want to stream rather than hold a []byte.
func NewChunkReader(order byteorder.ByteOrder, meta *tiff.Metadata, src io.ReadSeeker, c tiff.Chunk) (io.Reader, error) {
	b, err := Chunk(order, meta, src, c)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
