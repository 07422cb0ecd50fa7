package compress

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/image/tiff/lzw"
)

// decodeLZW decompresses a full TIFF LZW-compressed chunk. The codec's bit
// order is a frequent source of interop bugs in the wild - most encoders
// follow the TIFF 6.0 spec's MSB-first packing, but enough write LSB-first
// (the GIF convention the LZW format was adapted from) that a reader only
// trying one order rejects otherwise-valid files. Chunks are bounded in
// size (framed by byte_count), so buffering the whole thing to retry under
// the other bit order costs nothing a single decompression pass wouldn't
// already have paid.
func decodeLZW(data []byte) ([]byte, error) {
	r := lzw.NewReader(bytes.NewReader(data), lzw.LSB, 8)
	out, err := io.ReadAll(r)
	r.Close()
	if err == nil {
		return out, nil
	}

	r = lzw.NewReader(bytes.NewReader(data), lzw.MSB, 8)
	out, msbErr := io.ReadAll(r)
	r.Close()
	if msbErr == nil {
		return out, nil
	}

	return nil, fmt.Errorf("tiff: LZW decompression failed under both bit orders: %w", err)
}

// lzwReader adapts decodeLZW (which needs the whole chunk up front to be
// able to retry under the other bit order) to the streaming io.Reader
// interface the rest of the decompression pipeline expects.
type lzwReader struct {
	buf *bytes.Reader
	err error
}

func newLZWReader(r io.Reader) *lzwReader {
	raw, err := io.ReadAll(r)
	if err != nil {
		return &lzwReader{err: err}
	}
	out, err := decodeLZW(raw)
	if err != nil {
		return &lzwReader{err: err}
	}
	return &lzwReader{buf: bytes.NewReader(out)}
}

func (z *lzwReader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}
	return z.buf.Read(p)
}
