package byteorder

import "io"

// Reader pulls scalar and bulk values off an io.Reader in a fixed byte
// order, so that callers above this package never repeat the
// little-endian/big-endian switch themselves. It is the streaming
// counterpart of the ByteOrder Uint* methods and the package's Int*/Float*
// helpers, which decode from an in-memory buffer.
type Reader struct {
	r     io.Reader
	order ByteOrder
	buf   [8]byte
}

// NewReader wraps r to decode values in the given byte order.
func NewReader(r io.Reader, order ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// Order reports the byte order the reader was constructed with.
func (r *Reader) Order() ByteOrder { return r.order }

func (r *Reader) fill(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return nil, err
	}
	return r.buf[:n], nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a single signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a 16-bit unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadUint32 reads a 32-bit unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadUint64 reads a 64-bit unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// ReadInt16 reads a 16-bit signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a 64-bit signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 binary32 value.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return Float32(r.order, b), nil
}

// ReadFloat64 reads an IEEE-754 binary64 value.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return Float64(r.order, b), nil
}

// ReadUint8Into fills buf with raw bytes; byte order is irrelevant for
// single-byte elements.
func (r *Reader) ReadUint8Into(buf []uint8) error {
	_, err := io.ReadFull(r.r, buf)
	return err
}

// ReadInt8Into fills buf with raw signed bytes.
func (r *Reader) ReadInt8Into(buf []int8) error {
	raw := make([]byte, len(buf))
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	for i, b := range raw {
		buf[i] = int8(b)
	}
	return nil
}

// ReadUint16Into fills buf by decoding len(buf)*2 bytes from the stream.
func (r *Reader) ReadUint16Into(buf []uint16) error {
	raw := make([]byte, len(buf)*2)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Uint16Slice(r.order, buf, raw)
	return nil
}

// ReadUint32Into fills buf by decoding len(buf)*4 bytes from the stream.
func (r *Reader) ReadUint32Into(buf []uint32) error {
	raw := make([]byte, len(buf)*4)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Uint32Slice(r.order, buf, raw)
	return nil
}

// ReadUint64Into fills buf by decoding len(buf)*8 bytes from the stream.
func (r *Reader) ReadUint64Into(buf []uint64) error {
	raw := make([]byte, len(buf)*8)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Uint64Slice(r.order, buf, raw)
	return nil
}

// ReadInt16Into fills buf by decoding len(buf)*2 bytes from the stream.
func (r *Reader) ReadInt16Into(buf []int16) error {
	raw := make([]byte, len(buf)*2)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Int16Slice(r.order, buf, raw)
	return nil
}

// ReadInt32Into fills buf by decoding len(buf)*4 bytes from the stream.
func (r *Reader) ReadInt32Into(buf []int32) error {
	raw := make([]byte, len(buf)*4)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Int32Slice(r.order, buf, raw)
	return nil
}

// ReadInt64Into fills buf by decoding len(buf)*8 bytes from the stream.
func (r *Reader) ReadInt64Into(buf []int64) error {
	raw := make([]byte, len(buf)*8)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Int64Slice(r.order, buf, raw)
	return nil
}

// ReadFloat32Into fills buf by decoding len(buf)*4 bytes from the stream.
func (r *Reader) ReadFloat32Into(buf []float32) error {
	raw := make([]byte, len(buf)*4)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Float32Slice(r.order, buf, raw)
	return nil
}

// ReadFloat64Into fills buf by decoding len(buf)*8 bytes from the stream.
func (r *Reader) ReadFloat64Into(buf []float64) error {
	raw := make([]byte, len(buf)*8)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return err
	}
	Float64Slice(r.order, buf, raw)
	return nil
}
