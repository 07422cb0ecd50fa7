package tiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/tingold/tiffcore/byteorder"
)

// Decode fetches the entry's value and stores it into dst, which must be a
// pointer to one of the Go types listed below or a pointer to a slice of
// one of them (in which case the slice must already have length equal to
// the entry's Count). Each accepted type has between one and three
// compatible DTypes; decoding against an entry of any other DType returns
// UnexpectedDTypeError without touching the stream.
//
//	*uint8, *[]uint8           Byte, Ascii, Undefined
//	*int8, *[]int8             SignedByte
//	*uint16, *[]uint16         Short
//	*uint32, *[]uint32         Long, Ifd
//	*uint64, *[]uint64         BigLong, BigIfd
//	*int16, *[]int16           SignedShort
//	*int32, *[]int32           SignedLong
//	*int64, *[]int64           BigSignedLong
//	*float32, *[]float32       Float
//	*float64, *[]float64       Double
//	*RatioU32, *[]RatioU32     Rational
//	*RatioI32, *[]RatioI32     SignedRational
func (e *Entry) Decode(dst any) error {
	order := e.dir.dec.order
	dt := e.raw.dtype

	wantCount := func(n int) error {
		if uint64(n) != e.raw.count {
			return fmt.Errorf("tiff: tag %s: decode target holds %d values, entry has %d", e.raw.tag, n, e.raw.count)
		}
		return nil
	}
	mismatch := func(want string) error {
		return &UnexpectedDTypeError{Tag: e.raw.tag, Got: dt, Want: want}
	}

	switch p := dst.(type) {
	case *uint8:
		if dt != Byte && dt != Ascii && dt != Undefined {
			return mismatch("Byte, Ascii or Undefined")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = b[0]
	case *[]uint8:
		if dt != Byte && dt != Ascii && dt != Undefined {
			return mismatch("Byte, Ascii or Undefined")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		copy(*p, b)
	case *int8:
		if dt != SignedByte {
			return mismatch("SignedByte")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = int8(b[0])
	case *[]int8:
		if dt != SignedByte {
			return mismatch("SignedByte")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		for i := range *p {
			(*p)[i] = int8(b[i])
		}
	case *uint16:
		if dt != Short {
			return mismatch("Short")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = order.Uint16(b)
	case *[]uint16:
		if dt != Short {
			return mismatch("Short")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Uint16Slice(order, *p, b)
	case *uint32:
		if dt != Long && dt != Ifd {
			return mismatch("Long or Ifd")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = order.Uint32(b)
	case *[]uint32:
		if dt != Long && dt != Ifd {
			return mismatch("Long or Ifd")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Uint32Slice(order, *p, b)
	case *uint64:
		if dt != BigLong && dt != BigIfd {
			return mismatch("BigLong or BigIfd")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = order.Uint64(b)
	case *[]uint64:
		if dt != BigLong && dt != BigIfd {
			return mismatch("BigLong or BigIfd")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Uint64Slice(order, *p, b)
	case *int16:
		if dt != SignedShort {
			return mismatch("SignedShort")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = byteorder.Int16(order, b)
	case *[]int16:
		if dt != SignedShort {
			return mismatch("SignedShort")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Int16Slice(order, *p, b)
	case *int32:
		if dt != SignedLong {
			return mismatch("SignedLong")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = byteorder.Int32(order, b)
	case *[]int32:
		if dt != SignedLong {
			return mismatch("SignedLong")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Int32Slice(order, *p, b)
	case *int64:
		if dt != BigSignedLong {
			return mismatch("BigSignedLong")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = byteorder.Int64(order, b)
	case *[]int64:
		if dt != BigSignedLong {
			return mismatch("BigSignedLong")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Int64Slice(order, *p, b)
	case *float32:
		if dt != Float {
			return mismatch("Float")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = byteorder.Float32(order, b)
	case *[]float32:
		if dt != Float {
			return mismatch("Float")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Float32Slice(order, *p, b)
	case *float64:
		if dt != Double {
			return mismatch("Double")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = byteorder.Float64(order, b)
	case *[]float64:
		if dt != Double {
			return mismatch("Double")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		byteorder.Float64Slice(order, *p, b)
	case *RatioU32:
		if dt != Rational {
			return mismatch("Rational")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = RatioU32{Num: order.Uint32(b[0:4]), Den: order.Uint32(b[4:8])}
	case *[]RatioU32:
		if dt != Rational {
			return mismatch("Rational")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		for i := range *p {
			(*p)[i] = RatioU32{Num: order.Uint32(b[i*8 : i*8+4]), Den: order.Uint32(b[i*8+4 : i*8+8])}
		}
	case *RatioI32:
		if dt != SignedRational {
			return mismatch("SignedRational")
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		*p = RatioI32{Num: byteorder.Int32(order, b[0:4]), Den: byteorder.Int32(order, b[4:8])}
	case *[]RatioI32:
		if dt != SignedRational {
			return mismatch("SignedRational")
		}
		if err := wantCount(len(*p)); err != nil {
			return err
		}
		b, err := e.valueBytes()
		if err != nil {
			return err
		}
		for i := range *p {
			(*p)[i] = RatioI32{Num: byteorder.Int32(order, b[i*8:i*8+4]), Den: byteorder.Int32(order, b[i*8+4:i*8+8])}
		}
	default:
		return fmt.Errorf("tiff: unsupported decode target %T", dst)
	}
	return nil
}

// DecodeUint64 decodes the entry widening Short, Long, Ifd, BigLong or
// BigIfd values into a uint64, the widening rule the metadata builder uses
// for tags whose value may legally arrive as any unsigned integer DType.
func (e *Entry) DecodeUint64() (uint64, error) {
	switch e.raw.dtype {
	case Short:
		var v uint16
		if err := e.Decode(&v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case Long, Ifd:
		var v uint32
		if err := e.Decode(&v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case BigLong, BigIfd:
		var v uint64
		if err := e.Decode(&v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, &UnexpectedDTypeError{Tag: e.raw.tag, Got: e.raw.dtype, Want: "Short, Long, Ifd, BigLong or BigIfd"}
	}
}

// DecodeUint64Slice decodes the entry widening each value the same way
// DecodeUint64 does, for tags (chunk offset/byte-count tables) that carry
// an array rather than a scalar.
func (e *Entry) DecodeUint64Slice() ([]uint64, error) {
	n := int(e.raw.count)
	out := make([]uint64, n)
	switch e.raw.dtype {
	case Short:
		tmp := make([]uint16, n)
		if err := e.Decode(&tmp); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = uint64(v)
		}
	case Long, Ifd:
		tmp := make([]uint32, n)
		if err := e.Decode(&tmp); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = uint64(v)
		}
	case BigLong, BigIfd:
		if err := e.Decode(&out); err != nil {
			return nil, err
		}
	default:
		return nil, &UnexpectedDTypeError{Tag: e.raw.tag, Got: e.raw.dtype, Want: "Short, Long, Ifd, BigLong or BigIfd"}
	}
	return out, nil
}

// DecodeUint32 decodes the entry widening Short or Long values into a
// uint32, the rule used for tags (ImageWidth, ImageLength, TileWidth, ...)
// whose value may legally arrive as either a Short or a Long.
func (e *Entry) DecodeUint32() (uint32, error) {
	switch e.raw.dtype {
	case Short:
		var v uint16
		if err := e.Decode(&v); err != nil {
			return 0, err
		}
		return uint32(v), nil
	case Long:
		var v uint32
		if err := e.Decode(&v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, &UnexpectedDTypeError{Tag: e.raw.tag, Got: e.raw.dtype, Want: "Short or Long"}
	}
}

// DecodeString decodes an Ascii entry, trimming the single trailing NUL
// terminator the TIFF spec requires every Ascii value to carry. A value
// missing its terminator, or whose trimmed bytes are not valid UTF-8, is
// an error rather than a lossy decode.
func (e *Entry) DecodeString() (string, error) {
	if e.raw.dtype != Ascii {
		return "", &UnexpectedDTypeError{Tag: e.raw.tag, Got: e.raw.dtype, Want: "Ascii"}
	}
	b, err := e.valueBytes()
	if err != nil {
		return "", err
	}
	if n := len(b); n == 0 || b[n-1] != 0 {
		return "", fmt.Errorf("tiff: tag %s: Ascii value missing trailing NUL terminator", e.raw.tag)
	}
	b = b[:len(b)-1]
	if !utf8.Valid(b) {
		return "", fmt.Errorf("tiff: tag %s: Ascii value is not valid UTF-8", e.raw.tag)
	}
	return string(b), nil
}
