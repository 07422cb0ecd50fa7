// Package byteorder implements the scalar and bulk encode/decode primitives
// that the tiff decoder layers on top of. It mirrors the split between a
// byte-order-agnostic codec (this file, plus the bulk slice forms in
// bulk.go) and an io.Reader adapter (reader.go) that the rest of the module uses to pull values off a TIFF
// stream without repeating an endianness switch at every call site.
package byteorder

import "math"

// ByteOrder picks the bit layout used to encode and decode multi-byte
// integers and floats. TIFF stores this as the two-byte "II"/"MM" signature
// at the start of the file; see tiff.DetectByteOrder.
type ByteOrder interface {
	String() string

	Uint16(b []byte) uint16
	Uint32(b []byte) uint32
	Uint64(b []byte) uint64

	PutUint16(b []byte, v uint16)
	PutUint32(b []byte, v uint32)
	PutUint64(b []byte, v uint64)
}

// Int16/Int32/Int64/Float32/Float64 are expressed in terms of the Uint*
// primitives above rather than as interface methods: TIFF's signed and
// floating-point sample types reuse the exact same bit pattern as their
// unsigned counterparts, so there's no second implementation to write.

// Int16 decodes a two's-complement 16-bit integer.
func Int16(o ByteOrder, b []byte) int16 { return int16(o.Uint16(b)) }

// Int32 decodes a two's-complement 32-bit integer.
func Int32(o ByteOrder, b []byte) int32 { return int32(o.Uint32(b)) }

// Int64 decodes a two's-complement 64-bit integer.
func Int64(o ByteOrder, b []byte) int64 { return int64(o.Uint64(b)) }

// Float32 decodes an IEEE-754 binary32 value.
func Float32(o ByteOrder, b []byte) float32 { return math.Float32frombits(o.Uint32(b)) }

// Float64 decodes an IEEE-754 binary64 value.
func Float64(o ByteOrder, b []byte) float64 { return math.Float64frombits(o.Uint64(b)) }

// PutInt16 encodes a two's-complement 16-bit integer.
func PutInt16(o ByteOrder, b []byte, v int16) { o.PutUint16(b, uint16(v)) }

// PutInt32 encodes a two's-complement 32-bit integer.
func PutInt32(o ByteOrder, b []byte, v int32) { o.PutUint32(b, uint32(v)) }

// PutInt64 encodes a two's-complement 64-bit integer.
func PutInt64(o ByteOrder, b []byte, v int64) { o.PutUint64(b, uint64(v)) }

// PutFloat32 encodes an IEEE-754 binary32 value.
func PutFloat32(o ByteOrder, b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) }

// PutFloat64 encodes an IEEE-754 binary64 value.
func PutFloat64(o ByteOrder, b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) }

type littleEndian struct{}

// LittleEndian is the "II" byte order.
var LittleEndian ByteOrder = littleEndian{}

func (littleEndian) String() string { return "LittleEndian" }

func (littleEndian) Uint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

func (littleEndian) Uint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (littleEndian) Uint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func (littleEndian) PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func (littleEndian) PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func (littleEndian) PutUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

type bigEndian struct{}

// BigEndian is the "MM" byte order.
var BigEndian ByteOrder = bigEndian{}

func (bigEndian) String() string { return "BigEndian" }

func (bigEndian) Uint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[1]) | uint16(b[0])<<8
}

func (bigEndian) Uint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

func (bigEndian) Uint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

func (bigEndian) PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func (bigEndian) PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func (bigEndian) PutUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
