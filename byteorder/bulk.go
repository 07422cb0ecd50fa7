package byteorder

// The Uint16Slice/Uint32Slice/... family decode a packed byte buffer into a
// pre-sized destination slice in one pass. Strip and tile data arrives as
// tightly packed sample arrays; these check the buffer length once up front
// and then decode each element through the scalar helpers in byteorder.go.
//
// dst must already be sized to the number of elements contained in src; a
// mismatch is a programmer error in the caller (an entry's declared count
// disagreeing with the buffer it was read into), not a malformed-file
// condition, so these panic rather than return an error.

// Uint16Slice decodes src into dst, len(dst) uint16 values.
func Uint16Slice(o ByteOrder, dst []uint16, src []byte) {
	if len(src) != len(dst)*2 {
		panic("byteorder: Uint16Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = o.Uint16(src[i*2:])
	}
}

// Uint32Slice decodes src into dst, len(dst) uint32 values.
func Uint32Slice(o ByteOrder, dst []uint32, src []byte) {
	if len(src) != len(dst)*4 {
		panic("byteorder: Uint32Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = o.Uint32(src[i*4:])
	}
}

// Uint64Slice decodes src into dst, len(dst) uint64 values.
func Uint64Slice(o ByteOrder, dst []uint64, src []byte) {
	if len(src) != len(dst)*8 {
		panic("byteorder: Uint64Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = o.Uint64(src[i*8:])
	}
}

// Int16Slice decodes src into dst, len(dst) int16 values.
func Int16Slice(o ByteOrder, dst []int16, src []byte) {
	if len(src) != len(dst)*2 {
		panic("byteorder: Int16Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = Int16(o, src[i*2:])
	}
}

// Int32Slice decodes src into dst, len(dst) int32 values.
func Int32Slice(o ByteOrder, dst []int32, src []byte) {
	if len(src) != len(dst)*4 {
		panic("byteorder: Int32Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = Int32(o, src[i*4:])
	}
}

// Int64Slice decodes src into dst, len(dst) int64 values.
func Int64Slice(o ByteOrder, dst []int64, src []byte) {
	if len(src) != len(dst)*8 {
		panic("byteorder: Int64Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = Int64(o, src[i*8:])
	}
}

// Float32Slice decodes src into dst, len(dst) float32 values.
func Float32Slice(o ByteOrder, dst []float32, src []byte) {
	if len(src) != len(dst)*4 {
		panic("byteorder: Float32Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = Float32(o, src[i*4:])
	}
}

// Float64Slice decodes src into dst, len(dst) float64 values.
func Float64Slice(o ByteOrder, dst []float64, src []byte) {
	if len(src) != len(dst)*8 {
		panic("byteorder: Float64Slice: length mismatch")
	}
	for i := range dst {
		dst[i] = Float64(o, src[i*8:])
	}
}

// PutUint16Slice encodes src into a caller-sized dst byte buffer.
func PutUint16Slice(o ByteOrder, dst []byte, src []uint16) {
	if len(dst) != len(src)*2 {
		panic("byteorder: PutUint16Slice: length mismatch")
	}
	for i, v := range src {
		o.PutUint16(dst[i*2:], v)
	}
}

// PutUint32Slice encodes src into dst.
func PutUint32Slice(o ByteOrder, dst []byte, src []uint32) {
	if len(dst) != len(src)*4 {
		panic("byteorder: PutUint32Slice: length mismatch")
	}
	for i, v := range src {
		o.PutUint32(dst[i*4:], v)
	}
}

// PutUint64Slice encodes src into dst.
func PutUint64Slice(o ByteOrder, dst []byte, src []uint64) {
	if len(dst) != len(src)*8 {
		panic("byteorder: PutUint64Slice: length mismatch")
	}
	for i, v := range src {
		o.PutUint64(dst[i*8:], v)
	}
}

// PutFloat32Slice encodes src into dst.
func PutFloat32Slice(o ByteOrder, dst []byte, src []float32) {
	if len(dst) != len(src)*4 {
		panic("byteorder: PutFloat32Slice: length mismatch")
	}
	for i, v := range src {
		PutFloat32(o, dst[i*4:], v)
	}
}

// PutFloat64Slice encodes src into dst.
func PutFloat64Slice(o ByteOrder, dst []byte, src []float64) {
	if len(dst) != len(src)*8 {
		panic("byteorder: PutFloat64Slice: length mismatch")
	}
	for i, v := range src {
		PutFloat64(o, dst[i*8:], v)
	}
}
