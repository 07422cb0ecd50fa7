// Package predictor reverses the two TIFF prediction schemes applied before
// compression: horizontal integer differencing (Predictor=2) and Adobe's
// floating-point byte-plane predictor (Predictor=3). Both operate in place
// on one decompressed row at a time; a row's first pixel column is stored
// verbatim and seeds the running sum each later column is added to, so
// reversal must run the full row in column order and cannot be
// parallelized across columns.
package predictor

import (
	"fmt"

	"github.com/tingold/tiffcore/byteorder"
)

// DecodeIntegerRow reverses horizontal differencing on one decompressed
// row in place. samplesPerPixel is the number of interleaved channels
// (SamplesPerPixel) and bytesPerSample is the wire width of each sample (1,
// 2, 4 or 8, matching the DType the channel decodes to). row's length must
// be a whole multiple of samplesPerPixel*bytesPerSample.
//
// The original source dispatches to monomorphized kernels for
// samplesPerPixel 1 through 4 and a heap-allocated accumulator beyond that;
// this is a performance optimization Go's compiler has no equivalent
// leverage for (no const generics to specialize on), so one loop handles
// every arity here.
func DecodeIntegerRow(order byteorder.ByteOrder, samplesPerPixel, bytesPerSample int, row []byte) error {
	stride := samplesPerPixel * bytesPerSample
	if stride == 0 || len(row)%stride != 0 {
		return fmt.Errorf("predictor: row length %d is not a multiple of stride %d", len(row), stride)
	}
	count := len(row) / bytesPerSample

	switch bytesPerSample {
	case 1:
		for k := samplesPerPixel; k < count; k++ {
			row[k] += row[k-samplesPerPixel]
		}
	case 2:
		for k := samplesPerPixel; k < count; k++ {
			off, prev := k*2, (k-samplesPerPixel)*2
			v := order.Uint16(row[prev:]) + order.Uint16(row[off:])
			order.PutUint16(row[off:], v)
		}
	case 4:
		for k := samplesPerPixel; k < count; k++ {
			off, prev := k*4, (k-samplesPerPixel)*4
			v := order.Uint32(row[prev:]) + order.Uint32(row[off:])
			order.PutUint32(row[off:], v)
		}
	case 8:
		for k := samplesPerPixel; k < count; k++ {
			off, prev := k*8, (k-samplesPerPixel)*8
			v := order.Uint64(row[prev:]) + order.Uint64(row[off:])
			order.PutUint64(row[off:], v)
		}
	default:
		return fmt.Errorf("predictor: unsupported sample width %d bytes", bytesPerSample)
	}
	return nil
}
