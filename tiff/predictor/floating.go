package predictor

import "fmt"

// DecodeFloatRow reverses Adobe's floating-point predictor (TIFF
// Predictor=3) on one decompressed row in place. bytesPerSample is 4 for
// Float samples and 8 for Double samples.
//
// The encoder's two stages run in reverse here: first undo a flat,
// byte-by-byte difference across the entire row (wrapping mod 256, exactly
// like the integer predictor's column differencing but with no channel
// stride), then de-shuffle the result out of its byte-plane layout — all
// most-significant bytes first, then all second-most-significant, and so
// on — back into bytesPerSample-wide chunks in row's declared byte order.
// Once de-shuffled, row holds a plain array of bytesPerSample-wide floats
// in that byte order, ready for byteorder.Float32Slice/Float64Slice.
func DecodeFloatRow(bigEndian bool, bytesPerSample int, row []byte) error {
	if bytesPerSample != 4 && bytesPerSample != 8 {
		return fmt.Errorf("predictor: unsupported float sample width %d bytes", bytesPerSample)
	}
	if len(row)%bytesPerSample != 0 {
		return fmt.Errorf("predictor: row length %d is not a multiple of %d", len(row), bytesPerSample)
	}
	cols := len(row) / bytesPerSample

	for i := 1; i < len(row); i++ {
		row[i] += row[i-1]
	}

	out := make([]byte, len(row))
	for col := 0; col < cols; col++ {
		for b := 0; b < bytesPerSample; b++ {
			plane := b
			if !bigEndian {
				plane = bytesPerSample - b - 1
			}
			out[col*bytesPerSample+b] = row[plane*cols+col]
		}
	}
	copy(row, out)
	return nil
}
