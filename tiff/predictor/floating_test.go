package predictor

import (
	"bytes"
	"testing"

	"github.com/tingold/tiffcore/byteorder"
)

func TestDecodeFloatRowFloat32BigEndian(t *testing.T) {
	packed := []byte{
		0x3f, 0x01, 0x00, 0x00, 0x40, 0x80, 0x40, 0x40,
		0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	row := append([]byte(nil), packed...)
	if err := DecodeFloatRow(true, 4, row); err != nil {
		t.Fatal(err)
	}

	values := make([]float32, 4)
	byteorder.Float32Slice(byteorder.BigEndian, values, row)
	want := []float32{1.0, 2.0, 3.0, 4.0}
	for i, v := range want {
		if values[i] != v {
			t.Fatalf("index %d: got %v, want %v (row=% x)", i, values[i], v, row)
		}
	}
}

func TestDecodeFloatRowRejectsBadWidth(t *testing.T) {
	if err := DecodeFloatRow(true, 3, make([]byte, 6)); err == nil {
		t.Fatal("expected error for unsupported sample width")
	}
}

func TestDecodeFloatRowRejectsMisalignedLength(t *testing.T) {
	if err := DecodeFloatRow(true, 4, make([]byte, 6)); err == nil {
		t.Fatal("expected error for length not a multiple of width")
	}
}

func TestDecodeFloatRowRoundTripsEncoder(t *testing.T) {
	// Build a float64 row, run the (hand-rolled) Adobe-style forward
	// transform, then verify DecodeFloatRow inverts it exactly.
	values := []float64{1.5, -2.25, 100.0, 0.0}
	bps := 8
	cols := len(values)
	native := make([]byte, cols*bps)
	byteorder.PutFloat64Slice(byteorder.BigEndian, native, values)

	shuffled := make([]byte, len(native))
	for col := 0; col < cols; col++ {
		for b := 0; b < bps; b++ {
			shuffled[b*cols+col] = native[col*bps+b]
		}
	}
	encoded := append([]byte(nil), shuffled...)
	for i := len(encoded) - 1; i >= 1; i-- {
		encoded[i] -= encoded[i-1]
	}

	row := append([]byte(nil), encoded...)
	if err := DecodeFloatRow(true, bps, row); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(row, native) {
		t.Fatalf("got % x, want % x", row, native)
	}
}
