package predictor

import (
	"testing"

	"github.com/tingold/tiffcore/byteorder"
)

func diffRow(samplesPerPixel int, decoded []byte) []byte {
	row := make([]byte, len(decoded))
	copy(row, decoded)
	for i := len(row) - 1; i >= samplesPerPixel; i-- {
		row[i] -= row[i-samplesPerPixel]
	}
	return row
}

func TestDecodeIntegerRowSamplesOne(t *testing.T) {
	decoded := []byte{1, 2, 3, 4, 5}
	row := diffRow(1, decoded)
	if err := DecodeIntegerRow(byteorder.LittleEndian, 1, 1, row); err != nil {
		t.Fatal(err)
	}
	for i := range decoded {
		if row[i] != decoded[i] {
			t.Fatalf("got %v, want %v", row, decoded)
		}
	}
}

func TestDecodeIntegerRowSamplesThree(t *testing.T) {
	decoded := []byte{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5}
	row := diffRow(3, decoded)
	// differencing a constant-step ramp across 3 channels always yields
	// all-ones after the first column.
	for i := 3; i < len(row); i++ {
		if row[i] != 1 {
			t.Fatalf("unexpected differenced row: %v", row)
		}
	}
	if err := DecodeIntegerRow(byteorder.LittleEndian, 3, 1, row); err != nil {
		t.Fatal(err)
	}
	for i := range decoded {
		if row[i] != decoded[i] {
			t.Fatalf("got %v, want %v", row, decoded)
		}
	}
}

func TestDecodeIntegerRowSamplesFive(t *testing.T) {
	decoded := []byte{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3}
	row := diffRow(5, decoded)
	if err := DecodeIntegerRow(byteorder.LittleEndian, 5, 1, row); err != nil {
		t.Fatal(err)
	}
	for i := range decoded {
		if row[i] != decoded[i] {
			t.Fatalf("got %v, want %v", row, decoded)
		}
	}
}

func TestDecodeIntegerRowWraps(t *testing.T) {
	// 250 + 10 must wrap to 4 (mod 256), not saturate.
	row := []byte{250, 10}
	if err := DecodeIntegerRow(byteorder.LittleEndian, 1, 1, row); err != nil {
		t.Fatal(err)
	}
	if row[1] != 4 {
		t.Fatalf("got %d, want 4", row[1])
	}
}

func TestDecodeIntegerRowUint16BigEndian(t *testing.T) {
	decoded := []uint16{100, 300, 500, 1000}
	row := make([]byte, len(decoded)*2)
	for i, v := range decoded {
		byteorder.BigEndian.PutUint16(row[i*2:], v)
	}
	// difference in place, highest index first
	for i := len(decoded) - 1; i >= 1; i-- {
		prev := byteorder.BigEndian.Uint16(row[(i-1)*2:])
		cur := byteorder.BigEndian.Uint16(row[i*2:])
		byteorder.BigEndian.PutUint16(row[i*2:], cur-prev)
	}

	if err := DecodeIntegerRow(byteorder.BigEndian, 1, 2, row); err != nil {
		t.Fatal(err)
	}
	for i, want := range decoded {
		got := byteorder.BigEndian.Uint16(row[i*2:])
		if got != want {
			t.Fatalf("index %d: got %d, want %d", i, got, want)
		}
	}
}

func TestDecodeIntegerRowInvalidStride(t *testing.T) {
	if err := DecodeIntegerRow(byteorder.LittleEndian, 3, 1, []byte{1, 2}); err == nil {
		t.Fatal("expected error for row length not a multiple of stride")
	}
}
