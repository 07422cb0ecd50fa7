package tiff

import "testing"

func TestDTypeSize(t *testing.T) {
	cases := map[DType]int{
		Byte: 1, Ascii: 1, SignedByte: 1, Undefined: 1,
		Short: 2, SignedShort: 2,
		Long: 4, SignedLong: 4, Float: 4, Ifd: 4,
		Rational: 8, SignedRational: 8, Double: 8, BigLong: 8, BigSignedLong: 8, BigIfd: 8,
	}
	for dt, want := range cases {
		if got := dt.Size(); got != want {
			t.Errorf("%s.Size() = %d, want %d", dt, got, want)
		}
	}
}

func TestParseDTypeRejectsUnknown(t *testing.T) {
	if _, err := ParseDType(0); err == nil {
		t.Fatal("expected error for dtype 0")
	}
	if _, err := ParseDType(19); err == nil {
		t.Fatal("expected error for dtype 19")
	}
	if _, err := ParseDType(14); err == nil {
		t.Fatal("expected error for dtype 14 (unused)")
	}
}

func TestParseDTypeAcceptsAllKnown(t *testing.T) {
	for _, v := range []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17, 18} {
		if _, err := ParseDType(v); err != nil {
			t.Errorf("ParseDType(%d): %v", v, err)
		}
	}
}
