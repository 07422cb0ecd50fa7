package byteorder

import "testing"

func TestLittleEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	LittleEndian.PutUint64(buf, 0x0102030405060708)
	if got := LittleEndian.Uint64(buf); got != 0x0102030405060708 {
		t.Fatalf("got %#x", got)
	}
	if buf[0] != 0x08 || buf[7] != 0x01 {
		t.Fatalf("unexpected byte layout: % x", buf)
	}
}

func TestBigEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	BigEndian.PutUint64(buf, 0x0102030405060708)
	if got := BigEndian.Uint64(buf); got != 0x0102030405060708 {
		t.Fatalf("got %#x", got)
	}
	if buf[0] != 0x01 || buf[7] != 0x08 {
		t.Fatalf("unexpected byte layout: % x", buf)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutFloat32(BigEndian, buf, 1.0)
	if buf[0] != 0x3f || buf[1] != 0x80 || buf[2] != 0 || buf[3] != 0 {
		t.Fatalf("unexpected IEEE-754 layout: % x", buf)
	}
	if got := Float32(BigEndian, buf); got != 1.0 {
		t.Fatalf("got %v", got)
	}
}

func TestUint16SliceLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Uint16Slice(LittleEndian, make([]uint16, 2), make([]byte, 3))
}

func TestUint32Slice(t *testing.T) {
	src := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	dst := make([]uint32, 2)
	Uint32Slice(LittleEndian, dst, src)
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("got %v", dst)
	}
}
