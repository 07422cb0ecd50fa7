package byteorder

import (
	"bytes"
	"testing"
)

func TestReaderScalarLittleEndian(t *testing.T) {
	src := bytes.NewReader([]byte{0x2a, 0x00, 0x00, 0x00})
	r := NewReader(src, LittleEndian)
	v, err := r.ReadUint32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("got %d", v)
	}
}

func TestReaderBulkBigEndian(t *testing.T) {
	src := bytes.NewReader([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03})
	r := NewReader(src, BigEndian)
	buf := make([]uint16, 3)
	if err := r.ReadUint16Into(buf); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Fatalf("got %v", buf)
	}
}
