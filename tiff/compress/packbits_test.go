package compress

import (
	"bytes"
	"io"
	"testing"
)

// TestPackBitsAppleTN1023Vector matches the worked example from Apple Tech
// Note 1023.
func TestPackBitsAppleTN1023Vector(t *testing.T) {
	packed := []byte{
		0xFE, 0xAA, 0x02, 0x80, 0x00, 0x2A, 0xFD, 0xAA,
		0x03, 0x80, 0x00, 0x2A, 0x22, 0xF7, 0xAA,
	}
	want := []byte{
		0xAA, 0xAA, 0xAA, 0x80, 0x00, 0x2A, 0xAA, 0xAA,
		0xAA, 0xAA, 0x80, 0x00, 0x2A, 0x22, 0xAA, 0xAA,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
	}

	r := NewPackBitsReader(bytes.NewReader(packed))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestPackBitsLiteralRun(t *testing.T) {
	// control byte 2 -> copy next 3 bytes verbatim
	packed := []byte{0x02, 0x01, 0x02, 0x03}
	r := NewPackBitsReader(bytes.NewReader(packed))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("got % x", got)
	}
}

func TestPackBitsNoOpControlByte(t *testing.T) {
	// -128 (0x80) is a no-op; it should be skipped and decoding continues.
	packed := []byte{0x80, 0x00, 0x05}
	r := NewPackBitsReader(bytes.NewReader(packed))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x05}) {
		t.Fatalf("got % x", got)
	}
}

func TestPackBitsReadOneByteAtATime(t *testing.T) {
	packed := []byte{0xFE, 0xAA}
	r := NewPackBitsReader(bytes.NewReader(packed))
	buf := make([]byte, 1)
	var out []byte
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(out, []byte{0xAA, 0xAA, 0xAA}) {
		t.Fatalf("got % x", out)
	}
}
