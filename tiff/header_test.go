package tiff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tingold/tiffcore/byteorder"
)

func TestReadHeaderClassicLittleEndian(t *testing.T) {
	// "II" + version 42 (LE) + first IFD offset 8 (LE)
	data := []byte{'I', 'I', 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00}
	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if h.Order != byteorder.LittleEndian {
		t.Fatalf("got order %v", h.Order)
	}
	if h.Version != Classic {
		t.Fatalf("got version %v", h.Version)
	}
	if h.FirstIFD != 8 {
		t.Fatalf("got first IFD %d", h.FirstIFD)
	}
}

func TestReadHeaderClassicBigEndian(t *testing.T) {
	data := []byte{'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08}
	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if h.Order != byteorder.BigEndian {
		t.Fatalf("got order %v", h.Order)
	}
	if h.Version != Classic || h.FirstIFD != 8 {
		t.Fatalf("got version=%v firstIFD=%d", h.Version, h.FirstIFD)
	}
}

func TestReadHeaderBigTiff(t *testing.T) {
	// "MM" + version 43 + offset size 8 + reserved 0 + first IFD offset 16
	data := []byte{
		'M', 'M', 0x00, 0x2b,
		0x00, 0x08, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if h.Version != BigTiff {
		t.Fatalf("got version %v", h.Version)
	}
	if h.FirstIFD != 16 {
		t.Fatalf("got first IFD %d", h.FirstIFD)
	}
}

func TestReadHeaderInvalidSignature(t *testing.T) {
	data := []byte{'X', 'X', 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00}
	_, err := ReadHeader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error")
	}
	var sigErr *InvalidSignatureError
	if !errors.As(err, &sigErr) {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestReadHeaderInvalidVersion(t *testing.T) {
	data := []byte{'I', 'I', 0x27, 0x00, 0x08, 0x00, 0x00, 0x00}
	_, err := ReadHeader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error")
	}
	var verErr *InvalidVersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestReadHeaderBigTiffRejectsWrongOffsetSize(t *testing.T) {
	// offset size 16 instead of the required 8.
	data := []byte{
		'M', 'M', 0x00, 0x2b,
		0x00, 0x10, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	_, err := ReadHeader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for offset size != 8")
	}
	var verErr *InvalidVersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestReadHeaderBigTiffRejectsNonZeroReserved(t *testing.T) {
	// offset size 8 (valid), reserved 1 instead of the required 0.
	data := []byte{
		'M', 'M', 0x00, 0x2b,
		0x00, 0x08, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	_, err := ReadHeader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for non-zero reserved field")
	}
	var verErr *InvalidVersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("got %v (%T)", err, err)
	}
}
