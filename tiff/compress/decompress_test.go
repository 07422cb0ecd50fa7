package compress

import (
	"bytes"
	"compress/lzw"
	"io"
	"testing"

	kzlib "github.com/klauspost/compress/zlib"

	"github.com/tingold/tiffcore/tiff"
)

func TestNewDecompressReaderNone(t *testing.T) {
	r, err := NewDecompressReader(tiff.CompressionNone, bytes.NewReader([]byte("abc")))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestNewDecompressReaderDeflate(t *testing.T) {
	var buf bytes.Buffer
	w := kzlib.NewWriter(&buf)
	w.Write([]byte("hello tiff"))
	w.Close()

	r, err := NewDecompressReader(tiff.CompressionDeflate, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello tiff" {
		t.Fatalf("got %q", got)
	}
}

func TestNewDecompressReaderLegacyDeflateMatchesDeflate(t *testing.T) {
	var buf bytes.Buffer
	w := kzlib.NewWriter(&buf)
	w.Write([]byte("legacy"))
	w.Close()

	r, err := NewDecompressReader(tiff.CompressionLegacyDeflate, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "legacy" {
		t.Fatalf("got %q", got)
	}
}

func TestNewDecompressReaderLZWLSB(t *testing.T) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.LSB, 8)
	w.Write([]byte("some raster bytes, repeated, some raster bytes"))
	w.Close()

	r, err := NewDecompressReader(tiff.CompressionLZW, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "some raster bytes, repeated, some raster bytes" {
		t.Fatalf("got %q", got)
	}
}

func TestNewDecompressReaderLZWMSBFallback(t *testing.T) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.MSB, 8)
	w.Write([]byte("some other raster bytes, repeated, some other raster bytes"))
	w.Close()

	r, err := NewDecompressReader(tiff.CompressionLZW, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "some other raster bytes, repeated, some other raster bytes" {
		t.Fatalf("got %q", got)
	}
}

func TestNewDecompressReaderUnsupported(t *testing.T) {
	_, err := NewDecompressReader(tiff.CompressionJPEG, bytes.NewReader(nil))
	if err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}
