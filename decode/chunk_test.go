package decode

import (
	"bytes"
	"testing"

	"github.com/tingold/tiffcore/byteorder"
	"github.com/tingold/tiffcore/tiff"
)

func TestChunkUncompressedNoPredictor(t *testing.T) {
	pixels := []byte{1, 2, 3, 4}
	meta := &tiff.Metadata{
		Width: 2, Height: 2,
		Samples:     []tiff.Sample{{BitsPerSample: 8, Format: tiff.SampleFormatUnsignedInteger}},
		Compression: tiff.CompressionNone,
		Predictor:   tiff.PredictorNone,
	}
	c := tiff.Chunk{Width: 2, Height: 2, Offset: 0, ByteCount: uint64(len(pixels))}

	src := bytes.NewReader(pixels)
	out, err := Chunk(byteorder.LittleEndian, meta, src, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, pixels) {
		t.Fatalf("got %v, want %v", out, pixels)
	}
}

func TestChunkHorizontalPredictorReversal(t *testing.T) {
	// Two rows of four single-byte samples, horizontally differenced:
	// row 0 decodes to 10,12,15,20 and row 1 to 1,1,1,1.
	encoded := []byte{10, 2, 3, 5, 1, 0, 0, 0}
	meta := &tiff.Metadata{
		Width: 4, Height: 2,
		Samples:     []tiff.Sample{{BitsPerSample: 8, Format: tiff.SampleFormatUnsignedInteger}},
		Compression: tiff.CompressionNone,
		Predictor:   tiff.PredictorHorizontal,
	}
	c := tiff.Chunk{Width: 4, Height: 2, Offset: 0, ByteCount: uint64(len(encoded))}

	out, err := ChunkBytes(byteorder.LittleEndian, meta, encoded, c)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 12, 15, 20, 1, 1, 1, 1}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestChunkRejectsMixedSampleDepthsUnderPredictor(t *testing.T) {
	meta := &tiff.Metadata{
		Width: 1, Height: 1,
		Samples: []tiff.Sample{
			{BitsPerSample: 8, Format: tiff.SampleFormatUnsignedInteger},
			{BitsPerSample: 16, Format: tiff.SampleFormatUnsignedInteger},
		},
		Compression: tiff.CompressionNone,
		Predictor:   tiff.PredictorHorizontal,
	}
	c := tiff.Chunk{Width: 1, Height: 1, Offset: 0, ByteCount: 3}

	if _, err := ChunkBytes(byteorder.LittleEndian, meta, []byte{1, 2, 3}, c); err == nil {
		t.Fatal("expected error for mixed sample depths under a predictor")
	}
}
