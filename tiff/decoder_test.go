package tiff

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildClassicTIFF assembles a minimal, valid little-endian Classic TIFF
// with a single directory, for exercising the directory/entry walk and the
// metadata builder without needing a real sample file on disk.
func buildClassicTIFF(t *testing.T, pixels []byte) []byte {
	t.Helper()

	type entry struct {
		tag   Tag
		dtype DType
		count uint32
		value uint32 // left-justified inline value for Short/Long, count==1
	}
	entries := []entry{
		{ImageWidth, Short, 1, 4},
		{ImageLength, Short, 1, 4},
		{BitsPerSample, Short, 1, 8},
		{Compression, Short, 1, uint32(CompressionNone)},
		{PhotometricInterpretation, Short, 1, 1},
		{StripOffsets, Long, 1, 0}, // patched below
		{SamplesPerPixel, Short, 1, 1},
		{RowsPerStrip, Short, 1, 4},
		{StripByteCounts, Long, 1, uint32(len(pixels))},
	}

	const headerSize = 8
	ifdOffset := uint32(headerSize)
	entrySize := uint32(12)
	dirSize := 2 + uint32(len(entries))*entrySize + 4
	dataOffset := ifdOffset + dirSize

	for i := range entries {
		if entries[i].tag == StripOffsets {
			entries[i].value = dataOffset
		}
	}

	buf := &bytes.Buffer{}
	buf.WriteString("II")
	binary.Write(buf, binary.LittleEndian, uint16(42))
	binary.Write(buf, binary.LittleEndian, ifdOffset)

	binary.Write(buf, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(buf, binary.LittleEndian, uint16(e.tag))
		binary.Write(buf, binary.LittleEndian, uint16(e.dtype))
		binary.Write(buf, binary.LittleEndian, e.count)
		binary.Write(buf, binary.LittleEndian, e.value)
	}
	binary.Write(buf, binary.LittleEndian, uint32(0)) // no next IFD

	if uint32(buf.Len()) != dataOffset {
		t.Fatalf("layout mismatch: buf.Len()=%d dataOffset=%d", buf.Len(), dataOffset)
	}
	buf.Write(pixels)
	return buf.Bytes()
}

func TestDecoderSingleStripDirectory(t *testing.T) {
	pixels := make([]byte, 16)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	data := buildClassicTIFF(t, pixels)

	dec, err := NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	dirs := dec.Directories()
	dir, ok := dirs.Next()
	if !ok {
		t.Fatalf("expected a directory, err=%v", dirs.Err())
	}
	if dir.Len() != 9 {
		t.Fatalf("got %d entries", dir.Len())
	}
	if _, ok := dirs.Next(); ok {
		t.Fatal("expected only one directory")
	}

	meta, err := BuildMetadata(dir)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Width != 4 || meta.Height != 4 {
		t.Fatalf("got %dx%d", meta.Width, meta.Height)
	}
	if meta.Layout.Kind != LayoutStrips {
		t.Fatalf("expected strip layout")
	}

	chunks := meta.Chunks()
	if chunks.Len() != 1 {
		t.Fatalf("expected 1 chunk, got %d", chunks.Len())
	}
	c, ok := chunks.Next()
	if !ok {
		t.Fatal("expected a chunk")
	}
	if c.Width != 4 || c.Height != 4 || c.ByteCount != 16 {
		t.Fatalf("unexpected chunk: %+v", c)
	}
}

func TestDirectoryFindMissingTag(t *testing.T) {
	data := buildClassicTIFF(t, make([]byte, 16))
	dec, err := NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	dir, _ := dec.Directories().Next()
	if _, ok := dir.Find(Artist); ok {
		t.Fatal("did not expect an Artist tag")
	}
	e, ok := dir.Find(ImageWidth)
	if !ok {
		t.Fatal("expected ImageWidth entry")
	}
	var width uint16
	if err := e.Decode(&width); err != nil {
		t.Fatal(err)
	}
	if width != 4 {
		t.Fatalf("got %d", width)
	}
}

func TestEntriesDoubleEndedIterator(t *testing.T) {
	data := buildClassicTIFF(t, make([]byte, 16))
	dec, err := NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	dir, _ := dec.Directories().Next()
	it := dir.Entries()
	front, ok := it.Next()
	if !ok || front.Tag() != ImageWidth {
		t.Fatalf("expected ImageWidth first, got %v ok=%v", front, ok)
	}
	back, ok := it.NextBack()
	if !ok || back.Tag() != StripByteCounts {
		t.Fatalf("expected StripByteCounts last, got %v ok=%v", back, ok)
	}
	if it.Len() != 7 {
		t.Fatalf("got remaining len %d", it.Len())
	}
}

func TestBuildMetadataMissingRequiredTag(t *testing.T) {
	data := buildClassicTIFF(t, make([]byte, 16))
	// Corrupt the first entry's tag (ImageWidth, at byte 10) to an unused
	// tag number so the directory loses a required tag.
	data[10] = 0xff
	dec, err := NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	dir, _ := dec.Directories().Next()
	if _, err := BuildMetadata(dir); err == nil {
		t.Fatal("expected error for missing ImageWidth tag")
	}
}
