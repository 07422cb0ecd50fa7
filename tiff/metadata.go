package tiff

// LayoutKind distinguishes a strip-organized image from a tile-organized
// one. A directory must declare exactly one; declaring both, or neither, is
// an AmbiguousLayoutError.
type LayoutKind int

const (
	LayoutStrips LayoutKind = iota
	LayoutTiles
)

// Layout describes how image data is chunked: each chunk covers a
// Width x Height region of the image, tiled left-to-right then
// top-to-bottom over the full image dimensions.
type Layout struct {
	Kind   LayoutKind
	Width  uint32
	Height uint32
}

func ceilDivU32(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// ExpectedChunksCount returns the number of chunks an image of the given
// dimensions must have under this layout: ceil(width/Width) *
// ceil(height/Height).
func (l Layout) ExpectedChunksCount(imageWidth, imageHeight uint32) int {
	stride := ceilDivU32(imageWidth, l.Width)
	rows := ceilDivU32(imageHeight, l.Height)
	return int(stride) * int(rows)
}

// ChunkLoc is one entry of the strip/tile offset and byte-count tables.
type ChunkLoc struct {
	Offset    uint64
	ByteCount uint64
}

// Sample describes one image channel's on-disk representation.
type Sample struct {
	BitsPerSample uint16
	Format        SampleFormat
}

// Metadata is the validated, decoded description of a single TIFF image:
// everything needed to locate and decompress its pixel data without
// revisiting the directory.
type Metadata struct {
	Width, Height       uint32
	Layout              Layout
	Samples             []Sample
	PlanarConfiguration PlanarConfiguration
	Compression         CompressionScheme
	Predictor           PredictorScheme
	Photometric         uint16
	SubfileType         SubfileType
	chunks              []ChunkLoc

	// Entries holds every directory entry keyed by tag, including ones
	// Metadata doesn't interpret itself (GeoTIFF keys, EXIF sub-IFD
	// pointers, vendor tags): callers that need those decode them
	// directly via Entry.Decode.
	Entries map[Tag]*Entry
}

// Chunks returns an iterator over the image's chunk locations paired with
// their pixel-space origin and size.
func (m *Metadata) Chunks() *Chunks {
	return &Chunks{m: m, back: len(m.chunks) - 1}
}

// Chunk is one strip or tile: its byte range in the source stream and the
// pixel rectangle it decodes to.
type Chunk struct {
	Index            int
	OriginX, OriginY uint32
	Width, Height    uint32
	Offset           uint64
	ByteCount        uint64
}

// Chunks is an exact-sized, double-ended iterator over a Metadata's chunk
// table.
type Chunks struct {
	m     *Metadata
	front int
	back  int
}

// Len reports the number of chunks not yet consumed from either end.
func (it *Chunks) Len() int {
	if it.front > it.back {
		return 0
	}
	return it.back - it.front + 1
}

func (m *Metadata) buildChunk(index int) Chunk {
	stride := ceilDivU32(m.Width, m.Layout.Width)
	loc := m.chunks[index]
	col := uint32(index) % stride
	row := uint32(index) / stride
	originX := col * m.Layout.Width
	originY := row * m.Layout.Height
	width := m.Layout.Width
	if originX+width > m.Width {
		width = m.Width - originX
	}
	height := m.Layout.Height
	if originY+height > m.Height {
		height = m.Height - originY
	}
	return Chunk{
		Index: index, OriginX: originX, OriginY: originY,
		Width: width, Height: height,
		Offset: loc.Offset, ByteCount: loc.ByteCount,
	}
}

// Next returns the next chunk from the front of the iterator.
func (it *Chunks) Next() (Chunk, bool) {
	if it.front > it.back {
		return Chunk{}, false
	}
	c := it.m.buildChunk(it.front)
	it.front++
	return c, true
}

// NextBack returns the next chunk from the back of the iterator.
func (it *Chunks) NextBack() (Chunk, bool) {
	if it.front > it.back {
		return Chunk{}, false
	}
	c := it.m.buildChunk(it.back)
	it.back--
	return c, true
}
