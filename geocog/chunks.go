package geocog

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/paulmach/orb"
	"github.com/tingold/tiffcore/byteorder"
	"github.com/tingold/tiffcore/decode"
	"github.com/tingold/tiffcore/tiff"
)

// readWindow decodes every chunk of l that intersects rect and assembles
// them into a single RasterData. Chunk fetch (the seek+read against the
// shared, non-concurrent-safe source) is serialized; decompression and
// predictor reversal, the CPU-bound part, run across a worker pool sized
// to the host so a multi-tile window doesn't decode its tiles one at a
// time.
func (c *COG) readWindow(l *ImageLevel, rect PixelRect) (*RasterData, error) {
	width, height := rect.width(), rect.height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("geocog: empty window")
	}
	if l.Meta.PlanarConfiguration != tiff.PlanarConfigurationChunky {
		return nil, fmt.Errorf("geocog: planar (non-chunky) sample layout is not supported")
	}
	bands := len(l.Meta.Samples)
	kind, err := sampleKind(l.Meta.Samples[0])
	if err != nil {
		return nil, err
	}

	geoMin := [2]float64{}
	geoMax := [2]float64{}
	geoMin[0], geoMax[1] = l.Geo.pixelToGeo(float64(rect.MinX), float64(rect.MinY))
	geoMax[0], geoMin[1] = l.Geo.pixelToGeo(float64(rect.MaxX), float64(rect.MaxY))
	out := newRasterData(width, height, bands, orbBound(geoMin, geoMax))

	var matched []tiff.Chunk
	it := l.Meta.Chunks()
	for {
		chunk, ok := it.Next()
		if !ok {
			break
		}
		if chunkIntersects(chunk, rect) {
			matched = append(matched, chunk)
		}
	}
	if len(matched) == 0 {
		return out, nil
	}

	type fetched struct {
		chunk tiff.Chunk
		raw   []byte
		err   error
	}
	raws := make([]fetched, len(matched))
	for i, chunk := range matched {
		buf := getBuffer(int(chunk.ByteCount))
		if _, err := c.src.Seek(int64(chunk.Offset), 0); err != nil {
			return nil, fmt.Errorf("geocog: seeking to chunk %d: %w", chunk.Index, err)
		}
		if _, err := io.ReadFull(c.src, buf); err != nil {
			return nil, fmt.Errorf("geocog: reading chunk %d: %w", chunk.Index, err)
		}
		raws[i] = fetched{chunk: chunk, raw: buf}
	}

	workers := runtime.NumCPU()
	if workers > len(raws) {
		workers = len(raws)
	}
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int, len(raws))
	results := make([]fetched, len(raws))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				f := raws[idx]
				data, err := decode.ChunkBytes(c.order, l.Meta, f.raw, f.chunk)
				results[idx] = fetched{chunk: f.chunk, raw: data, err: err}
			}
		}()
	}
	for i := range raws {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, f := range raws {
		putBuffer(f.raw)
	}
	for _, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("geocog: decoding chunk %d: %w", res.chunk.Index, res.err)
		}
		unpackChunk(out, rect, res.chunk, res.raw, bands, kind, c.order, l.Meta.Photometric)
	}
	return out, nil
}

func orbBound(min, max [2]float64) orb.Bound {
	return orb.Bound{Min: orb.Point{min[0], min[1]}, Max: orb.Point{max[0], max[1]}}
}

func chunkIntersects(c tiff.Chunk, rect PixelRect) bool {
	cx0, cy0 := int(c.OriginX), int(c.OriginY)
	cx1, cy1 := cx0+int(c.Width), cy0+int(c.Height)
	return cx0 < rect.MaxX && cx1 > rect.MinX && cy0 < rect.MaxY && cy1 > rect.MinY
}

// unpackChunk writes the overlap between chunk's pixel rectangle and rect
// out of data (row-major, band-interleaved, bands*bytesPerSample per
// pixel) into out, whose own origin is rect.Min.
func unpackChunk(out *RasterData, rect PixelRect, chunk tiff.Chunk, data []byte, bands int, kind SampleKind, order byteorder.ByteOrder, photometric uint16) {
	bytesPerSample := sampleByteWidth(kind)
	rowStride := int(chunk.Width) * bands * bytesPerSample

	x0 := maxInt(int(chunk.OriginX), rect.MinX)
	x1 := minInt(int(chunk.OriginX)+int(chunk.Width), rect.MaxX)
	y0 := maxInt(int(chunk.OriginY), rect.MinY)
	y1 := minInt(int(chunk.OriginY)+int(chunk.Height), rect.MaxY)

	invert := photometric == 0 // WhiteIsZero
	for y := y0; y < y1; y++ {
		localY := y - int(chunk.OriginY)
		rowOff := localY * rowStride
		for x := x0; x < x1; x++ {
			localX := x - int(chunk.OriginX)
			pixOff := rowOff + localX*bands*bytesPerSample
			for b := 0; b < bands; b++ {
				v := readSample(order, kind, data[pixOff+b*bytesPerSample:])
				if invert {
					v = invertSample(kind, v)
				}
				out.Set(b, x-rect.MinX, y-rect.MinY, v)
			}
		}
	}
}

func sampleByteWidth(k SampleKind) int {
	switch k {
	case KindUint8, KindInt8:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat32:
		return 4
	case KindFloat64:
		return 8
	default:
		return 1
	}
}

func readSample(order byteorder.ByteOrder, kind SampleKind, b []byte) float64 {
	switch kind {
	case KindUint8:
		return float64(b[0])
	case KindInt8:
		return float64(int8(b[0]))
	case KindUint16:
		return float64(order.Uint16(b))
	case KindInt16:
		return float64(byteorder.Int16(order, b))
	case KindUint32:
		return float64(order.Uint32(b))
	case KindInt32:
		return float64(byteorder.Int32(order, b))
	case KindFloat32:
		return float64(byteorder.Float32(order, b))
	case KindFloat64:
		return byteorder.Float64(order, b)
	default:
		return 0
	}
}

func invertSample(kind SampleKind, v float64) float64 {
	switch kind {
	case KindUint8:
		return 255 - v
	case KindUint16:
		return 65535 - v
	case KindUint32:
		return 4294967295 - v
	default:
		return v
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
