package geocog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/valyala/fasthttp"

	"github.com/tingold/tiffcore/byteorder"
	"github.com/tingold/tiffcore/tiff"
)

// ImageLevel is one directory of a COG: the main image (first in the
// directory chain, OverviewLevelMain in Level) or one of its
// reduced-resolution overviews.
type ImageLevel struct {
	Meta *tiff.Metadata
	Geo  *GeoReference
}

// COG is an open Cloud-Optimized GeoTIFF: a directory chain backed by a
// seekable source, read lazily - opening one only walks the directories
// and decodes their tag values, it never reads strip or tile pixel data
// until a Read* call asks for a region.
type COG struct {
	src    io.ReadSeeker
	order  byteorder.ByteOrder
	levels []*ImageLevel
	closer io.Closer
}

// Open opens a COG from a local file path or an http(s) URL, detected by
// prefix, and reads its directory chain and georeferencing metadata. It
// does not read any pixel data.
func Open(pathOrURL string, client *fasthttp.Client) (*COG, error) {
	var src io.ReadSeeker
	var closer io.Closer

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		if client == nil {
			client = &fasthttp.Client{ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second}
		}
		src = NewHTTPRangeReader(pathOrURL, client)
	} else {
		f, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("geocog: opening %s: %w", pathOrURL, err)
		}
		src, closer = f, f
	}

	cog, err := Read(src)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	cog.closer = closer
	return cog, nil
}

// ReadFromURL opens a COG directly over HTTP range requests, bypassing
// Open's path/URL sniffing for callers that already know they have a URL.
func ReadFromURL(url string, client *fasthttp.Client) (*COG, error) {
	if client == nil {
		client = &fasthttp.Client{ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second}
	}
	return Read(NewHTTPRangeReader(url, client))
}

// Read opens a COG from an already-open seekable source, reading its full
// directory chain and georeferencing metadata.
func Read(src io.ReadSeeker) (*COG, error) {
	dec, err := tiff.NewDecoder(src)
	if err != nil {
		return nil, fmt.Errorf("geocog: reading TIFF header: %w", err)
	}

	var levels []*ImageLevel
	dirs := dec.Directories()
	for {
		dir, ok := dirs.Next()
		if !ok {
			break
		}
		meta, err := tiff.BuildMetadata(dir)
		if err != nil {
			return nil, fmt.Errorf("geocog: directory at offset %d: %w", dir.Offset, err)
		}
		geo, err := buildGeoReference(meta)
		if err != nil {
			return nil, err
		}
		levels = append(levels, &ImageLevel{Meta: meta, Geo: geo})
	}
	if err := dirs.Err(); err != nil {
		return nil, fmt.Errorf("geocog: walking directory chain: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("geocog: no image directories found")
	}

	return &COG{src: src, order: dec.Order(), levels: levels}, nil
}

// Close releases the underlying file, if Open opened one. Closing a COG
// opened via Read on a caller-supplied source, or over HTTP, is a no-op.
func (c *COG) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Bounds returns the geographic bounding box of the main image.
func (c *COG) Bounds() orb.Bound {
	l := c.levels[0]
	return l.Geo.bounds(l.Meta.Width, l.Meta.Height)
}

// CRS returns the coordinate reference system of the main image, as an
// "EPSG:n" string, or "" if the file carries no georeferencing.
func (c *COG) CRS() string { return c.levels[0].Geo.CRS }

// Width returns the main image's width in pixels.
func (c *COG) Width() int { return int(c.levels[0].Meta.Width) }

// Height returns the main image's height in pixels.
func (c *COG) Height() int { return int(c.levels[0].Meta.Height) }

// BandCount returns the number of samples per pixel of the main image.
func (c *COG) BandCount() int { return len(c.levels[0].Meta.Samples) }

// SampleKind returns the native representation of the main image's
// samples, assuming (as nearly all real-world rasters do) that every band
// shares one.
func (c *COG) SampleKind() (SampleKind, error) {
	return sampleKind(c.levels[0].Meta.Samples[0])
}

// OverviewCount returns the number of reduced-resolution levels following
// the main image.
func (c *COG) OverviewCount() int {
	if len(c.levels) == 0 {
		return 0
	}
	return len(c.levels) - 1
}

// Level returns the image level for the given overview index, where -1
// (or OverviewLevelMain) is the full-resolution main image and 0, 1, ...
// are successive overviews.
func (c *COG) Level(overview int) (*ImageLevel, error) {
	idx := overview + 1
	if idx < 0 || idx >= len(c.levels) {
		return nil, fmt.Errorf("geocog: overview %d out of range (have %d)", overview, c.OverviewCount())
	}
	return c.levels[idx], nil
}

// OverviewLevelMain selects the full-resolution image in Level and
// ReadRegion/ReadWindow's overview parameter.
const OverviewLevelMain = -1

// selectOverview picks the coarsest overview whose resolution still meets
// or exceeds the request, so a caller asking for a small output window
// over a huge raster doesn't pay to decode full-resolution chunks only to
// throw most of the pixels away.
func (c *COG) selectOverview(wantWidth, wantHeight int) int {
	best := OverviewLevelMain
	bestWidth := int(c.levels[0].Meta.Width)
	for i := 1; i < len(c.levels); i++ {
		w := int(c.levels[i].Meta.Width)
		h := int(c.levels[i].Meta.Height)
		if w >= wantWidth && h >= wantHeight && w < bestWidth {
			best = i - 1
			bestWidth = w
		}
	}
	return best
}

// PixelRect is an axis-aligned, half-open pixel rectangle: columns
// [MinX, MaxX) and rows [MinY, MaxY).
type PixelRect struct {
	MinX, MinY, MaxX, MaxY int
}

func (r PixelRect) width() int  { return r.MaxX - r.MinX }
func (r PixelRect) height() int { return r.MaxY - r.MinY }

func (r PixelRect) clamp(width, height int) PixelRect {
	if r.MinX < 0 {
		r.MinX = 0
	}
	if r.MinY < 0 {
		r.MinY = 0
	}
	if r.MaxX > width {
		r.MaxX = width
	}
	if r.MaxY > height {
		r.MaxY = height
	}
	return r
}

// geoToPixelRect converts a geographic bound to the pixel rectangle of l
// that covers it, by mapping the bound's min and max corners linearly onto
// the image's geographic bounding box. The result is exact only for an
// unrotated, north-up image.
func geoToPixelRect(l *ImageLevel, bound orb.Bound) (PixelRect, error) {
	width, height := int(l.Meta.Width), int(l.Meta.Height)
	imgBounds := l.Geo.bounds(l.Meta.Width, l.Meta.Height)
	geoWidth := imgBounds.Max[0] - imgBounds.Min[0]
	geoHeight := imgBounds.Max[1] - imgBounds.Min[1]
	if geoWidth == 0 || geoHeight == 0 {
		return PixelRect{}, fmt.Errorf("geocog: image has no georeferencing to map bounds against")
	}

	toPixel := func(p orb.Point) (int, int) {
		px := int((p[0] - imgBounds.Min[0]) / geoWidth * float64(width))
		py := int((imgBounds.Max[1] - p[1]) / geoHeight * float64(height))
		return px, py
	}
	x0, y0 := toPixel(bound.Min)
	x1, y1 := toPixel(bound.Max)
	rect := PixelRect{MinX: x0, MinY: y1, MaxX: x1, MaxY: y0}
	if rect.MinX > rect.MaxX {
		rect.MinX, rect.MaxX = rect.MaxX, rect.MinX
	}
	if rect.MinY > rect.MaxY {
		rect.MinY, rect.MaxY = rect.MaxY, rect.MinY
	}
	return rect.clamp(width, height), nil
}

// ReadRegion reads the pixels of bound, a geographic bounding box, from
// the given overview level (OverviewLevelMain for full resolution).
func (c *COG) ReadRegion(bound orb.Bound, overview int) (*RasterData, error) {
	l, err := c.Level(overview)
	if err != nil {
		return nil, err
	}
	rect, err := geoToPixelRect(l, bound)
	if err != nil {
		return nil, err
	}
	return c.readWindow(l, rect)
}

// ReadWindow reads the pixels of rect, a pixel-space rectangle, choosing
// the coarsest overview that still covers rect at full requested detail.
func (c *COG) ReadWindow(rect PixelRect) (*RasterData, error) {
	overview := c.selectOverview(rect.width(), rect.height())
	l, err := c.Level(overview)
	if err != nil {
		return nil, err
	}
	rect = rect.clamp(int(l.Meta.Width), int(l.Meta.Height))
	return c.readWindow(l, rect)
}
