package geocog

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const maxMercator = 20037508.342789244

// mercatorToWGS84 converts an EPSG:3857 bound to EPSG:4326.
func mercatorToWGS84(b orb.Bound) orb.Bound {
	minLon := b.Min[0] / maxMercator * 180.0
	maxLon := b.Max[0] / maxMercator * 180.0
	minLat := math.Atan(math.Exp(b.Min[1]*math.Pi/maxMercator))*360.0/math.Pi - 90.0
	maxLat := math.Atan(math.Exp(b.Max[1]*math.Pi/maxMercator))*360.0/math.Pi - 90.0
	return orb.Bound{Min: orb.Point{minLon, minLat}, Max: orb.Point{maxLon, maxLat}}
}

// wgs84ToMercator converts an EPSG:4326 bound to EPSG:3857.
func wgs84ToMercator(b orb.Bound) orb.Bound {
	minX := b.Min[0] / 180.0 * maxMercator
	maxX := b.Max[0] / 180.0 * maxMercator
	minY := math.Log(math.Tan((90.0+b.Min[1])*math.Pi/360.0)) / math.Pi * maxMercator
	maxY := math.Log(math.Tan((90.0+b.Max[1])*math.Pi/360.0)) / math.Pi * maxMercator
	return orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
}

// ReadTile reads the pixels of a slippy-map tile from the main image,
// reprojecting the tile's WGS84 bound into the raster's own CRS (EPSG:4326
// or EPSG:3857 only) and resampling to tileSize (default 256) with nearest
// neighbor.
func (c *COG) ReadTile(tile maptile.Tile, tileSize ...int) (*RasterData, error) {
	size := 256
	if len(tileSize) > 0 && tileSize[0] > 0 {
		size = tileSize[0]
	}

	crs := c.CRS()
	if crs != "EPSG:4326" && crs != "EPSG:3857" {
		return nil, fmt.Errorf("geocog: unsupported CRS %q for tile reads (need EPSG:4326 or EPSG:3857)", crs)
	}

	tileBound := tile.Bound()
	geoBound := tileBound
	if crs == "EPSG:3857" {
		geoBound = wgs84ToMercator(tileBound)
	}

	l := c.levels[0]
	rect, err := geoToPixelRect(l, geoBound)
	if err != nil {
		return nil, err
	}
	rect = rect.clamp(int(l.Meta.Width), int(l.Meta.Height))
	if rect.width() <= 0 || rect.height() <= 0 {
		return nil, fmt.Errorf("geocog: tile does not overlap image")
	}

	data, err := c.readWindow(l, rect)
	if err != nil {
		return nil, err
	}
	if data.Width != size || data.Height != size {
		data = resampleNearest(data, size, size)
	}
	data.Bounds = geoBound
	return data, nil
}

// resampleNearest resizes src to dstWidth x dstHeight with nearest-neighbor
// sampling.
func resampleNearest(src *RasterData, dstWidth, dstHeight int) *RasterData {
	dst := newRasterData(dstWidth, dstHeight, src.Bands, src.Bounds)
	for y := 0; y < dstHeight; y++ {
		srcY := y * src.Height / dstHeight
		if srcY >= src.Height {
			srcY = src.Height - 1
		}
		for x := 0; x < dstWidth; x++ {
			srcX := x * src.Width / dstWidth
			if srcX >= src.Width {
				srcX = src.Width - 1
			}
			for b := 0; b < src.Bands; b++ {
				dst.Set(b, x, y, src.At(b, srcX, srcY))
			}
		}
	}
	return dst
}
