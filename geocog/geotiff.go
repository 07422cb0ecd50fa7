package geocog

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/tingold/tiffcore/tiff"
)

// GeoKeys used to determine a raster's coordinate reference system
// (GeoTIFF 1.8.2 sec. 6.3).
const (
	geoKeyGTModelType      = 1024
	geoKeyGeographicType   = 2048
	geoKeyProjectedCSType  = 3072
)

// TiePoint is one (pixel, geographic) correspondence from a
// ModelTiepointTag.
type TiePoint struct {
	PixelX, PixelY, PixelZ float64
	GeoX, GeoY, GeoZ       float64
}

// GeoReference holds the georeferencing metadata of a single TIFF
// directory: the affine mapping from pixel space to a named CRS.
type GeoReference struct {
	PixelScale     [3]float64
	TiePoints      []TiePoint
	Transformation [16]float64
	GeoKeys        map[uint16]interface{}
	CRS            string
}

// buildGeoReference reads the GeoTIFF tags out of meta.Entries. Every tag
// here is optional: an ordinary (non-georeferenced) TIFF produces a
// GeoReference with an empty CRS and a pixelToGeo that returns (0, 0).
func buildGeoReference(meta *tiff.Metadata) (*GeoReference, error) {
	g := &GeoReference{GeoKeys: make(map[uint16]interface{})}

	if e, ok := meta.Entries[tiff.ModelPixelScale]; ok {
		vals := make([]float64, e.Count())
		if err := e.Decode(&vals); err != nil {
			return nil, fmt.Errorf("geocog: ModelPixelScale: %w", err)
		}
		copy(g.PixelScale[:], vals)
	}

	if e, ok := meta.Entries[tiff.ModelTiepoint]; ok {
		vals := make([]float64, e.Count())
		if err := e.Decode(&vals); err != nil {
			return nil, fmt.Errorf("geocog: ModelTiepoint: %w", err)
		}
		g.TiePoints = parseTiePoints(vals)
	}

	if e, ok := meta.Entries[tiff.ModelTransformation]; ok {
		vals := make([]float64, e.Count())
		if err := e.Decode(&vals); err != nil {
			return nil, fmt.Errorf("geocog: ModelTransformation: %w", err)
		}
		if len(vals) >= 16 {
			copy(g.Transformation[:], vals[:16])
		}
	}

	var doubleParams []float64
	if e, ok := meta.Entries[tiff.GeoDoubleParams]; ok {
		doubleParams = make([]float64, e.Count())
		if err := e.Decode(&doubleParams); err != nil {
			return nil, fmt.Errorf("geocog: GeoDoubleParams: %w", err)
		}
	}
	var asciiParams string
	if e, ok := meta.Entries[tiff.GeoAsciiParams]; ok {
		s, err := e.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("geocog: GeoAsciiParams: %w", err)
		}
		asciiParams = s
	}

	if e, ok := meta.Entries[tiff.GeoKeyDirectory]; ok {
		dir := make([]uint16, e.Count())
		if err := e.Decode(&dir); err != nil {
			return nil, fmt.Errorf("geocog: GeoKeyDirectory: %w", err)
		}
		if err := parseGeoKeys(dir, doubleParams, asciiParams, g.GeoKeys); err != nil {
			return nil, err
		}
	}

	g.CRS = determineCRS(g.GeoKeys)
	return g, nil
}

func parseTiePoints(values []float64) []TiePoint {
	pts := make([]TiePoint, 0, len(values)/6)
	for i := 0; i+5 < len(values); i += 6 {
		pts = append(pts, TiePoint{
			PixelX: values[i], PixelY: values[i+1], PixelZ: values[i+2],
			GeoX: values[i+3], GeoY: values[i+4], GeoZ: values[i+5],
		})
	}
	return pts
}

// parseGeoKeys walks the short-encoded GeoKey directory: a 4-short header
// (version, key revision, minor revision, key count) followed by one
// 4-short record per key (keyID, location, count, value-or-offset).
func parseGeoKeys(dir []uint16, doubleParams []float64, asciiParams string, out map[uint16]interface{}) error {
	if len(dir) < 4 {
		return fmt.Errorf("geocog: GeoKeyDirectory shorter than its header")
	}
	numKeys := int(dir[3])
	for i := 4; i+3 < len(dir) && (i-4)/4 < numKeys; i += 4 {
		keyID, location, count, raw := dir[i], dir[i+1], dir[i+2], dir[i+3]
		var value interface{}
		switch location {
		case 0:
			value = raw
		case uint16(tiff.GeoDoubleParams):
			if int(raw) < len(doubleParams) {
				if count == 1 {
					value = doubleParams[raw]
				} else if end := int(raw) + int(count); end <= len(doubleParams) {
					value = doubleParams[raw:end]
				}
			}
		case uint16(tiff.GeoAsciiParams):
			if int(raw) < len(asciiParams) {
				end := int(raw) + int(count) - 1
				if end > len(asciiParams) {
					end = len(asciiParams)
				}
				value = asciiParams[raw:end]
			}
		}
		if value != nil {
			out[keyID] = value
		}
	}
	return nil
}

func determineCRS(keys map[uint16]interface{}) string {
	if v, ok := keys[geoKeyProjectedCSType]; ok {
		if code, ok := v.(uint16); ok && code != 0 && code != 32767 {
			return fmt.Sprintf("EPSG:%d", code)
		}
	}
	if v, ok := keys[geoKeyGeographicType]; ok {
		if code, ok := v.(uint16); ok && code != 0 && code != 32767 {
			return fmt.Sprintf("EPSG:%d", code)
		}
	}
	return ""
}

func (g *GeoReference) hasTransformation() bool {
	for _, v := range g.Transformation {
		if v != 0 {
			return true
		}
	}
	return false
}

// pixelToGeo converts a pixel-space coordinate to a geographic one, using
// the affine ModelTransformation if present and falling back to the
// tiepoint + pixel-scale form TIFF 6.0 images use.
func (g *GeoReference) pixelToGeo(pixelX, pixelY float64) (float64, float64) {
	if g.hasTransformation() {
		t := g.Transformation
		return t[0]*pixelX + t[1]*pixelY + t[3], t[4]*pixelX + t[5]*pixelY + t[7]
	}
	if len(g.TiePoints) > 0 && g.PixelScale[0] != 0 {
		tp := g.TiePoints[0]
		geoX := tp.GeoX + (pixelX-tp.PixelX)*g.PixelScale[0]
		geoY := tp.GeoY - (pixelY-tp.PixelY)*g.PixelScale[1]
		return geoX, geoY
	}
	return 0, 0
}

// bounds computes the geographic bounding box of a width x height image
// under this georeferencing.
func (g *GeoReference) bounds(width, height uint32) orb.Bound {
	if width == 0 || height == 0 {
		return orb.Bound{}
	}
	x0, y0 := g.pixelToGeo(0, 0)
	x1, y1 := g.pixelToGeo(float64(width), 0)
	x2, y2 := g.pixelToGeo(0, float64(height))
	x3, y3 := g.pixelToGeo(float64(width), float64(height))
	return orb.Bound{
		Min: orb.Point{minOf(x0, x1, x2, x3), minOf(y0, y1, y2, y3)},
		Max: orb.Point{maxOf(x0, x1, x2, x3), maxOf(y0, y1, y2, y3)},
	}
}

func minOf(vs ...float64) float64 {
	m := math.Inf(1)
	for _, v := range vs {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(vs ...float64) float64 {
	m := math.Inf(-1)
	for _, v := range vs {
		m = math.Max(m, v)
	}
	return m
}
