package geocog

import "github.com/paulmach/orb"

// PolygonFromBounds builds the closed ring polygon of a bounding box,
// corners in counter-clockwise order starting at the bottom-left.
func PolygonFromBounds(bound orb.Bound) orb.Polygon {
	if bound.IsEmpty() {
		return orb.Polygon{}
	}
	ring := orb.Ring{
		{bound.Min[0], bound.Min[1]},
		{bound.Max[0], bound.Min[1]},
		{bound.Max[0], bound.Max[1]},
		{bound.Min[0], bound.Max[1]},
		{bound.Min[0], bound.Min[1]},
	}
	return orb.Polygon{ring}
}

// PointFromPixel converts a pixel coordinate at the given overview level
// into a geographic point.
func (c *COG) PointFromPixel(x, y int, overview int) (orb.Point, error) {
	l, err := c.Level(overview)
	if err != nil {
		return orb.Point{}, err
	}
	gx, gy := l.Geo.pixelToGeo(float64(x), float64(y))
	return orb.Point{gx, gy}, nil
}

// PixelFromPoint converts a geographic point into pixel coordinates at the
// given overview level, assuming an unrotated, north-up image.
func (c *COG) PixelFromPoint(point orb.Point, overview int) (int, int, error) {
	l, err := c.Level(overview)
	if err != nil {
		return 0, 0, err
	}
	bounds := l.Geo.bounds(l.Meta.Width, l.Meta.Height)
	geoWidth := bounds.Max[0] - bounds.Min[0]
	geoHeight := bounds.Max[1] - bounds.Min[1]
	if geoWidth == 0 || geoHeight == 0 {
		return 0, 0, nil
	}
	px := int((point[0] - bounds.Min[0]) / geoWidth * float64(l.Meta.Width))
	py := int((bounds.Max[1] - point[1]) / geoHeight * float64(l.Meta.Height))
	return px, py, nil
}

// GetImagePolygon returns the footprint of the given overview level as a
// polygon in its CRS.
func (c *COG) GetImagePolygon(overview int) (orb.Polygon, error) {
	l, err := c.Level(overview)
	if err != nil {
		return nil, err
	}
	return PolygonFromBounds(l.Geo.bounds(l.Meta.Width, l.Meta.Height)), nil
}

// GetCornerPoints returns the top-left, top-right, bottom-right and
// bottom-left geographic corners of the given overview level, in that
// order.
func (c *COG) GetCornerPoints(overview int) ([4]orb.Point, error) {
	l, err := c.Level(overview)
	if err != nil {
		return [4]orb.Point{}, err
	}
	w, h := float64(l.Meta.Width), float64(l.Meta.Height)
	tlx, tly := l.Geo.pixelToGeo(0, 0)
	trx, try := l.Geo.pixelToGeo(w, 0)
	blx, bly := l.Geo.pixelToGeo(0, h)
	brx, bry := l.Geo.pixelToGeo(w, h)
	return [4]orb.Point{{tlx, tly}, {trx, try}, {brx, bry}, {blx, bly}}, nil
}
