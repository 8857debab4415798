package geo

// Point is a geographic location in degrees: longitude in [−180, 180],
// latitude in [−90, 90]. Longitude comes first, matching GeoJSON
// coordinate order.
type Point struct {
	Lon float64
	Lat float64
}

// BoundingBox is the axis-aligned region between its bottom-left and
// top-right corners. A box whose TopRight longitude is smaller than its
// BottomLeft longitude represents a region wrapping across the ±180°
// antimeridian.
type BoundingBox struct {
	BottomLeft Point
	TopRight   Point
}

// Contains reports whether p lies inside the box, boundaries included.
//
// Latitude is an ordinary range test. Longitude special-cases the
// antimeridian: when the box wraps (TopRight.Lon < BottomLeft.Lon) the
// valid band runs from BottomLeft.Lon up through ±180° and back to
// TopRight.Lon, so p matches on either side of the seam.
func (b BoundingBox) Contains(p Point) bool {
	if p.Lat < b.BottomLeft.Lat || p.Lat > b.TopRight.Lat {
		return false
	}

	if b.TopRight.Lon < b.BottomLeft.Lon {
		// wrapped band: one bound suffices
		return p.Lon >= b.BottomLeft.Lon || p.Lon <= b.TopRight.Lon
	}

	return p.Lon >= b.BottomLeft.Lon && p.Lon <= b.TopRight.Lon
}
