package geo

// isLeft reports where p sits relative to the directed line a→b via the
// 2D cross product: positive for left of the line, zero for on it,
// negative for right.
func isLeft(a, b, p Point) float64 {
	return (b.Lon-a.Lon)*(p.Lat-a.Lat) - (p.Lon-a.Lon)*(b.Lat-a.Lat)
}

// PointInPolygonWindingNumber reports whether p lies inside the ring by
// computing the winding number of the boundary around p: the net count
// of counter-clockwise wraps. The point is inside iff the winding
// number is nonzero.
//
// The ring is treated as implicitly closed — the edge from the last
// vertex back to the first is synthesized — and is never mutated. This
// is the preferred containment test: unlike even-odd ray casting it
// stays correct for concave and self-intersecting rings (a pentagram's
// center winds twice and is reported inside).
//
// Boundary points follow the half-open crossing convention: for a
// counter-clockwise ring, points on the left/bottom edges report
// inside, points on the right/top edges outside.
//
// Rings with fewer than three vertices contain nothing.
func PointInPolygonWindingNumber(p Point, ring []Point) bool {
	wn := 0
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if a.Lat <= p.Lat {
			if b.Lat > p.Lat && isLeft(a, b, p) > 0 {
				wn++ // upward edge crossing with p to its left
			}
		} else if b.Lat <= p.Lat && isLeft(a, b, p) < 0 {
			wn-- // downward edge crossing with p to its right
		}
	}

	return wn != 0
}

// PointInPolygonRayCast reports whether p lies inside the ring by the
// even-odd rule: a horizontal ray from p toggles containment at every
// boundary crossing.
//
// Provided for reference and comparison with the winding-number test;
// the two agree on simple rings but diverge on self-intersecting ones,
// where even-odd counts doubly-wound interior regions as outside. The
// ring is implicitly closed and never mutated.
func PointInPolygonRayCast(p Point, ring []Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) &&
			p.Lon < (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat)+a.Lon {
			inside = !inside
		}
	}

	return inside
}
