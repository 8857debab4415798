package geo

import "math"

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineDistance returns the great-circle distance between p1 and p2
// on a sphere of the given radius, in the radius's unit.
//
// The haversine term is built from the cosine-difference identity
// hav(θ) = (1 − cos θ)/2, which preserves precision for short arcs
// where the direct cosine formula cancels catastrophically. The central
// angle is then 2·asin(√a), scaled by the radius.
//
// Pass EarthRadiusMeters for a result in meters, or a value from
// EarthRadius(unit) for any recognized unit. Near-antipodal pairs lose
// a few digits to the asin; use VincentyDistance when that matters.
func HaversineDistance(p1, p2 Point, radius float64) float64 {
	lat1 := radians(p1.Lat)
	lat2 := radians(p2.Lat)
	dLat := radians(p2.Lat - p1.Lat)
	dLon := radians(p2.Lon - p1.Lon)

	a := (1-math.Cos(dLat))/2 + math.Cos(lat1)*math.Cos(lat2)*(1-math.Cos(dLon))/2

	return 2 * radius * math.Asin(math.Sqrt(a))
}

// VincentyDistance returns the great-circle distance between p1 and p2
// on a sphere of the given radius, in the radius's unit.
//
// This is the spherical Vincenty formula (not the full ellipsoidal
// iteration): the central angle comes from atan2 of a trigonometric
// numerator and denominator, which stays accurate across the whole
// range including near-antipodal pairs where haversine degrades.
//
// The unit contract is identical to HaversineDistance: the result is in
// whatever unit the radius was given in.
func VincentyDistance(p1, p2 Point, radius float64) float64 {
	lat1 := radians(p1.Lat)
	lat2 := radians(p2.Lat)
	dLon := radians(p2.Lon - p1.Lon)

	num := math.Hypot(
		math.Cos(lat2)*math.Sin(dLon),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon),
	)
	den := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Atan2(num, den) * radius
}

// DistanceIn returns the haversine distance between p1 and p2 expressed
// in the named unit, combining EarthRadius and HaversineDistance. The
// error contract is EarthRadius's: ErrUnknownUnit for an unrecognized
// name.
func DistanceIn(unit string, p1, p2 Point) (float64, error) {
	r, err := EarthRadius(unit)
	if err != nil {
		return 0, err
	}

	return HaversineDistance(p1, p2, r), nil
}
