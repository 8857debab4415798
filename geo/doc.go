// Package geo measures great-circle distances on a spherical Earth and
// answers containment questions for geographic points.
//
// 🚀 What is geo?
//
//	Pure formula evaluation over (lon, lat) pairs in degrees:
//	  • HaversineDistance — half-angle identity, stable for short arcs
//	  • VincentyDistance  — atan2 form, stable near antipodal points
//	  • EarthRadius       — published mean-radius constants by unit name
//	  • DistanceIn        — unit lookup + haversine in one call
//	  • BoundingBox.Contains — antimeridian-aware range test
//	  • PointInPolygonWindingNumber / PointInPolygonRayCast
//
// ⚙️ Units:
//
//	Both distance functions return their result in the unit of the
//	radius argument — pass geo.EarthRadiusMeters for meters, or a value
//	from EarthRadius(unit) for any recognized unit. EarthRadius is the
//	only operation here with a loud error contract (ErrUnknownUnit);
//	everything else is a total function over its documented domain.
//
// Coordinates follow the package-wide convention of the Point type:
// longitude in [−180, 180] first, latitude in [−90, 90] second, both in
// degrees. Polygons are rings of points closed implicitly — the first
// vertex need not be repeated at the end.
package geo
