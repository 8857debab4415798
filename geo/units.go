package geo

import (
	"errors"
	"fmt"
	"strings"
)

// EarthRadiusMeters is the WGS84 mean Earth radius in meters, the
// conventional default radius for HaversineDistance and
// VincentyDistance.
const EarthRadiusMeters = 6371000.0

// ErrUnknownUnit is returned by EarthRadius for an unrecognized unit
// name. Callers match it via errors.Is; the wrapped message names the
// offending unit.
var ErrUnknownUnit = errors.New("geo: unrecognized distance unit")

// earthRadii maps unit names to the IUGG mean Earth radius expressed in
// that unit. Values follow the published table (km → 6371.009); the key
// set includes abbreviated, singular, and plural spellings.
var earthRadii = map[string]float64{
	"m":             6371009,
	"meters":        6371009,
	"metres":        6371009,
	"km":            6371.009,
	"kilometers":    6371.009,
	"kilometres":    6371.009,
	"mi":            3958.761,
	"miles":         3958.761,
	"nm":            3440.069,
	"nauticalmiles": 3440.069,
	"yd":            6967420,
	"yards":         6967420,
	"ft":            20902260,
	"feets":         20902260,
}

// EarthRadius returns the mean Earth radius expressed in the named
// unit. The lookup is case-insensitive over the documented key set
// {m, meters, metres, km, kilometers, kilometres, mi, miles, nm,
// nauticalmiles, yd, yards, ft, feets}.
//
// An unrecognized unit fails loudly with an error wrapping
// ErrUnknownUnit.
func EarthRadius(unit string) (float64, error) {
	r, ok := earthRadii[strings.ToLower(unit)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	return r, nil
}
