package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// Position is a (longitude, latitude) pair in degrees
type Position struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// LatLng converts the position to an S2 LatLng
func (p Position) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Distance returns the approximate distance between two positions in meters.
//
// It uses an equirectangular projection: the longitude delta is scaled by
// cos(latitude) of p1 only, so Distance(a, b) and Distance(b, a) differ
// slightly. The error is negligible for displacements of a few tens of
// kilometers, which is all the matcher ever compares. Not suitable for
// global or antipodal distances.
func Distance(p1, p2 Position) float64 {
	l1, l2 := p1.LatLng(), p2.LatLng()

	y := EarthRadiusMeters * (l1.Lat - l2.Lat).Radians()
	x := EarthRadiusMeters * math.Cos(l1.Lat.Radians()) * (l1.Lng - l2.Lng).Radians()
	return math.Hypot(x, y)
}
