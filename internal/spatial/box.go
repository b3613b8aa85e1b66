package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Box is an axis-aligned degree box centered on a position.
// It is a coarse pre-filter, not a geodesic region.
type Box struct {
	Center   Position
	HalfSpan float64 // degrees, applied to both longitude and latitude
}

// NewBox creates a box extending halfSpan degrees on each side of center
func NewBox(center Position, halfSpan float64) Box {
	return Box{Center: center, HalfSpan: halfSpan}
}

// Contains reports whether p lies strictly inside the box
func (b Box) Contains(p Position) bool {
	return math.Abs(b.Center.Lng-p.Lng) < b.HalfSpan &&
		math.Abs(b.Center.Lat-p.Lat) < b.HalfSpan
}

// Rect returns the box as an S2 rectangle (used for diagnostics)
func (b Box) Rect() s2.Rect {
	span := 2 * b.HalfSpan
	return s2.RectFromCenterSize(b.Center.LatLng(), s2.LatLngFromDegrees(span, span))
}
