package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	points := []Position{
		{Lng: 0, Lat: 0},
		{Lng: 10, Lat: 20},
		{Lng: -122.4194, Lat: 37.7749},
		{Lng: 116.397, Lat: 39.909},
		{Lng: 179.9, Lat: -85},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p), "Distance(%v, %v)", p, p)
	}
}

func TestDistanceApproximatelySymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
	}{
		{"east-west", Position{10, 20}, Position{10.02, 20}},
		{"north-south", Position{10, 20}, Position{10, 20.02}},
		{"diagonal", Position{116.3, 39.9}, Position{116.33, 39.92}},
		{"southern hemisphere", Position{151.2, -33.8}, Position{151.23, -33.83}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.a, tt.b)
			ba := Distance(tt.b, tt.a)
			assert.Greater(t, ab, 0.0)
			assert.InEpsilon(t, ab, ba, 1e-3)
		})
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// one degree of latitude along a meridian
	d := Distance(Position{0, 0}, Position{0, 1})
	assert.InDelta(t, EarthRadiusMeters*math.Pi/180, d, 1e-6)

	// longitude delta shrinks with cos(lat) of the first point
	d = Distance(Position{0, 60}, Position{1, 60})
	assert.InDelta(t, EarthRadiusMeters*math.Pi/180*0.5, d, 1e-6)
}

func TestDistanceSmallOffset(t *testing.T) {
	// the end-to-end fixture offset: roughly 70 m
	d := Distance(Position{10.0005, 20.0004}, Position{10.0, 20.0})
	assert.Less(t, d, 100.0)
	assert.Greater(t, d, 50.0)
}

func TestBoxContains(t *testing.T) {
	box := NewBox(Position{Lng: 10, Lat: 20}, 0.2)

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"center", Position{10, 20}, true},
		{"inside", Position{10.19, 19.81}, true},
		{"longitude outside", Position{10.3, 20}, false},
		{"latitude outside", Position{10, 19.7}, false},
		{"far away", Position{-10, -20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}

func TestBoxRect(t *testing.T) {
	rect := NewBox(Position{Lng: 10, Lat: 20}, 0.2).Rect()
	assert.InDelta(t, 19.8, rect.Lo().Lat.Degrees(), 1e-9)
	assert.InDelta(t, 20.2, rect.Hi().Lat.Degrees(), 1e-9)
	assert.InDelta(t, 9.8, rect.Lo().Lng.Degrees(), 1e-9)
	assert.InDelta(t, 10.2, rect.Hi().Lng.Degrees(), 1e-9)
}
