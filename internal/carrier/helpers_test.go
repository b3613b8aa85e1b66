package carrier

import (
	"math"
	"testing"

	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/frame"
	"github.com/jengzang/carrier-backend-go/internal/spatial"
	"github.com/stretchr/testify/require"
)

// northOf returns the position meters due north of p
func northOf(p spatial.Position, meters float64) spatial.Position {
	return spatial.Position{
		Lng: p.Lng,
		Lat: p.Lat + meters/spatial.EarthRadiusMeters*180/math.Pi,
	}
}

func mustDay(t *testing.T, records ...dataset.Record) *frame.Frame {
	t.Helper()
	f, err := dataset.FromRecords(records)
	require.NoError(t, err)
	return f
}

func mustColumns(t *testing.T, f *frame.Frame) columns {
	t.Helper()
	cols, err := resolveColumns(f)
	require.NoError(t, err)
	return cols
}
