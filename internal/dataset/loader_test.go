package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jengzang/carrier-backend-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const dayCSV = `idx,longitude,latitude,speed,thp,rtt,loss,rsrp,t,ho,cid
0,10.0,20.0,12.5,50,0.04,0.01,-90,101,0,5
1,10.0001,20.0001,12.7,70,0.05,0.00,-91,100,1,5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVLoaderLoad(t *testing.T) {
	path := writeFile(t, "day1.csv", dayCSV)

	f, err := NewCSVLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, Labels, f.Labels())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []float64{50, 70}, f.Values(LabelThroughput))
	assert.Equal(t, []float64{5, 5}, f.Values(LabelCell))
	assert.Equal(t, []float64{101, 100}, f.Values(LabelTime))
}

func TestCSVLoaderSortByTime(t *testing.T) {
	path := writeFile(t, "day1.csv", dayCSV)

	loader := &CSVLoader{HasHeader: true, SortByTime: true}
	f, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 101}, f.Values(LabelTime))
	assert.Equal(t, []float64{70, 50}, f.Values(LabelThroughput))
}

func TestCSVLoaderErrors(t *testing.T) {
	ctx := context.Background()
	loader := NewCSVLoader()

	_, err := loader.Load(ctx, "day1.parquet")
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = loader.Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	narrow := writeFile(t, "narrow.csv", "a,b\n1,2\n")
	_, err = loader.Load(ctx, narrow)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = loader.Load(cancelled, narrow)
	assert.ErrorIs(t, err, context.Canceled)
}

type stubLoader map[string]*frame.Frame

func (s stubLoader) Load(_ context.Context, id string) (*frame.Frame, error) {
	f, ok := s[id]
	if !ok {
		return nil, ErrUnknownSource
	}
	return f, nil
}

func TestLoadAll(t *testing.T) {
	d1, err := FromRecords([]Record{{Lng: 1, Lat: 2, Time: 3, Cell: 4}})
	require.NoError(t, err)
	d2, err := FromRecords(nil)
	require.NoError(t, err)

	loader := stubLoader{"a": d1, "b": d2}

	days, err := LoadAll(context.Background(), loader, []string{"b", "a"}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 0, days[0].Len())
	assert.Equal(t, []float64{4}, days[1].Values(LabelCell))

	_, err = LoadAll(context.Background(), loader, []string{"a", "zzz"}, zap.NewNop())
	assert.True(t, errors.Is(err, ErrUnknownSource))
}
