package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/jengzang/carrier-backend-go/internal/carrier"
	"github.com/jengzang/carrier-backend-go/internal/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPredictionResponse(t *testing.T) {
	nan := math.NaN()
	p := carrier.Prediction{
		ID:          "abc",
		GeneratedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Position:    spatial.Position{Lng: 10, Lat: 20},
		Cell:        5,
		MatchedDays: []int{0, 2},
		Rows: []carrier.PredictionRow{
			{Time: 0, Throughput: 70, RTT: 0.05, Loss: 0, Handover: 0.5, Samples: 2},
			{Time: 1, Throughput: nan, RTT: nan, Loss: nan, Handover: nan},
		},
	}

	resp := NewPredictionResponse(p)
	require.Len(t, resp.Rows, 2)
	require.NotNil(t, resp.Rows[0].Throughput)
	assert.Equal(t, 70.0, *resp.Rows[0].Throughput)
	require.NotNil(t, resp.Rows[0].Loss)
	assert.Equal(t, 0.0, *resp.Rows[0].Loss)
	assert.Nil(t, resp.Rows[1].Throughput)

	// NaN would make encoding/json fail; null must be emitted instead
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"throughput":null`)
	assert.Contains(t, string(body), `"generatedAt":"2026-03-04T05:06:07Z"`)
}

func TestNewPredictionResponseEmpty(t *testing.T) {
	resp := NewPredictionResponse(carrier.Prediction{})
	assert.Nil(t, resp.GeneratedAt)
	assert.NotNil(t, resp.Rows)
	assert.NotNil(t, resp.MatchedDays)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"rows":[]`)
}
