package models

import (
	"math"
	"time"

	"github.com/jengzang/carrier-backend-go/internal/carrier"
)

// UpdateCellRequest is the body of PUT /api/v1/cell
type UpdateCellRequest struct {
	CellID *int64 `json:"cell_id" binding:"required"`
}

// UpdateLocationRequest is the body of POST /api/v1/location
type UpdateLocationRequest struct {
	Lng  *float64 `json:"lng" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Time *float64 `json:"time" binding:"required"` // seconds, same clock as the day datasets
}

// PredictionRow is one forward second. Metrics are null when no
// historical day covered that second.
type PredictionRow struct {
	Time       float64  `json:"time"`
	Throughput *float64 `json:"throughput"`
	RTT        *float64 `json:"rtt"`
	Loss       *float64 `json:"loss"`
	Handover   *float64 `json:"handover"`
	Samples    int      `json:"samples"`
}

// PredictionResponse is the published prediction snapshot
type PredictionResponse struct {
	ID          string          `json:"id,omitempty"`
	GeneratedAt *time.Time      `json:"generatedAt,omitempty"`
	Lng         float64         `json:"lng"`
	Lat         float64         `json:"lat"`
	Cell        int64           `json:"cell"`
	MatchedDays []int           `json:"matchedDays"`
	Rows        []PredictionRow `json:"rows"`
}

// DaysResponse lists the loaded day datasets
type DaysResponse struct {
	Count int               `json:"count"`
	Days  []carrier.DayInfo `json:"days"`
}

// NewPredictionResponse converts an engine prediction for the API
func NewPredictionResponse(p carrier.Prediction) PredictionResponse {
	resp := PredictionResponse{
		ID:          p.ID,
		Lng:         p.Position.Lng,
		Lat:         p.Position.Lat,
		Cell:        p.Cell,
		MatchedDays: make([]int, len(p.MatchedDays)),
		Rows:        make([]PredictionRow, len(p.Rows)),
	}
	copy(resp.MatchedDays, p.MatchedDays)

	if !p.GeneratedAt.IsZero() {
		ts := p.GeneratedAt.UTC()
		resp.GeneratedAt = &ts
	}

	for i, row := range p.Rows {
		resp.Rows[i] = PredictionRow{
			Time:       row.Time,
			Throughput: metric(row.Throughput),
			RTT:        metric(row.RTT),
			Loss:       metric(row.Loss),
			Handover:   metric(row.Handover),
			Samples:    row.Samples,
		}
	}
	return resp
}

// metric maps the NaN no-data marker to nil, which encodes as null
func metric(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
