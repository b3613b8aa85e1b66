package carrier

import (
	"math"
	"sort"

	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/frame"
	"gonum.org/v1/gonum/stat"
)

// PredictionRow holds the predicted metrics for one forward second.
// A metric is NaN when no matched day covered that second.
type PredictionRow struct {
	Time       float64 // absolute time, request time plus offset
	Throughput float64
	RTT        float64
	Loss       float64
	Handover   float64 // probability of a handover, 0-1
	Samples    int     // number of records averaged
}

// aggregate averages the combined frame into one row per forward second
func aggregate(combined *frame.Frame, at float64, length int) []PredictionRow {
	timeCol, ok := combined.Column(dataset.LabelTime)
	if !ok {
		rows := make([]PredictionRow, length)
		for t := range rows {
			rows[t] = emptyRow(at + float64(t))
		}
		return rows
	}

	rows := make([]PredictionRow, 0, length)
	for t := 0; t < length; t++ {
		offset := float64(t)
		bucket := combined.
			Where(func(r frame.Row) bool { return math.Round(r.Get(timeCol)) == offset }).
			Select(dataset.LabelThroughput, dataset.LabelRTT, dataset.LabelLoss, dataset.LabelHandover)

		if bucket.Len() == 0 {
			rows = append(rows, emptyRow(at+offset))
			continue
		}

		rows = append(rows, PredictionRow{
			Time:       at + offset,
			Throughput: mean(bucket.Values(dataset.LabelThroughput)),
			RTT:        mean(bucket.Values(dataset.LabelRTT)),
			Loss:       mean(bucket.Values(dataset.LabelLoss)),
			Handover:   mean(handoverIndicators(bucket.Values(dataset.LabelHandover))),
			Samples:    bucket.Len(),
		})
	}
	return rows
}

// mean is the arithmetic mean taken relative to the first value, so a
// constant column averages to exactly that value. Empty input yields NaN.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	shift := values[0]
	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = v - shift
	}
	return shift + stat.Mean(deviations, nil)
}

// handoverIndicators maps raw handover values to 0 or 1. The raw value is
// truncated first, so anything in (-1, 1) counts as no handover.
func handoverIndicators(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		if math.Trunc(v) != 0 {
			out[i] = 1
		}
	}
	return out
}

func emptyRow(at float64) PredictionRow {
	nan := math.NaN()
	return PredictionRow{Time: at, Throughput: nan, RTT: nan, Loss: nan, Handover: nan}
}

// matchedDays returns the distinct day indexes present in the combined frame
func matchedDays(combined *frame.Frame) []int {
	seen := make(map[int]bool)
	for _, v := range combined.Values(DayLabel) {
		seen[int(v)] = true
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
