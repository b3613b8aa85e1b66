package carrier

import (
	"github.com/jengzang/carrier-backend-go/internal/frame"
)

// DayLabel tags every match window row with the index of its day
const DayLabel = "day"

// extractWindow returns the rows of day with time in [t0, t0+length),
// rebased so their time starts at zero, and tagged with dayIndex.
// The result may be empty.
func extractWindow(day *frame.Frame, dayIndex int, t0, length float64, cols columns) *frame.Frame {
	window := day.Where(func(r frame.Row) bool {
		t := r.Get(cols.time)
		return t >= t0 && t < t0+length
	})

	window.Each(func(r frame.Row) {
		window.Set(r.Index(), cols.time, r.Get(cols.time)-t0)
	})

	return window.WithConstColumn(DayLabel, float64(dayIndex))
}
