package carrier

import (
	"math"

	"github.com/jengzang/carrier-backend-go/internal/frame"
	"github.com/jengzang/carrier-backend-go/internal/spatial"
)

const (
	// DefaultBoxHalfSpan bounds the candidate set before exact distances
	// are computed, roughly ±22 km.
	DefaultBoxHalfSpan = 0.2 // degrees

	// DefaultSameLocationThreshold is the largest distance at which the
	// nearest historical point still counts as the current location.
	DefaultSameLocationThreshold = 100.0 // meters
)

// Outcome describes how matching a single day ended
type Outcome int

const (
	Matched Outcome = iota
	NoCandidates
	TooFar
	WrongCell
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NoCandidates:
		return "no_candidates"
	case TooFar:
		return "too_far"
	case WrongCell:
		return "wrong_cell"
	}
	return "unknown"
}

// Anchor is the point where the current trajectory meets a day's history
type Anchor struct {
	Position spatial.Position
	Distance float64 // meters from the query position
	Time     float64 // day-relative seconds
	Cell     float64
}

// Matcher finds the anchor of one day dataset for a query position
type Matcher struct {
	BoxHalfSpan           float64
	SameLocationThreshold float64
}

// DefaultMatcher returns a matcher with the standard box and threshold
func DefaultMatcher() Matcher {
	return Matcher{
		BoxHalfSpan:           DefaultBoxHalfSpan,
		SameLocationThreshold: DefaultSameLocationThreshold,
	}
}

// Match returns the day's anchor for q. The anchor is only meaningful when
// the outcome is Matched; the nearest candidate is still reported for
// TooFar and WrongCell.
func (m Matcher) Match(q spatial.Position, cell int64, day *frame.Frame, cols columns) (Anchor, Outcome) {
	box := spatial.NewBox(q, m.BoxHalfSpan)
	candidates := day.Where(func(r frame.Row) bool {
		return box.Contains(rowPosition(r, cols))
	})
	if candidates.Len() == 0 {
		return Anchor{}, NoCandidates
	}

	row, dist := nearest(q, candidates, cols)
	anchor := Anchor{
		Position: rowPosition(candidates.Row(row), cols),
		Distance: dist,
		Time:     candidates.Get(row, cols.time),
		Cell:     candidates.Get(row, cols.cell),
	}

	if anchor.Distance > m.SameLocationThreshold {
		return anchor, TooFar
	}
	if anchor.Cell != float64(cell) {
		return anchor, WrongCell
	}
	return anchor, Matched
}

// nearest scans candidates in order and returns the first row at the
// minimum distance from q. candidates must not be empty.
func nearest(q spatial.Position, candidates *frame.Frame, cols columns) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	candidates.Each(func(r frame.Row) {
		d := spatial.Distance(rowPosition(r, cols), q)
		if best < 0 || d < bestDist {
			best, bestDist = r.Index(), d
		}
	})
	return best, bestDist
}

func rowPosition(r frame.Row, cols columns) spatial.Position {
	return spatial.Position{Lng: r.Get(cols.lng), Lat: r.Get(cols.lat)}
}
