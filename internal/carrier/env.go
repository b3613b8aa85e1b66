// Package carrier predicts near-term network quality for a moving client by
// matching its position against historical day datasets.
//
// For every day, the record nearest to the current position is located. If
// it lies close enough and on the current serving cell, the next few seconds
// of that day are taken as a match window. Windows from all matching days
// are averaged per forward second into a Prediction, which is published
// atomically and can be read at any time.
package carrier

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/frame"
	"github.com/jengzang/carrier-backend-go/internal/spatial"
	"go.uber.org/zap"
)

// WindowLength is the number of forward seconds predicted
const WindowLength = 5

// DayInfo describes a loaded day dataset
type DayInfo struct {
	Index  int    `json:"index"`
	Source string `json:"source"`
	Rows   int    `json:"rows"`
}

type day struct {
	source string
	data   *frame.Frame
	cols   columns
}

// Env is the prediction engine. Day datasets are read-only after
// construction; UpdateCell, UpdateLocation and Prediction are safe for
// concurrent use.
type Env struct {
	days      []day
	matcher   Matcher
	cell      atomic.Int64
	snapshots *SnapshotStore
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures an Env
type Option func(*Env)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(e *Env) { e.logger = logger }
}

// WithMatcher overrides the box and distance threshold used for matching
func WithMatcher(m Matcher) Option {
	return func(e *Env) { e.matcher = m }
}

// WithClock sets the clock used to stamp predictions
func WithClock(now func() time.Time) Option {
	return func(e *Env) { e.now = now }
}

// New creates an engine over the given day datasets. sources names each day
// for diagnostics and may be nil.
func New(days []*frame.Frame, sources []string, opts ...Option) (*Env, error) {
	e := newEnv(opts)
	if err := e.setDays(days, sources); err != nil {
		return nil, err
	}
	return e, nil
}

// Load reads one day dataset per id through loader and creates an engine
func Load(ctx context.Context, loader dataset.Loader, ids []string, opts ...Option) (*Env, error) {
	e := newEnv(opts)

	days, err := dataset.LoadAll(ctx, loader, ids, e.logger)
	if err != nil {
		return nil, err
	}
	if err := e.setDays(days, ids); err != nil {
		return nil, err
	}
	return e, nil
}

func newEnv(opts []Option) *Env {
	e := &Env{
		matcher:   DefaultMatcher(),
		snapshots: NewSnapshotStore(),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("carrier")
	return e
}

func (e *Env) setDays(days []*frame.Frame, sources []string) error {
	e.days = make([]day, len(days))
	for i, data := range days {
		cols, err := resolveColumns(data)
		if err != nil {
			return fmt.Errorf("day %d: %w", i, err)
		}
		source := fmt.Sprintf("day-%d", i)
		if i < len(sources) {
			source = sources[i]
		}
		e.days[i] = day{source: source, data: data, cols: cols}
	}
	return nil
}

// UpdateCell sets the current serving cell
func (e *Env) UpdateCell(cell int64) {
	e.cell.Store(cell)
}

// Cell returns the current serving cell
func (e *Env) Cell() int64 {
	return e.cell.Load()
}

// Days describes the loaded day datasets
func (e *Env) Days() []DayInfo {
	infos := make([]DayInfo, len(e.days))
	for i, d := range e.days {
		infos[i] = DayInfo{Index: i, Source: d.source, Rows: d.data.Len()}
	}
	return infos
}

// UpdateLocation recomputes the prediction for the client at (lng, lat) at
// time t and publishes it. Days that do not match are skipped silently; the
// only error is ctx being done, in which case nothing is published.
func (e *Env) UpdateLocation(ctx context.Context, lng, lat, t float64) error {
	q := spatial.Position{Lng: lng, Lat: lat}
	cell := e.cell.Load()

	combined := frame.Empty(append(append([]string(nil), dataset.Labels...), DayLabel)...)

	for i, d := range e.days {
		if err := ctx.Err(); err != nil {
			return err
		}

		anchor, outcome := e.matcher.Match(q, cell, d.data, d.cols)
		if outcome == NoCandidates {
			e.logger.Debug("day skipped",
				zap.Int("day", i),
				zap.Stringer("outcome", outcome),
				zap.Stringer("box", spatial.NewBox(q, e.matcher.BoxHalfSpan).Rect()))
			continue
		}
		if outcome != Matched {
			e.logger.Debug("day skipped",
				zap.Int("day", i),
				zap.Stringer("outcome", outcome),
				zap.Float64("distance", anchor.Distance),
				zap.Float64("cell", anchor.Cell))
			continue
		}

		window := extractWindow(d.data, i, anchor.Time, WindowLength, d.cols)
		e.logger.Debug("day matched",
			zap.Int("day", i),
			zap.Float64("anchor_time", anchor.Time),
			zap.Float64("distance", anchor.Distance),
			zap.Int("window_rows", window.Len()))
		if window.Len() == 0 {
			continue
		}

		extended, err := combined.Extend(window)
		if err != nil {
			// schema mismatch across days is the caller's problem
			e.logger.Warn("skipping day with incompatible schema", zap.Int("day", i), zap.Error(err))
			continue
		}
		combined = extended
	}

	prediction := Prediction{
		ID:          uuid.NewString(),
		GeneratedAt: e.now(),
		Position:    q,
		Cell:        cell,
		MatchedDays: matchedDays(combined),
		Rows:        aggregate(combined, t, WindowLength),
	}

	e.logger.Debug("prediction updated",
		zap.String("id", prediction.ID),
		zap.Int("combined_rows", combined.Len()),
		zap.Ints("matched_days", prediction.MatchedDays))

	e.snapshots.Publish(prediction)
	return nil
}

// Prediction returns a copy of the latest published prediction
func (e *Env) Prediction() Prediction {
	return e.snapshots.Read()
}
