// Package frame is the tabular store used for day datasets and match windows.
//
// It wraps a gota DataFrame with the handful of operations the prediction
// engine needs: column handles, predicate filtering, column selection,
// constant columns, row-wise union and direct cell access. Every column is
// stored as float64.
package frame

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column is a positional handle to a column. A handle obtained from one
// frame stays valid on any frame derived from it by Where, WithConstColumn
// or Extend, since those keep the existing column order.
type Column int

// Frame is a labeled table of float64 values
type Frame struct {
	df dataframe.DataFrame
}

// Row is a read view of a single frame row
type Row struct {
	f *Frame
	i int
}

// Index returns the row position within its frame
func (r Row) Index() int { return r.i }

// Get returns the value of col in this row
func (r Row) Get(col Column) float64 { return r.f.Get(r.i, col) }

// Empty creates a frame with the given labels and no rows
func Empty(labels ...string) *Frame {
	cols := make([]series.Series, len(labels))
	for i, label := range labels {
		cols[i] = series.New([]float64{}, series.Float, label)
	}
	return &Frame{df: dataframe.New(cols...)}
}

// FromRows builds a frame from row-major values. Every row must have one
// value per label.
func FromRows(labels []string, rows [][]float64) (*Frame, error) {
	values := make([][]float64, len(labels))
	for j := range labels {
		values[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(labels))
		}
		for j, v := range row {
			values[j][i] = v
		}
	}

	cols := make([]series.Series, len(labels))
	for j, label := range labels {
		cols[j] = series.New(values[j], series.Float, label)
	}

	f := &Frame{df: dataframe.New(cols...)}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadCSV loads comma-separated values. All columns are read as float64;
// cells that fail to parse become NaN.
func ReadCSV(r io.Reader, hasHeader bool) (*Frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(hasHeader),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", df.Err)
	}
	return &Frame{df: df}, nil
}

// Err returns the error carried by the underlying table, if any
func (f *Frame) Err() error {
	return f.df.Err
}

// Labels returns the column labels in order
func (f *Frame) Labels() []string {
	return f.df.Names()
}

// SetLabels renames every column positionally
func (f *Frame) SetLabels(labels ...string) error {
	names := f.df.Names()
	if len(labels) != len(names) {
		return fmt.Errorf("got %d labels for %d columns", len(labels), len(names))
	}

	// rebuild positionally; renaming in place could collide with an
	// existing header that matches one of the new labels
	cols := make([]series.Series, len(names))
	for i, name := range names {
		s := f.df.Select(i).Col(name).Copy()
		s.Name = labels[i]
		cols[i] = s
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return df.Err
	}
	f.df = df
	return nil
}

// Column returns the handle for label
func (f *Frame) Column(label string) (Column, bool) {
	for i, name := range f.df.Names() {
		if name == label {
			return Column(i), true
		}
	}
	return -1, false
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return f.df.Nrow()
}

// Get returns the value at (row, col)
func (f *Frame) Get(row int, col Column) float64 {
	return f.df.Elem(row, int(col)).Float()
}

// Set overwrites the value at (row, col) in place
func (f *Frame) Set(row int, col Column, v float64) {
	f.df.Elem(row, int(col)).Set(v)
}

// Row returns a view of row i
func (f *Frame) Row(i int) Row {
	return Row{f: f, i: i}
}

// Each calls fn for every row in order
func (f *Frame) Each(fn func(Row)) {
	for i := 0; i < f.Len(); i++ {
		fn(Row{f: f, i: i})
	}
}

// Values returns a copy of the column with the given label
func (f *Frame) Values(label string) []float64 {
	col := f.df.Col(label)
	if col.Err != nil {
		return nil
	}
	return col.Float()
}

// Where returns a new frame holding the rows for which pred is true.
// Row order is preserved.
func (f *Frame) Where(pred func(Row) bool) *Frame {
	var keep []int
	for i := 0; i < f.Len(); i++ {
		if pred(Row{f: f, i: i}) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return Empty(f.Labels()...)
	}
	return &Frame{df: f.df.Subset(keep)}
}

// Select returns a new frame with only the given columns, in the given order
func (f *Frame) Select(labels ...string) *Frame {
	return &Frame{df: f.df.Select(labels)}
}

// WithConstColumn returns a new frame with an extra column holding v in every
// row. An existing column with the same label is replaced.
func (f *Frame) WithConstColumn(label string, v float64) *Frame {
	values := make([]float64, f.Len())
	for i := range values {
		values[i] = v
	}
	return &Frame{df: f.df.Mutate(series.New(values, series.Float, label))}
}

// Extend returns the row-wise union of f followed by other. Both frames
// must carry the same labels.
func (f *Frame) Extend(other *Frame) (*Frame, error) {
	df := f.df.RBind(other.df)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to extend frame: %w", df.Err)
	}
	return &Frame{df: df}, nil
}

// SortBy returns a new frame ordered ascending by label
func (f *Frame) SortBy(label string) *Frame {
	return &Frame{df: f.df.Arrange(dataframe.Sort(label))}
}

// String renders the frame as a text table
func (f *Frame) String() string {
	return f.df.String()
}
