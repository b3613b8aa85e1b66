// Package dataset loads historical day datasets into frames.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jengzang/carrier-backend-go/internal/frame"
	"go.uber.org/zap"
)

// ErrUnknownSource is returned for a source identifier no loader understands
var ErrUnknownSource = errors.New("unknown data source")

// Loader turns one data source identifier into one day dataset
type Loader interface {
	Load(ctx context.Context, id string) (*frame.Frame, error)
}

// FromRecords builds a day dataset from records
func FromRecords(records []Record) (*frame.Frame, error) {
	rows := make([][]float64, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	return frame.FromRows(Labels, rows)
}

// CSVLoader reads day datasets from CSV files on disk
type CSVLoader struct {
	HasHeader  bool
	SortByTime bool // order rows by time after loading
}

// NewCSVLoader creates a loader for headered CSV files
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{HasHeader: true}
}

// Load reads the CSV file at path and labels its columns with the day schema
func (l *CSVLoader) Load(ctx context.Context, path string) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	f, err := frame.ReadCSV(file, l.HasHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := f.SetLabels(Labels...); err != nil {
		return nil, fmt.Errorf("unexpected columns in %s: %w", path, err)
	}

	if l.SortByTime {
		f = f.SortBy(LabelTime)
	}
	return f, nil
}

// LoadAll loads every identifier in order, one day per identifier
func LoadAll(ctx context.Context, loader Loader, ids []string, logger *zap.Logger) ([]*frame.Frame, error) {
	logger.Info("loading day datasets", zap.Int("count", len(ids)))

	days := make([]*frame.Frame, 0, len(ids))
	for i, id := range ids {
		day, err := loader.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load day %d (%s): %w", i, id, err)
		}
		days = append(days, day)

		logger.Info("loaded day",
			zap.String("source", id),
			zap.Int("day", i+1),
			zap.Int("of", len(ids)),
			zap.Int("rows", day.Len()))
	}

	return days, nil
}
