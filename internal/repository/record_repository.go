package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jengzang/carrier-backend-go/internal/database"
	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/frame"
)

// ErrDayNotFound is returned when a day has no stored records
var ErrDayNotFound = errors.New("day not found")

// RecordRepository stores day datasets in the trajectory_records table.
// It satisfies dataset.Loader, with day names as source identifiers.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ListDays returns the stored day names in ascending order
func (r *RecordRepository) ListDays(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT day FROM trajectory_records ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate days: %w", err)
	}

	return days, nil
}

// Load implements dataset.Loader
func (r *RecordRepository) Load(ctx context.Context, day string) (*frame.Frame, error) {
	return r.LoadDay(ctx, day)
}

// LoadDay reads one day in insertion order
func (r *RecordRepository) LoadDay(ctx context.Context, day string) (*frame.Frame, error) {
	query := `SELECT idx, lng, lat, speed, throughput, rtt, loss, rsrp, time, handover, cell
		FROM trajectory_records
		WHERE day = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query day %s: %w", day, err)
	}
	defer rows.Close()

	var records []dataset.Record
	for rows.Next() {
		var v [11]sql.NullFloat64
		err := rows.Scan(&v[0], &v[1], &v[2], &v[3], &v[4], &v[5], &v[6], &v[7], &v[8], &v[9], &v[10])
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, dataset.Record{
			Index: nullable(v[0]), Lng: nullable(v[1]), Lat: nullable(v[2]), Speed: nullable(v[3]),
			Throughput: nullable(v[4]), RTT: nullable(v[5]), Loss: nullable(v[6]), RSRP: nullable(v[7]),
			Time: nullable(v[8]), Handover: nullable(v[9]), Cell: nullable(v[10]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, day)
	}

	return dataset.FromRecords(records)
}

// ReplaceDay stores f as the records of day, replacing any previous ones.
// f must carry the day dataset labels.
func (r *RecordRepository) ReplaceDay(ctx context.Context, day string, f *frame.Frame) (int, error) {
	cols := make([]frame.Column, len(dataset.Labels))
	for i, label := range dataset.Labels {
		col, ok := f.Column(label)
		if !ok {
			return 0, fmt.Errorf("missing column %q", label)
		}
		cols[i] = col
	}

	err := database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM trajectory_records WHERE day = ?`, day); err != nil {
			return fmt.Errorf("failed to clear day %s: %w", day, err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO trajectory_records
			(day, idx, lng, lat, speed, throughput, rtt, loss, rsrp, time, handover, cell)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		args := make([]interface{}, len(cols)+1)
		args[0] = day
		for i := 0; i < f.Len(); i++ {
			for j, col := range cols {
				if v := f.Get(i, col); !math.IsNaN(v) {
					args[j+1] = v
				} else {
					args[j+1] = nil
				}
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert row %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return f.Len(), nil
}

// CountRecords returns the number of stored records for day
func (r *RecordRepository) CountRecords(ctx context.Context, day string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trajectory_records WHERE day = ?`, day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// nullable maps SQL NULL back to the NaN missing-value marker
func nullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
