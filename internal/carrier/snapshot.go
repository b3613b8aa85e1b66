package carrier

import (
	"sync"
	"time"

	"github.com/jengzang/carrier-backend-go/internal/spatial"
)

// Prediction is a published snapshot of per-second predicted metrics
type Prediction struct {
	ID          string
	GeneratedAt time.Time
	Position    spatial.Position
	Cell        int64
	MatchedDays []int
	Rows        []PredictionRow
}

// Clone returns a deep copy of p
func (p Prediction) Clone() Prediction {
	c := p
	c.MatchedDays = make([]int, len(p.MatchedDays))
	copy(c.MatchedDays, p.MatchedDays)
	c.Rows = make([]PredictionRow, len(p.Rows))
	copy(c.Rows, p.Rows)
	return c
}

// SnapshotStore holds the latest prediction. Publish and Read are
// serialized so a reader sees either the old or the new snapshot in full.
type SnapshotStore struct {
	mu      sync.RWMutex
	current Prediction
}

// NewSnapshotStore creates a store holding an empty prediction
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		current: Prediction{Rows: []PredictionRow{}},
	}
}

// Publish replaces the held snapshot
func (s *SnapshotStore) Publish(p Prediction) {
	p = p.Clone()

	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
}

// Read returns an independent copy of the held snapshot
func (s *SnapshotStore) Read() Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}
