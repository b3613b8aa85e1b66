package carrier

import (
	"fmt"

	"github.com/jengzang/carrier-backend-go/internal/dataset"
	"github.com/jengzang/carrier-backend-go/internal/frame"
)

// columns holds the handles the engine reads from a day dataset
type columns struct {
	lng, lat, time, cell frame.Column
}

func resolveColumns(f *frame.Frame) (columns, error) {
	var cols columns
	for label, dst := range map[string]*frame.Column{
		dataset.LabelLng:  &cols.lng,
		dataset.LabelLat:  &cols.lat,
		dataset.LabelTime: &cols.time,
		dataset.LabelCell: &cols.cell,
	} {
		col, ok := f.Column(label)
		if !ok {
			return columns{}, fmt.Errorf("missing column %q", label)
		}
		*dst = col
	}
	return cols, nil
}
