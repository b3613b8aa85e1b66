package dataset

// Column labels of a day dataset, in file order
const (
	LabelIndex      = "index"
	LabelLng        = "lng"
	LabelLat        = "lat"
	LabelSpeed      = "speed"
	LabelThroughput = "throughput"
	LabelRTT        = "rtt"
	LabelLoss       = "loss"
	LabelRSRP       = "rsrp"
	LabelTime       = "time"
	LabelHandover   = "handover"
	LabelCell       = "cell"
)

// Labels is the fixed day dataset schema. Input files are labeled
// positionally, whatever their own header says.
var Labels = []string{
	LabelIndex, LabelLng, LabelLat, LabelSpeed,
	LabelThroughput, LabelRTT, LabelLoss, LabelRSRP,
	LabelTime, LabelHandover, LabelCell,
}

// Record is one observation of a day dataset
type Record struct {
	Index      float64
	Lng        float64
	Lat        float64
	Speed      float64
	Throughput float64 // bytes per second
	RTT        float64 // seconds
	Loss       float64 // 0-1
	RSRP       float64 // dBm
	Time       float64 // seconds, day-relative
	Handover   float64 // raw indicator, nonzero means a handover happened
	Cell       float64
}

// Values returns the record in Labels order
func (r Record) Values() []float64 {
	return []float64{
		r.Index, r.Lng, r.Lat, r.Speed,
		r.Throughput, r.RTT, r.Loss, r.RSRP,
		r.Time, r.Handover, r.Cell,
	}
}
