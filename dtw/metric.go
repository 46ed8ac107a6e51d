package dtw

import (
	"errors"

	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/walker"
)

// ErrStateNotSeries indicates a walker.State supplied to MetricAdapter was
// not a []float64 time series.
var ErrStateNotSeries = errors.New("dtw: walker state is not a []float64 series")

// MetricAdapter adapts DTW into the metric.Metric contract region.Tree is
// built against: it treats a walker's state as a numeric time series and
// measures inter-walker distance with Dynamic Time Warping, a natural fit
// for trajectories sampled at varying rates or lengths (e.g. collective
// variable traces of different simulation lengths) where a fixed-length
// Euclidean image would not apply.
//
// Image is the identity projection (a defensive copy of the series, since
// the tree's image table must never be mutated once stored); Distance runs
// DTW with the adapter's Opts.
type MetricAdapter struct {
	Opts Options
}

// NewMetricAdapter returns a MetricAdapter configured with opts.
func NewMetricAdapter(opts Options) *MetricAdapter {
	return &MetricAdapter{Opts: opts}
}

// Image projects state, which must be a []float64, to an Image holding an
// independent copy of the series.
func (m *MetricAdapter) Image(state walker.State) (metric.Image, error) {
	series, ok := state.([]float64)
	if !ok {
		return nil, ErrStateNotSeries
	}
	out := make([]float64, len(series))
	copy(out, series)
	return metric.Image(out), nil
}

// Distance runs DTW between two images produced by Image.
func (m *MetricAdapter) Distance(a, b metric.Image) (float64, error) {
	sa, ok := a.([]float64)
	if !ok {
		return 0, ErrStateNotSeries
	}
	sb, ok := b.([]float64)
	if !ok {
		return 0, ErrStateNotSeries
	}
	opts := m.Opts
	return DTW(sa, sb, &opts)
}
