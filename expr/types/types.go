// Package types holds the series container shared by every operator.
package types

import (
	"math"

	pb "github.com/go-graphite/protocol/carbonapi_v2_pb"

	"github.com/carbonlab/seriesops/expr/safe"
)

// MetricData is one named, stepped, bounded sequence of optional samples.
// The embedded fetch response is the storage collaborator's interchange
// layout: Values holds the numbers, IsAbsent marks the samples that carry no
// value. The marker slice keeps "missing" distinct from both 0 and NaN.
//
// Operators own their inputs for the duration of one call and may mutate
// them in place; callers that need the pre-normalization view take a Copy
// first.
type MetricData struct {
	pb.FetchResponse

	// PathExpression is the selection pattern that produced this series.
	// Derived series get it reset to their generated name so downstream
	// legending treats them as fresh rather than inheriting ancestor paths.
	PathExpression string
}

// MakeMetricData builds a series from a raw (start, step, values) tuple.
// NaN entries in values are stored as absent samples, everything else as
// present values. StopTime is derived so that len(values)*step covers
// exactly [start, stop).
func MakeMetricData(name string, values []float64, step, start int32) *MetricData {
	vals := make([]float64, len(values))
	isAbsent := make([]bool, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			isAbsent[i] = true
		} else {
			vals[i] = v
		}
	}

	return &MetricData{
		FetchResponse: pb.FetchResponse{
			Name:      name,
			Values:    vals,
			IsAbsent:  isAbsent,
			StartTime: start,
			StopTime:  start + int32(len(values))*step,
			StepTime:  step,
		},
		PathExpression: name,
	}
}

// ValueAt returns the sample at index i and whether it is absent. Indexes
// past the end of the series read as absent, which lets operators iterate a
// common window over series of unequal length.
func (r *MetricData) ValueAt(i int) (float64, bool) {
	if i < 0 || i >= len(r.Values) {
		return 0, true
	}
	return r.Values[i], r.IsAbsent[i]
}

// Consolidate downsamples the series in place: every run of valuesPerPoint
// consecutive samples becomes one sample holding the average of the present
// entries of the block. A block with no present entries yields an absent
// sample. A short tail block is averaged over the samples it has. The step
// grows by the same factor and StopTime is recomputed so the window stays an
// exact multiple of the new step. A factor of one or less is a no-op.
func (r *MetricData) Consolidate(valuesPerPoint int) {
	if valuesPerPoint <= 1 {
		return
	}

	n := (len(r.Values) + valuesPerPoint - 1) / valuesPerPoint
	values := make([]float64, 0, n)
	isAbsent := make([]bool, 0, n)

	v := r.Values
	absent := r.IsAbsent
	for len(v) > 0 {
		f := valuesPerPoint
		if f > len(v) {
			f = len(v)
		}
		avg, avgAbsent := safe.Avg(v[:f], absent[:f])
		values = append(values, avg)
		isAbsent = append(isAbsent, avgAbsent)
		v = v[f:]
		absent = absent[f:]
	}

	r.Values = values
	r.IsAbsent = isAbsent
	r.StepTime *= int32(valuesPerPoint)
	r.StopTime = r.StartTime + int32(len(values))*r.StepTime
}

// Copy returns an independently owned copy of the series.
func (r *MetricData) Copy() *MetricData {
	c := *r
	c.Values = make([]float64, len(r.Values))
	c.IsAbsent = make([]bool, len(r.IsAbsent))
	copy(c.Values, r.Values)
	copy(c.IsAbsent, r.IsAbsent)
	return &c
}
