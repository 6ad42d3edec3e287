package moving

import (
	"fmt"

	"github.com/wangjohn/quickselect"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/safe"
	"github.com/carbonlab/seriesops/expr/types"
)

type movingAverage struct{}
type movingMedian struct{}

// New exports the legacy sliding-window operators.
func New() []interfaces.FunctionMetadata {
	return []interfaces.FunctionMetadata{
		{Name: "movingAverage", F: &movingAverage{}},
		{Name: "movingMedian", F: &movingMedian{}},
	}
}

// movingAverage(seriesList, windowSize)
//
// Each output sample i holds the average of the present samples in the
// trailing window [i-N+1, i]. The first N-1 samples are absent because there
// is not enough history; so is any sample whose window holds no present
// values. A non-positive window never has enough history, so every sample
// comes out absent. Output length always equals input length.
func (f *movingAverage) Do(call interfaces.Call) ([]*types.MetricData, error) {
	arg, err := helper.GetSeriesArg(call, 0)
	if err != nil {
		return nil, err
	}

	windowSize, err := helper.GetIntArg(call, 1)
	if err != nil {
		return nil, err
	}

	results := make([]*types.MetricData, 0, len(arg))
	for _, a := range arg {
		name := fmt.Sprintf("movingAverage(%s,%d)", a.Name, windowSize)

		r := *a
		r.Name = name
		r.PathExpression = name
		r.Values = make([]float64, len(a.Values))
		r.IsAbsent = make([]bool, len(a.Values))

		if windowSize < 1 {
			for i := range r.IsAbsent {
				r.IsAbsent[i] = true
			}
			results = append(results, &r)
			continue
		}

		for i := range a.Values {
			if i < windowSize-1 {
				r.IsAbsent[i] = true
				continue
			}
			v, absent := safe.Avg(a.Values[i-windowSize+1:i+1], a.IsAbsent[i-windowSize+1:i+1])
			if absent {
				r.IsAbsent[i] = true
				continue
			}
			r.Values[i] = v
		}

		results = append(results, &r)
	}

	return results, nil
}

// movingMedian(seriesList, windowSize)
//
// Same window contract as movingAverage. The median of an even-count window
// is the upper-middle element of the ascending order, not an interpolated
// midpoint; downstream consumers depend on that exact value.
func (f *movingMedian) Do(call interfaces.Call) ([]*types.MetricData, error) {
	arg, err := helper.GetSeriesArg(call, 0)
	if err != nil {
		return nil, err
	}

	windowSize, err := helper.GetIntArg(call, 1)
	if err != nil {
		return nil, err
	}

	results := make([]*types.MetricData, 0, len(arg))
	for _, a := range arg {
		name := fmt.Sprintf("movingMedian(%s,%.1f)", a.Name, float64(windowSize))

		r := *a
		r.Name = name
		r.PathExpression = name
		r.Values = make([]float64, len(a.Values))
		r.IsAbsent = make([]bool, len(a.Values))

		if windowSize < 1 {
			for i := range r.IsAbsent {
				r.IsAbsent[i] = true
			}
			results = append(results, &r)
			continue
		}

		window := make([]float64, 0, windowSize)
		for i := range a.Values {
			if i < windowSize-1 {
				r.IsAbsent[i] = true
				continue
			}

			window = window[:0]
			for j := i - windowSize + 1; j <= i; j++ {
				if a.IsAbsent[j] {
					continue
				}
				window = append(window, a.Values[j])
			}
			if len(window) == 0 {
				r.IsAbsent[i] = true
				continue
			}

			r.Values[i] = upperMedian(window)
		}

		results = append(results, &r)
	}

	return results, nil
}

// upperMedian selects the element at index len/2 of the ascending order
// without a full sort: quickselect moves the len/2+1 smallest elements to
// the front, and the answer is the largest of those. The slice is reordered
// in place.
func upperMedian(window []float64) float64 {
	k := len(window)/2 + 1
	_ = quickselect.Float64QuickSelect(window, k)

	m := window[0]
	for _, v := range window[1:k] {
		if v > m {
			m = v
		}
	}
	return m
}
