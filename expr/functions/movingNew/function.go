package movingNew

import (
	"fmt"
	"math"

	"github.com/JaderDias/movingmedian"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/types"
)

type movingAverage struct{}
type movingMedian struct{}

// New exports the optimized sliding-window operators. They honor the same
// window contract as the legacy movingAverage/movingMedian, non-positive
// windows included, but replace the per-point rescan with incremental window
// structures.
func New() []interfaces.FunctionMetadata {
	return []interfaces.FunctionMetadata{
		{Name: "movingAverageNew", F: &movingAverage{}},
		{Name: "movingMedianNew", F: &movingMedian{}},
	}
}

// movingAverageNew(seriesList, windowSize)
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
		name := fmt.Sprintf("movingAverageNew(%s,%d)", a.Name, windowSize)

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

		w := &types.Windowed{Data: make([]float64, windowSize)}
		for i, v := range a.Values {
			if a.IsAbsent[i] {
				// absent samples enter the window as NaN so they are ignored
				v = math.NaN()
			}
			w.Push(v)
			if i < windowSize-1 || w.Len() == 0 {
				r.IsAbsent[i] = true
				continue
			}
			r.Values[i] = w.Mean()
		}

		results = append(results, &r)
	}

	return results, nil
}

// movingMedianNew(seriesList, windowSize)
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
		name := fmt.Sprintf("movingMedianNew(%s,%.1f)", a.Name, float64(windowSize))

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

		data := movingmedian.NewMovingMedian(windowSize)
		for i, v := range a.Values {
			if a.IsAbsent[i] {
				data.Push(math.NaN())
			} else {
				data.Push(v)
			}
			if i < windowSize-1 {
				r.IsAbsent[i] = true
				continue
			}
			m := data.Median()
			if math.IsNaN(m) {
				r.IsAbsent[i] = true
				continue
			}
			r.Values[i] = m
		}

		results = append(results, &r)
	}

	return results, nil
}
