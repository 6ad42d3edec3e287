package sumSeries

import (
	"fmt"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/safe"
	"github.com/carbonlab/seriesops/expr/types"
)

type sumSeriesWithoutNone struct{}
type sumSeriesFast struct{}

// New exports both summing operators. sumWithoutNone is the legacy alias of
// sumSeriesWithoutNone.
func New() []interfaces.FunctionMetadata {
	withoutNone := &sumSeriesWithoutNone{}
	return []interfaces.FunctionMetadata{
		{Name: "sumSeriesWithoutNone", F: withoutNone},
		{Name: "sumWithoutNone", F: withoutNone},
		{Name: "sumSeriesFast", F: &sumSeriesFast{}},
	}
}

// sumSeriesWithoutNone(*seriesLists)
//
// Strict sum: an absent sample in any input makes the combined sample
// absent.
func (f *sumSeriesWithoutNone) Do(call interfaces.Call) ([]*types.MetricData, error) {
	groups, err := helper.GetSeriesGroups(call, 0)
	if err != nil {
		return nil, err
	}

	series, start, stop, step := helper.Normalize(groups...)
	if len(series) == 0 {
		return []*types.MetricData{}, nil
	}

	name := fmt.Sprintf("sumSeriesWithoutNone(%s)", helper.FormatPathExpressions(series))

	n := int((stop - start) / step)
	r := *series[0]
	r.Name = name
	r.PathExpression = name
	r.StartTime = start
	r.StopTime = stop
	r.StepTime = step
	r.Values = make([]float64, n)
	r.IsAbsent = make([]bool, n)

	rowValues := make([]float64, len(series))
	rowAbsent := make([]bool, len(series))
	for i := 0; i < n; i++ {
		for k, s := range series {
			rowValues[k], rowAbsent[k] = s.ValueAt(i)
		}
		v, absent := safe.NoneSum(rowValues, rowAbsent)
		if absent {
			r.IsAbsent[i] = true
			continue
		}
		r.Values[i] = v
	}

	return []*types.MetricData{&r}, nil
}

// sumSeriesFast(*seriesLists)
//
// Fast sum: one linear accumulation pass after the single-pass normalizer.
// Absent samples are skipped rather than propagated, so a value present in
// any one series contributes even when the others are absent there.
func (f *sumSeriesFast) Do(call interfaces.Call) ([]*types.MetricData, error) {
	groups, err := helper.GetSeriesGroups(call, 0)
	if err != nil {
		return nil, err
	}

	var flat []*types.MetricData
	for _, group := range groups {
		flat = append(flat, group...)
	}

	series, start, stop, step := helper.FastNormalize(flat)
	if len(series) == 0 {
		return []*types.MetricData{}, nil
	}

	name := fmt.Sprintf("sumSeriesFast(%s)", helper.FormatPathExpressions(series))

	n := int((stop - start) / step)
	r := *series[0]
	r.Name = name
	r.PathExpression = name
	r.StartTime = start
	r.StopTime = stop
	r.StepTime = step
	r.Values = make([]float64, n)
	r.IsAbsent = make([]bool, n)

	atLeastOne := make([]bool, n)
	for _, s := range series {
		for i := 0; i < n && i < len(s.Values); i++ {
			if s.IsAbsent[i] {
				continue
			}
			atLeastOne[i] = true
			r.Values[i] += s.Values[i]
		}
	}

	for i, present := range atLeastOne {
		if !present {
			r.IsAbsent[i] = true
		}
	}

	return []*types.MetricData{&r}, nil
}
