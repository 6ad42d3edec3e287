package asPercent

import (
	"fmt"

	"github.com/ansel1/merry"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/safe"
	"github.com/carbonlab/seriesops/expr/types"
)

type asPercent struct{}

// New exports the asPercent operator.
func New() []interfaces.FunctionMetadata {
	return []interfaces.FunctionMetadata{
		{Name: "asPercent", F: &asPercent{}},
	}
}

// totalKind is the resolved shape of the optional total argument.
type totalKind int

const (
	totalNone totalKind = iota
	totalConst
	totalSeries
)

// asPercent(seriesList, total=None)
//
// With no total, the denominator at each timestamp is the sum of the input
// series at that timestamp. A total list of length one is broadcast; a list
// of matching length pairs positionally; a scalar total is constant at every
// point. The total argument is resolved to one of those shapes once, up
// front.
func (f *asPercent) Do(call interfaces.Call) ([]*types.MetricData, error) {
	arg, err := helper.GetSeriesArg(call, 0)
	if err != nil {
		return nil, err
	}
	if len(arg) == 0 {
		return []*types.MetricData{}, nil
	}

	kind := totalNone
	var constTotal float64
	var totals []*types.MetricData

	if len(call.Args) > 1 {
		switch call.Args[1].Type {
		case interfaces.ArgConst:
			kind = totalConst
			constTotal = call.Args[1].Const
		case interfaces.ArgSeries:
			kind = totalSeries
			totals = call.Args[1].Series
			if len(totals) == 0 {
				return nil, merry.New("asPercent total series are empty (maybe you have a typo?)")
			}
			if len(totals) != 1 && len(totals) != len(arg) {
				return nil, merry.Errorf("asPercent arguments must have the same length (%d != %d)",
					len(arg), len(totals))
			}
		}
	}

	helper.Normalize(arg)
	if kind == totalSeries {
		helper.Normalize(arg, totals)
	}

	// scratch row reused for the default per-timestamp total
	rowValues := make([]float64, len(arg))
	rowAbsent := make([]bool, len(arg))
	rowTotal := func(i int) (float64, bool) {
		for k, s := range arg {
			rowValues[k], rowAbsent[k] = s.ValueAt(i)
		}
		return safe.Sum(rowValues, rowAbsent)
	}

	results := make([]*types.MetricData, 0, len(arg))
	for j, a := range arg {
		var total *types.MetricData
		var name string
		switch kind {
		case totalNone:
			name = fmt.Sprintf("asPercent(%s, %s)", a.Name, a.PathExpression)
		case totalConst:
			name = fmt.Sprintf("asPercent(%s, %g)", a.Name, constTotal)
		case totalSeries:
			if len(totals) == 1 {
				total = totals[0]
			} else {
				total = totals[j]
			}
			name = fmt.Sprintf("asPercent(%s, %s)", a.Name, total.Name)
		}

		r := *a
		r.Name = name
		r.PathExpression = name
		r.Values = make([]float64, len(a.Values))
		r.IsAbsent = make([]bool, len(a.Values))

		for i := range a.Values {
			v, vAbsent := a.ValueAt(i)

			var t float64
			var tAbsent bool
			switch kind {
			case totalNone:
				t, tAbsent = rowTotal(i)
			case totalConst:
				t, tAbsent = constTotal, false
			case totalSeries:
				t, tAbsent = total.ValueAt(i)
			}

			ratio, ratioAbsent := safe.Div(v, vAbsent, t, tAbsent)
			pct, pctAbsent := safe.Mul(ratio, ratioAbsent, 100, false)
			if pctAbsent {
				r.IsAbsent[i] = true
				continue
			}
			r.Values[i] = pct
		}

		results = append(results, &r)
	}

	return results, nil
}
