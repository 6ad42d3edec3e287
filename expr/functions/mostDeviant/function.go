package mostDeviant

import (
	"container/heap"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/safe"
	"github.com/carbonlab/seriesops/expr/types"
)

type mostDeviant struct{}

// New exports the mostDeviant operator.
func New() []interfaces.FunctionMetadata {
	return []interfaces.FunctionMetadata{
		{Name: "mostDeviant", F: &mostDeviant{}},
	}
}

// mostDeviant(seriesList, n) -or- mostDeviant(n, seriesList)
//
// Ranks series by the population variance of their present samples and
// returns the top n original series, most deviant first. Series whose mean
// or variance cannot be computed are skipped; a non-positive n selects
// nothing.
func (f *mostDeviant) Do(call interfaces.Call) ([]*types.MetricData, error) {
	nArg := 1
	if len(call.Args) > 0 && call.Args[0].Type == interfaces.ArgConst {
		// transposed argument order
		nArg = 0
	}
	seriesArg := nArg ^ 1

	n, err := helper.GetIntArg(call, nArg)
	if err != nil {
		return nil, err
	}

	args, err := helper.GetSeriesArg(call, seriesArg)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return []*types.MetricData{}, nil
	}

	var mh types.MetricHeap

	for index, arg := range args {
		mean, meanAbsent := safe.Avg(arg.Values, arg.IsAbsent)
		if meanAbsent {
			continue
		}

		var squareSum float64
		for i, v := range arg.Values {
			if arg.IsAbsent[i] {
				continue
			}
			squareSum += (v - mean) * (v - mean)
		}

		sigma, sigmaAbsent := safe.Div(squareSum, false, float64(safe.Len(arg.Values, arg.IsAbsent)), false)
		if sigmaAbsent {
			continue
		}

		if len(mh) < n {
			heap.Push(&mh, types.MetricHeapElement{Idx: index, Val: sigma})
			continue
		}

		if sigma > mh[0].Val {
			mh[0].Idx = index
			mh[0].Val = sigma
			heap.Fix(&mh, 0)
		}
	}

	results := make([]*types.MetricData, len(mh))

	// pop ascending, fill from the back: most deviant first
	for len(mh) > 0 {
		v := heap.Pop(&mh).(types.MetricHeapElement)
		results[len(mh)] = args[v.Idx]
	}

	return results, nil
}
