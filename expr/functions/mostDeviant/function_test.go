package mostDeviant

import (
	"math"
	"testing"

	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/types"
	th "github.com/carbonlab/seriesops/tests"
)

var fn interfaces.Function = New()[0].F

func TestMostDeviant(t *testing.T) {
	flat := types.MakeMetricData("metric1", []float64{5, 5, 5, 5}, 1, 0)
	wobble := types.MakeMetricData("metric2", []float64{4, 6, 4, 6}, 1, 0)
	swing := types.MakeMetricData("metric3", []float64{1, 9, 1, 9}, 1, 0)

	tests := []th.EvalTestItem{
		{
			Target: "mostDeviant(metric[123],2)",
			Args: []interfaces.Arg{
				interfaces.SeriesArg(flat, wobble, swing),
				interfaces.ConstArg(2),
			},
			Want: []*types.MetricData{swing, wobble},
		},
		{
			// legacy callers pass n first
			Target: "mostDeviant(2,metric[123])",
			Args: []interfaces.Arg{
				interfaces.ConstArg(2),
				interfaces.SeriesArg(flat, wobble, swing),
			},
			Want: []*types.MetricData{swing, wobble},
		},
		{
			// n larger than the input returns everything, still ranked
			Target: "mostDeviant(metric[123],10)",
			Args: []interfaces.Arg{
				interfaces.SeriesArg(flat, wobble, swing),
				interfaces.ConstArg(10),
			},
			Want: []*types.MetricData{swing, wobble, flat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Target, func(t *testing.T) {
			th.TestEvalExpr(t, fn, &tt)
		})
	}
}

func TestMostDeviantSkipsAbsentSeries(t *testing.T) {
	empty := types.MakeMetricData("metric1", []float64{math.NaN(), math.NaN()}, 1, 0)
	live := types.MakeMetricData("metric2", []float64{1, 9}, 1, 0)

	tt := th.EvalTestItem{
		Target: "mostDeviant(metric[12],2)",
		Args: []interfaces.Arg{
			interfaces.SeriesArg(empty, live),
			interfaces.ConstArg(2),
		},
		Want: []*types.MetricData{live},
	}
	th.TestEvalExpr(t, fn, &tt)
}

func TestMostDeviantNonPositiveN(t *testing.T) {
	series := interfaces.SeriesArg(
		types.MakeMetricData("metric1", []float64{1, 9, 1, 9}, 1, 0),
		types.MakeMetricData("metric2", []float64{4, 6, 4, 6}, 1, 0),
	)

	for _, n := range []float64{0, -1} {
		got, err := fn.Do(interfaces.Call{Target: "mostDeviant", Args: []interfaces.Arg{
			series, interfaces.ConstArg(n),
		}})
		if err != nil {
			t.Fatalf("n=%g: unexpected error: %v", n, err)
		}
		if len(got) != 0 {
			t.Fatalf("n=%g: got %d series, want empty result", n, len(got))
		}
	}
}

func TestMostDeviantMissingArgument(t *testing.T) {
	_, err := fn.Do(interfaces.Call{Target: "mostDeviant", Args: []interfaces.Arg{
		interfaces.SeriesArg(types.MakeMetricData("metric1", []float64{1}, 1, 0)),
	}})
	if err == nil {
		t.Fatal("expected an argument error")
	}
}
