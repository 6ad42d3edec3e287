package divideSeries

import (
	"fmt"

	"github.com/ansel1/merry"

	"github.com/carbonlab/seriesops/expr/helper"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/safe"
	"github.com/carbonlab/seriesops/expr/types"
)

type divideSeries struct{}

// New exports the divideSeries operator.
func New() []interfaces.FunctionMetadata {
	return []interfaces.FunctionMetadata{
		{Name: "divideSeries", F: &divideSeries{}},
	}
}

// divideSeries(dividendSeriesList, divisorSeriesList)
//
// A single divisor is broadcast across every dividend; otherwise the lists
// are paired positionally. Each pair is harmonized on its own step and
// window before the elementwise division.
func (f *divideSeries) Do(call interfaces.Call) ([]*types.MetricData, error) {
	dividends, err := helper.GetSeriesArg(call, 0)
	if err != nil {
		return nil, err
	}

	divisors, err := helper.GetSeriesArg(call, 1)
	if err != nil {
		return nil, err
	}

	if len(divisors) != 1 && len(divisors) != len(dividends) {
		return nil, merry.Errorf("divideSeries arguments must have the same length (%d != %d)",
			len(dividends), len(divisors))
	}

	results := make([]*types.MetricData, 0, len(dividends))
	for i, dividend := range dividends {
		divisor := divisors[0]
		if len(divisors) != 1 {
			divisor = divisors[i]
		}

		name := fmt.Sprintf("divideSeries(%s,%s)", dividend.Name, divisor.Name)

		pair, start, stop, step := helper.Normalize([]*types.MetricData{dividend, divisor})
		dividend, divisor = pair[0], pair[1]

		n := int((stop - start) / step)
		r := *dividend
		r.Name = name
		r.PathExpression = name
		r.StartTime = start
		r.StopTime = stop
		r.StepTime = step
		r.Values = make([]float64, n)
		r.IsAbsent = make([]bool, n)

		for j := 0; j < n; j++ {
			a, aAbsent := dividend.ValueAt(j)
			b, bAbsent := divisor.ValueAt(j)
			v, absent := safe.Div(a, aAbsent, b, bAbsent)
			if absent {
				r.IsAbsent[j] = true
				continue
			}
			r.Values[j] = v
		}

		results = append(results, &r)
	}

	return results, nil
}
