// Package tests holds shared helpers for operator tests.
package tests

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/types"
)

const eps = 0.0000000001

// EvalTestItem is one table entry: an operator invocation and the series it
// must produce.
type EvalTestItem struct {
	Target string
	Args   []interfaces.Arg
	Want   []*types.MetricData
}

// TestEvalExpr runs one table entry against f and compares the full result
// list.
func TestEvalExpr(t *testing.T, f interfaces.Function, tt *EvalTestItem) {
	t.Helper()

	got, err := f.Do(interfaces.Call{Target: tt.Target, Args: tt.Args})
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", tt.Target, err)
	}
	CompareResults(t, tt.Target, tt.Want, got)
}

// CompareResults compares two result lists series by series.
func CompareResults(t *testing.T, target string, want, got []*types.MetricData) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %d series, want %d", target, len(got), len(want))
	}
	for i := range want {
		if !MetricDataIsEqual(want[i], got[i]) {
			t.Errorf("%s: series %d mismatch\nwant: %s\ngot:  %s",
				target, i, FormatMetricData(want[i]), FormatMetricData(got[i]))
		}
	}
}

// MetricDataIsEqual reports whether two series agree on identity, window,
// step and samples. Values are compared with a small epsilon.
func MetricDataIsEqual(a, b *types.MetricData) bool {
	if a.Name != b.Name || a.PathExpression != b.PathExpression {
		return false
	}
	if a.StartTime != b.StartTime || a.StopTime != b.StopTime || a.StepTime != b.StepTime {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.IsAbsent[i] != b.IsAbsent[i] {
			return false
		}
		if a.IsAbsent[i] {
			continue
		}
		if math.Abs(a.Values[i]-b.Values[i]) > eps {
			return false
		}
	}
	return true
}

// FormatMetricData renders a series for failure messages, with absent
// samples shown as None.
func FormatMetricData(r *types.MetricData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%d:%d:%d] (", r.Name, r.StartTime, r.StopTime, r.StepTime)
	for i, v := range r.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		if r.IsAbsent[i] {
			sb.WriteString("None")
		} else {
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
