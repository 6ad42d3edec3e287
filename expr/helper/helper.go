// Package helper carries the alignment engine and the argument accessors
// shared by the operator packages.
package helper

import (
	"github.com/ansel1/merry"
	stringutils "github.com/msaf1980/go-stringutils"

	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/types"
)

// GetSeriesArg returns the series-list argument at position n.
func GetSeriesArg(call interfaces.Call, n int) ([]*types.MetricData, error) {
	if n >= len(call.Args) {
		return nil, merry.Wrap(interfaces.ErrMissingArgument)
	}
	arg := call.Args[n]
	if arg.Type != interfaces.ArgSeries {
		return nil, merry.Wrap(interfaces.ErrMissingTimeseries)
	}
	return arg.Series, nil
}

// GetSeriesGroups returns the variadic series-list arguments from position n
// on, one group per argument. An empty tail is a valid empty input, not an
// error.
func GetSeriesGroups(call interfaces.Call, n int) ([][]*types.MetricData, error) {
	groups := make([][]*types.MetricData, 0, len(call.Args))
	for _, arg := range call.Args[n:] {
		if arg.Type != interfaces.ArgSeries {
			return nil, merry.Wrap(interfaces.ErrMissingTimeseries)
		}
		groups = append(groups, arg.Series)
	}
	return groups, nil
}

// GetFloatArg returns the scalar argument at position n.
func GetFloatArg(call interfaces.Call, n int) (float64, error) {
	if n >= len(call.Args) {
		return 0, merry.Wrap(interfaces.ErrMissingArgument)
	}
	arg := call.Args[n]
	if arg.Type != interfaces.ArgConst {
		return 0, merry.Wrap(interfaces.ErrBadType)
	}
	return arg.Const, nil
}

// GetIntArg returns the scalar argument at position n truncated to an int.
func GetIntArg(call interfaces.Call, n int) (int, error) {
	v, err := GetFloatArg(call, n)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// FormatPathExpressions joins the distinct path expressions of a series
// list, preserving first-seen order. Operators use it to label combined
// results.
func FormatPathExpressions(series []*types.MetricData) string {
	var sb stringutils.Builder
	seen := make(map[string]struct{}, len(series))
	for _, s := range series {
		if _, ok := seen[s.PathExpression]; ok {
			continue
		}
		seen[s.PathExpression] = struct{}{}
		if sb.Len() > 0 {
			_ = sb.WriteByte(',')
		}
		_, _ = sb.WriteString(s.PathExpression)
	}
	return sb.String()
}
