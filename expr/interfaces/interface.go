// Package interfaces defines the contract between the query-evaluation
// layer and the combine operators. The evaluation layer resolves selection
// patterns to fetched series and parses scalar parameters before a call
// reaches this library; operators only ever see resolved arguments.
package interfaces

import (
	"github.com/ansel1/merry"

	"github.com/carbonlab/seriesops/expr/types"
)

var (
	// ErrMissingArgument is returned when an operator is invoked with fewer
	// arguments than it requires.
	ErrMissingArgument = merry.New("missing argument")
	// ErrMissingTimeseries is returned when a series-list argument was
	// expected but a scalar was supplied.
	ErrMissingTimeseries = merry.New("missing time series argument")
	// ErrBadType is returned when a scalar argument was expected but a
	// series list was supplied.
	ErrBadType = merry.New("bad type")
)

// ArgType tags one resolved operator argument.
type ArgType int

const (
	// ArgSeries is a list of fetched series.
	ArgSeries ArgType = iota
	// ArgConst is an already-parsed scalar parameter.
	ArgConst
)

// Arg is one resolved argument of an operator invocation.
type Arg struct {
	Type   ArgType
	Series []*types.MetricData
	Const  float64
}

// SeriesArg wraps a list of series as an operator argument.
func SeriesArg(series ...*types.MetricData) Arg {
	return Arg{Type: ArgSeries, Series: series}
}

// ConstArg wraps a scalar as an operator argument.
func ConstArg(v float64) Arg {
	return Arg{Type: ArgConst, Const: v}
}

// Call is one operator invocation with every argument resolved.
type Call struct {
	// Target is the public operator name the evaluation layer dispatched on.
	Target string
	Args   []Arg
}

// Function is the interface all combine operators implement. Do returns a
// list of series even for single-result operators, for uniformity with the
// dispatch convention of the evaluation layer.
type Function interface {
	Do(call Call) ([]*types.MetricData, error)
}

// FunctionMetadata describes one public name of an operator. A package may
// export several entries sharing one Function (legacy aliases).
type FunctionMetadata struct {
	Name string
	F    Function
}
