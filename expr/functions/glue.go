// Package functions registers every combine operator with the metadata
// registry.
package functions

import (
	"github.com/carbonlab/seriesops/expr/functions/asPercent"
	"github.com/carbonlab/seriesops/expr/functions/divideSeries"
	"github.com/carbonlab/seriesops/expr/functions/mostDeviant"
	"github.com/carbonlab/seriesops/expr/functions/moving"
	"github.com/carbonlab/seriesops/expr/functions/movingNew"
	"github.com/carbonlab/seriesops/expr/functions/sumSeries"
	"github.com/carbonlab/seriesops/expr/interfaces"
	"github.com/carbonlab/seriesops/expr/metadata"
)

type initFunc struct {
	name string
	f    func() []interfaces.FunctionMetadata
}

// New registers every operator package, legacy aliases included.
func New() {
	funcs := []initFunc{
		{name: "asPercent", f: asPercent.New},
		{name: "divideSeries", f: divideSeries.New},
		{name: "mostDeviant", f: mostDeviant.New},
		{name: "moving", f: moving.New},
		{name: "movingNew", f: movingNew.New},
		{name: "sumSeries", f: sumSeries.New},
	}

	for _, fn := range funcs {
		for _, md := range fn.f() {
			metadata.RegisterFunction(md.Name, md.F)
		}
	}
}
