package functions

import (
	"testing"

	"github.com/carbonlab/seriesops/expr/metadata"
)

func TestNewRegistersEveryOperator(t *testing.T) {
	New()

	names := []string{
		"asPercent",
		"divideSeries",
		"mostDeviant",
		"movingAverage",
		"movingAverageNew",
		"movingMedian",
		"movingMedianNew",
		"sumSeriesFast",
		"sumSeriesWithoutNone",
		"sumWithoutNone",
	}

	for _, name := range names {
		if _, ok := metadata.GetFunction(name); !ok {
			t.Errorf("operator %s not registered", name)
		}
	}
}

func TestSumWithoutNoneAliasDispatch(t *testing.T) {
	New()

	canonical, ok := metadata.GetFunction("sumSeriesWithoutNone")
	if !ok {
		t.Fatal("sumSeriesWithoutNone not registered")
	}
	alias, ok := metadata.GetFunction("sumWithoutNone")
	if !ok {
		t.Fatal("sumWithoutNone not registered")
	}
	if canonical != alias {
		t.Fatal("sumWithoutNone must dispatch to the same operator as sumSeriesWithoutNone")
	}
}

func TestGetFunctionUnknownName(t *testing.T) {
	if _, ok := metadata.GetFunction("noSuchOperator"); ok {
		t.Fatal("unknown name must not resolve")
	}
}
