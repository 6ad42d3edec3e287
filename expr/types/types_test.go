package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeMetricData(t *testing.T) {
	r := MakeMetricData("metric1", []float64{1, math.NaN(), 3}, 10, 100)

	assert.Equal(t, "metric1", r.Name)
	assert.Equal(t, "metric1", r.PathExpression)
	assert.Equal(t, int32(100), r.StartTime)
	assert.Equal(t, int32(130), r.StopTime)
	assert.Equal(t, int32(10), r.StepTime)
	assert.Equal(t, []float64{1, 0, 3}, r.Values)
	assert.Equal(t, []bool{false, true, false}, r.IsAbsent)
}

func TestValueAt(t *testing.T) {
	r := MakeMetricData("metric1", []float64{1, math.NaN()}, 1, 0)

	v, absent := r.ValueAt(0)
	assert.False(t, absent)
	assert.Equal(t, 1.0, v)

	_, absent = r.ValueAt(1)
	assert.True(t, absent)

	// out of range reads as absent
	_, absent = r.ValueAt(2)
	assert.True(t, absent)
	_, absent = r.ValueAt(-1)
	assert.True(t, absent)
}

func TestConsolidate(t *testing.T) {
	r := MakeMetricData("metric1", []float64{1, 2, 3, 4}, 1, 0)
	r.Consolidate(2)

	assert.Equal(t, []float64{1.5, 3.5}, r.Values)
	assert.Equal(t, []bool{false, false}, r.IsAbsent)
	assert.Equal(t, int32(2), r.StepTime)
	assert.Equal(t, int32(4), r.StopTime)
}

func TestConsolidateAbsentBlock(t *testing.T) {
	r := MakeMetricData("metric1", []float64{math.NaN(), math.NaN(), 3, 5}, 1, 0)
	r.Consolidate(2)

	assert.Equal(t, []bool{true, false}, r.IsAbsent)
	assert.Equal(t, 4.0, r.Values[1])
}

func TestConsolidatePartialBlock(t *testing.T) {
	// block of one at the tail is averaged over what it has
	r := MakeMetricData("metric1", []float64{2, 4, 6}, 1, 0)
	r.Consolidate(2)

	assert.Equal(t, []float64{3, 6}, r.Values)
	assert.Equal(t, int32(2), r.StepTime)
	assert.Equal(t, int32(4), r.StopTime)
}

func TestConsolidateNoop(t *testing.T) {
	r := MakeMetricData("metric1", []float64{1, 2, 3}, 1, 0)
	r.Consolidate(1)

	assert.Equal(t, []float64{1, 2, 3}, r.Values)
	assert.Equal(t, int32(1), r.StepTime)
	assert.Equal(t, int32(3), r.StopTime)
}

func TestCopy(t *testing.T) {
	r := MakeMetricData("metric1", []float64{1, 2}, 1, 0)
	c := r.Copy()

	c.Values[0] = 42
	c.IsAbsent[1] = true

	assert.Equal(t, 1.0, r.Values[0])
	assert.False(t, r.IsAbsent[1])
}

func TestWindowedMean(t *testing.T) {
	w := &Windowed{Data: make([]float64, 3)}
	w.Push(1)
	w.Push(2)
	w.Push(3)
	assert.Equal(t, 2.0, w.Mean())

	w.Push(math.NaN())
	// window is now {2, 3, NaN}
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 2.5, w.Mean())

	w.Push(math.NaN())
	w.Push(math.NaN())
	assert.Equal(t, 0, w.Len())
	assert.True(t, math.IsNaN(w.Mean()))
}
