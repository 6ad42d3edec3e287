package helper

import (
	"math"

	"github.com/carbonlab/seriesops/expr/types"
)

// GCD returns the greatest common divisor calculated via the Euclidean
// algorithm.
func GCD(a, b int32) int32 {
	for b != 0 {
		t := b
		b = a % b
		a = t
	}
	return a
}

// LCM returns the least common multiple of 2 or more integers via GCD.
func LCM(args ...int32) int32 {
	if len(args) <= 1 {
		if len(args) == 0 {
			return 0
		}
		return args[0]
	}
	lcm := args[0] / GCD(args[0], args[1]) * args[1]

	for i := 2; i < len(args); i++ {
		lcm = LCM(lcm, args[i])
	}
	return lcm
}

// Normalize harmonizes groups of series onto one step and one window. The
// target step is the least common multiple of every input step; series with
// a finer step are consolidated by block-averaging. The common window is
// the union of all input windows with the stop trimmed so the duration is an
// exact multiple of the step. Excess tail samples are dropped, never padded.
//
// Normalize takes ownership of its inputs and consolidates them in place.
// The flattened list is returned along with the common start, stop and step.
func Normalize(groups ...[]*types.MetricData) ([]*types.MetricData, int32, int32, int32) {
	var series []*types.MetricData
	for _, group := range groups {
		series = append(series, group...)
	}
	if len(series) == 0 {
		return nil, 0, 0, 0
	}

	step := series[0].StepTime
	for _, s := range series[1:] {
		step = LCM(step, s.StepTime)
	}

	for _, s := range series {
		consolidateTo(s, step)
	}

	start, stop := window(series)
	stop -= (stop - start) % step

	return series, start, stop, step
}

// FastNormalize is the single-pass variant of Normalize for
// homogeneous-or-near-homogeneous inputs: one linear scan harmonizes the
// step and widens the window, and consolidation runs only when a differing
// step was actually seen. It trades the pairwise reduction of Normalize for
// speed and is used by the fast sum operator.
func FastNormalize(series []*types.MetricData) ([]*types.MetricData, int32, int32, int32) {
	if len(series) == 0 {
		return nil, 0, 0, 0
	}

	step := series[0].StepTime
	minStep := step
	start := series[0].StartTime
	stop := series[0].StopTime

	for _, s := range series[1:] {
		if s.StepTime != step {
			step = LCM(step, s.StepTime)
			if minStep > s.StepTime {
				minStep = s.StepTime
			}
		}
		if start > s.StartTime {
			start = s.StartTime
		}
		if stop < s.StopTime {
			stop = s.StopTime
		}
	}

	if step != minStep {
		for _, s := range series {
			consolidateTo(s, step)
		}
	}

	stop -= (stop - start) % step

	return series, start, stop, step
}

// consolidateTo block-averages s down to the target step. The factor is an
// exact integer when the target is the LCM of the group's steps; a step that
// does not divide evenly is handled best-effort by rounding the factor.
func consolidateTo(s *types.MetricData, step int32) {
	if s.StepTime == step {
		return
	}
	s.Consolidate(int(math.Round(float64(step) / float64(s.StepTime))))
}

func window(series []*types.MetricData) (int32, int32) {
	start := series[0].StartTime
	stop := series[0].StopTime
	for _, s := range series[1:] {
		if start > s.StartTime {
			start = s.StartTime
		}
		if stop < s.StopTime {
			stop = s.StopTime
		}
	}
	return start, stop
}
