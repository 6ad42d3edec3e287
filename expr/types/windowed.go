package types

import (
	"math"
)

// Windowed keeps a running sum over a fixed-size ring of samples so a
// sliding mean costs O(1) per pushed point. Absent samples are pushed as NaN
// and excluded from both the sum and the count.
type Windowed struct {
	Data   []float64
	head   int
	length int
	sum    float64
	nans   int
}

// Push adds the next sample, evicting the oldest once the window is full.
func (w *Windowed) Push(n float64) {
	if len(w.Data) == 0 {
		return
	}

	old := w.Data[w.head]

	w.length++

	w.Data[w.head] = n
	w.head++
	if w.head >= len(w.Data) {
		w.head = 0
	}

	if !math.IsNaN(old) {
		w.sum -= old
	} else {
		w.nans--
	}

	if !math.IsNaN(n) {
		w.sum += n
	} else {
		w.nans++
	}
}

// Len returns the number of present samples currently in the window.
func (w *Windowed) Len() int {
	if w.length < len(w.Data) {
		return w.length - w.nans
	}

	return len(w.Data) - w.nans
}

// Mean returns the mean of the present samples in the window. With no
// present samples the result is NaN.
func (w *Windowed) Mean() float64 {
	l := w.Len()
	if l == 0 {
		return math.NaN()
	}
	return w.sum / float64(l)
}
