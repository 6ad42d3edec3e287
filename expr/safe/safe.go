// Package safe implements null-aware scalar arithmetic. Every function is
// total: an undefined operation (missing operand, division by zero, empty
// input) degrades to an absent result instead of an error. All higher-level
// operators are built on these primitives so that null-propagation policy
// stays in one place.
package safe

// Sum returns the sum of the present entries of one row of samples. The
// result is absent only when every entry is absent.
func Sum(values []float64, isAbsent []bool) (float64, bool) {
	var sum float64
	var atLeastOne bool
	for i, v := range values {
		if isAbsent[i] {
			continue
		}
		atLeastOne = true
		sum += v
	}
	return sum, !atLeastOne
}

// NoneSum is the strict form of Sum: a single absent entry makes the whole
// result absent.
func NoneSum(values []float64, isAbsent []bool) (float64, bool) {
	var sum float64
	for i, v := range values {
		if isAbsent[i] {
			return 0, true
		}
		sum += v
	}
	if len(values) == 0 {
		return 0, true
	}
	return sum, false
}

// Avg returns the mean of the present entries, absent when none are present.
func Avg(values []float64, isAbsent []bool) (float64, bool) {
	sum, absent := Sum(values, isAbsent)
	if absent {
		return 0, true
	}
	return sum / float64(Len(values, isAbsent)), false
}

// Len counts the present entries.
func Len(values []float64, isAbsent []bool) int {
	var n int
	for _, absent := range isAbsent {
		if !absent {
			n++
		}
	}
	return n
}

// Div returns a/b, absent when either operand is absent or b is zero.
func Div(a float64, aAbsent bool, b float64, bAbsent bool) (float64, bool) {
	if aAbsent || bAbsent || b == 0 {
		return 0, true
	}
	return a / b, false
}

// Mul returns a*b, absent when either operand is absent.
func Mul(a float64, aAbsent bool, b float64, bAbsent bool) (float64, bool) {
	if aAbsent || bAbsent {
		return 0, true
	}
	return a * b, false
}
