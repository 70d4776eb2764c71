package fu

import "math"

/*
Ratio returns num/den as float or NaN if den is zero
*/
func Ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// Count returns the number of v occurrences in a
func Count(a []int, v int) int {
	c := 0
	for _, x := range a {
		if x == v {
			c++
		}
	}
	return c
}

// Matches returns the number of positions where a and b are equal
func Matches(a, b []int) int {
	c := 0
	for i, x := range a[:Mini(len(a), len(b))] {
		if x == b[i] {
			c++
		}
	}
	return c
}
