// Package mathx holds small integer helpers shared by the puzzle solvers.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b, never negative.
// GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// LCM returns the least common multiple of a and b, never negative.
// LCM with zero is zero.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}

// LCMAll folds LCM over values. An empty list yields 1.
func LCMAll[T constraints.Integer](values ...T) T {
	acc := T(1)
	for _, v := range values {
		acc = LCM(acc, v)
	}
	return acc
}
