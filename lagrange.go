package interp

import (
	"fmt"
)

// evalLine evaluates the secant line through (xs[0], ys[0]) and
// (xs[1], ys[1]) at x. len(xs) and len(ys) must be 2.
func evalLine(x float64, xs, ys []float64) (float64, error) {
	if xs[0] == xs[1] {
		return 0, fmt.Errorf("%w: duplicate x = %g", ErrDegenerate, xs[0])
	}
	return ys[0] + (x-xs[0])*(ys[1]-ys[0])/(xs[1]-xs[0]), nil
}

// evalLagrange evaluates the unique polynomial of degree len(xs)-1
// through the given points at x, in Lagrange form: the sum of each
// y_i weighted by the basis polynomial that is 1 at x_i and 0 at
// every other node. xs and ys must have equal length.
func evalLagrange(x float64, xs, ys []float64) (float64, error) {
	sum := 0.0
	for i := range xs {
		basis := 1.0
		for j := range xs {
			if j == i {
				continue
			}
			if xs[i] == xs[j] {
				return 0, fmt.Errorf(
					"%w: duplicate x = %g", ErrDegenerate, xs[i],
				)
			}
			basis *= (x - xs[j]) / (xs[i] - xs[j])
		}
		sum += ys[i] * basis
	}
	return sum, nil
}
