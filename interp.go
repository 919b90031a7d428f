/*package interp estimates the value of an unknown function at a query
point from a finite table of known (x, y) samples. Three methods are
provided, in increasing order of refinement: linear interpolation over
the two nearest samples, quadratic interpolation over three neighbors,
and cubic interpolation over a five-point neighbor window. Queries
outside the sampled range extrapolate with the same formulas.
*/
package interp

import (
	"fmt"
	"math"
	"sort"
)

// Interpolator holds an immutable sample set sorted ascending by x.
// Its methods are pure functions of the sample set and the query
// point, so a single Interpolator can be shared between goroutines
// without locking.
type Interpolator struct {
	xs, ys []float64
}

// New creates an Interpolator from a table of x -> y samples. Samples
// whose value is NaN are dropped: an undefined y tells us nothing
// about the function. Samples whose key is NaN are dropped for the
// same reason. An infinite key cannot be ordered against a query
// point and is rejected with ErrBadKey.
//
// Returns ErrNoSamples if the table is nil or no usable samples
// remain after dropping.
func New(samples map[float64]float64) (*Interpolator, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	xs := make([]float64, 0, len(samples))
	for x, y := range samples {
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %g", ErrBadKey, x)
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}
	sort.Float64s(xs)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = samples[x]
	}
	return &Interpolator{xs: xs, ys: ys}, nil
}

// Len returns the number of usable samples.
func (in *Interpolator) Len() int { return len(in.xs) }

// Keys returns a copy of the sample keys in ascending order.
func (in *Interpolator) Keys() []float64 {
	return append([]float64(nil), in.xs...)
}

// Values returns a copy of the sample values, ordered to match Keys.
func (in *Interpolator) Values() []float64 {
	return append([]float64(nil), in.ys...)
}

// Linear interpolates linearly at x over the two nearest samples.
//
// Returns ErrTooFewPoints if the set holds fewer than 2 samples and
// ErrDegenerate if the two selected samples share an x value.
func (in *Interpolator) Linear(x float64) (float64, error) {
	if err := in.need(2, "linear"); err != nil {
		return 0, err
	}
	lo := nearestPair(x, in.xs)
	return evalLine(x, in.xs[lo:lo+2], in.ys[lo:lo+2])
}

// Quadratic interpolates at x with the unique parabola through the
// three-point neighbor window around x (the window ClosestThreePoints
// selects).
//
// Returns ErrTooFewPoints if the set holds fewer than 3 samples and
// ErrDegenerate if any two selected samples share an x value.
func (in *Interpolator) Quadratic(x float64) (float64, error) {
	if err := in.need(3, "quadratic"); err != nil {
		return 0, err
	}
	lo := threeWindow(nearestPair(x, in.xs), len(in.xs))
	return evalLagrange(x, in.xs[lo:lo+3], in.ys[lo:lo+3])
}

// Cubic interpolates at x with the unique degree-4 polynomial through
// a five-point neighbor window around x, selected by the same
// forward-preferring extension policy as the quadratic window.
//
// Returns ErrTooFewPoints if the set holds fewer than 5 samples and
// ErrDegenerate if any two selected samples share an x value.
func (in *Interpolator) Cubic(x float64) (float64, error) {
	if err := in.need(5, "cubic"); err != nil {
		return 0, err
	}
	lo := fiveWindow(nearestPair(x, in.xs), len(in.xs))
	return evalLagrange(x, in.xs[lo:lo+5], in.ys[lo:lo+5])
}

// LinearAll evaluates Linear at every value in xs. If an output slice
// is given the results are written to it (the slice is still returned
// as a convenience); if more than one is given, only the first is
// used. The first evaluation error aborts the sweep.
func (in *Interpolator) LinearAll(xs []float64, out ...[]float64) ([]float64, error) {
	return in.evalAll(in.Linear, xs, out)
}

// QuadraticAll evaluates Quadratic at every value in xs. The output
// convention matches LinearAll.
func (in *Interpolator) QuadraticAll(xs []float64, out ...[]float64) ([]float64, error) {
	return in.evalAll(in.Quadratic, xs, out)
}

// CubicAll evaluates Cubic at every value in xs. The output convention
// matches LinearAll.
func (in *Interpolator) CubicAll(xs []float64, out ...[]float64) ([]float64, error) {
	return in.evalAll(in.Cubic, xs, out)
}

func (in *Interpolator) evalAll(
	eval func(float64) (float64, error), xs []float64, out [][]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		y, err := eval(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}

func (in *Interpolator) need(n int, method string) error {
	if len(in.xs) < n {
		return fmt.Errorf(
			"%w: %s interpolation needs %d points, have %d",
			ErrTooFewPoints, method, n, len(in.xs),
		)
	}
	return nil
}
