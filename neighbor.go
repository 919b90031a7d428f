package interp

import (
	"fmt"
	"math"
	"sort"
)

// nearestIndex returns the index of the value in xs closest to sought.
// xs must be sorted ascending and non-empty. An equidistant tie
// resolves to the lower value.
func nearestIndex(sought float64, xs []float64) int {
	i := sort.SearchFloat64s(xs, sought)
	if i == 0 {
		return 0
	}
	if i == len(xs) {
		return len(xs) - 1
	}
	if sought-xs[i-1] <= xs[i]-sought {
		return i - 1
	}
	return i
}

// nearestPair returns the index of the lower member of the adjacent
// pair containing the two values in xs closest to sought. xs must be
// sorted ascending and hold at least two values. The pair is the
// closest value together with the nearer of its flanking neighbors,
// lower neighbor on a tie.
func nearestPair(sought float64, xs []float64) int {
	c := nearestIndex(sought, xs)
	if c == 0 {
		return 0
	}
	if c == len(xs)-1 {
		return c - 1
	}
	if math.Abs(sought-xs[c-1]) <= math.Abs(xs[c+1]-sought) {
		return c - 1
	}
	return c
}

// threeWindow widens the nearest pair starting at lo into a
// three-point window over n sorted values and returns the window's
// start index. The window takes the point after the pair unless the
// pair already sits within the last two positions, in which case it
// takes the point before the pair instead.
func threeWindow(lo, n int) int {
	hi := lo + 1
	if hi < n-2 {
		return lo
	}
	if lo > 0 {
		return lo - 1
	}
	// Only reachable with exactly three points and the pair at the
	// front: the backward step wraps around, so the window is the
	// whole set.
	return lo
}

// fiveWindow widens the nearest pair starting at lo into a five-point
// window over n sorted values and returns the window's start index.
// Each step extends toward higher x unless the window's top sits
// within the last two positions, in which case it extends toward
// lower x, with the same wraparound at the front as threeWindow.
func fiveWindow(lo, n int) int {
	hi := lo + 1
	for hi-lo < 4 {
		if hi < n-2 {
			hi++
		} else if lo > 0 {
			lo--
		} else {
			hi++
		}
	}
	return lo
}

// ClosestThreePoints returns the three values in points closest to
// sought, sorted ascending, under the same windowing policy Quadratic
// uses: the two nearest values extended to the next value above them,
// or to the next value below when the pair sits too close to the end
// of the data. points need not be sorted and is not modified.
//
// Returns ErrTooFewPoints if fewer than three points are supplied.
func ClosestThreePoints(sought float64, points []float64) ([]float64, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf(
			"%w: need 3 points, have %d", ErrTooFewPoints, len(points),
		)
	}
	xs := append([]float64(nil), points...)
	sort.Float64s(xs)
	lo := threeWindow(nearestPair(sought, xs), len(xs))
	return xs[lo : lo+3 : lo+3], nil
}
