package interp

import (
	"errors"
	"testing"
)

func TestNearestPair(t *testing.T) {
	table := []struct {
		xs     []float64
		sought float64
		lo     int
	}{
		{[]float64{1, 2, 3}, 2.5, 1},
		{[]float64{1, 2, 3}, 1.2, 0},
		{[]float64{1, 2, 3}, -10, 0},
		{[]float64{1, 2, 3}, 10, 1},
		// Exact hit in the interior pairs with the nearer flank,
		// lower flank on a tie.
		{[]float64{1, 2, 3}, 2, 0},
		{[]float64{1, 2, 4}, 2, 0},
		{[]float64{0, 2, 3}, 2, 1},
		// The second-nearest point need not straddle the query.
		{[]float64{0, 10, 11}, 9.5, 1},
		{[]float64{0, 1, 10}, 1.5, 0},
		// Equidistant between two points: lower one wins.
		{[]float64{1, 3, 5}, 2, 0},
	}

	for i, test := range table {
		lo := nearestPair(test.sought, test.xs)
		if lo != test.lo {
			t.Errorf("%d) Expected pair start %d for sought = %g. Got %d.",
				i+1, test.lo, test.sought, lo)
		}
	}
}

func TestThreeWindow(t *testing.T) {
	table := []struct {
		n, lo, start int
	}{
		// Interior pairs extend toward higher x.
		{5, 0, 0},
		{5, 1, 1},
		// Pairs within the last two positions extend backward.
		{5, 2, 1},
		{5, 3, 2},
		{4, 1, 0},
		{4, 2, 1},
		// Three points: every pair yields the whole set.
		{3, 0, 0},
		{3, 1, 0},
	}

	for i, test := range table {
		start := threeWindow(test.lo, test.n)
		if start != test.start {
			t.Errorf("%d) Expected window start %d for lo = %d, n = %d. "+
				"Got %d.", i+1, test.start, test.lo, test.n, start)
		}
	}
}

func TestFiveWindow(t *testing.T) {
	table := []struct {
		n, lo, start int
	}{
		// Five points: the window is always the whole set.
		{5, 0, 0},
		{5, 1, 0},
		{5, 3, 0},
		// Forward extension stops short of the last position.
		{7, 0, 0},
		{7, 2, 1},
		{10, 4, 4},
		// Pairs near the end extend backward.
		{7, 5, 2},
		{10, 7, 4},
		{6, 4, 1},
	}

	for i, test := range table {
		start := fiveWindow(test.lo, test.n)
		if start != test.start {
			t.Errorf("%d) Expected window start %d for lo = %d, n = %d. "+
				"Got %d.", i+1, test.start, test.lo, test.n, start)
		}
	}
}

func TestClosestThreePoints(t *testing.T) {
	table := []struct {
		points []float64
		sought float64
		out    []float64
	}{
		{[]float64{1, 2, 3, 4, 5}, 2.4, []float64{2, 3, 4}},
		{[]float64{1, 2, 3, 4, 5}, 1.1, []float64{1, 2, 3}},
		{[]float64{1, 2, 3, 4, 5}, 4.6, []float64{3, 4, 5}},
		{[]float64{1, 2, 3, 4, 5}, 100, []float64{3, 4, 5}},
		{[]float64{1, 2, 3, 4, 5}, -100, []float64{1, 2, 3}},
		{[]float64{1, 2, 3}, 1.2, []float64{1, 2, 3}},
		{[]float64{1, 2, 3}, 2.9, []float64{1, 2, 3}},
		// Input order does not matter.
		{[]float64{5, 1, 4, 2, 3}, 2.4, []float64{2, 3, 4}},
		{[]float64{10, 0, 11}, 9.5, []float64{0, 10, 11}},
	}

	for i, test := range table {
		out, err := ClosestThreePoints(test.sought, test.points)
		if err != nil {
			t.Errorf("%d) Unexpected error: %s", i+1, err.Error())
			continue
		}
		if len(out) != 3 || out[0] != test.out[0] ||
			out[1] != test.out[1] || out[2] != test.out[2] {

			t.Errorf("%d) Expected %.1f for sought = %g. Got %.1f.",
				i+1, test.out, test.sought, out)
		}
	}
}

func TestClosestThreePointsTooFew(t *testing.T) {
	for _, points := range [][]float64{nil, {1}, {1, 2}} {
		_, err := ClosestThreePoints(0, points)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("Expected ErrTooFewPoints for %d points. Got %v.",
				len(points), err)
		}
	}
}

func TestClosestThreePointsLeavesInputAlone(t *testing.T) {
	points := []float64{5, 1, 4, 2, 3}
	_, err := ClosestThreePoints(2.4, points)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	want := []float64{5, 1, 4, 2, 3}
	for i := range points {
		if points[i] != want[i] {
			t.Errorf("Input reordered: got %.1f, want %.1f.", points, want)
			break
		}
	}
}
