package interp

import (
	"errors"
)

// Errors returned by the interpolation methods. The methods wrap these
// with call-specific detail, so test for them with errors.Is.
var (
	// ErrNoSamples is returned by New when the sample table is nil,
	// empty, or holds no usable samples.
	ErrNoSamples = errors.New("interp: sample set is missing or empty")

	// ErrBadKey is returned by New when a sample key is infinite.
	ErrBadKey = errors.New("interp: sample key is not finite")

	// ErrTooFewPoints is returned when a method needs more sample
	// points than the set holds.
	ErrTooFewPoints = errors.New("interp: too few sample points")

	// ErrDegenerate is returned when the selected neighbor points
	// contain a duplicate x value, which would zero a denominator in
	// the interpolation formula.
	ErrDegenerate = errors.New("interp: degenerate sample geometry")
)
