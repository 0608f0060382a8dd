// Package solver implements one-dimensional root finders used by model calibration.
package solver

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonConvergence is returned when a root search exhausts its iteration budget
// or is started on a bracket without a sign change.
var ErrNonConvergence = errors.New("root search did not converge")

const (
	// DefaultAccuracy is 15 machine epsilons.
	DefaultAccuracy = 15 * 2.220446049250313e-16
	// DefaultMaxIterations is (DBL_DIG*10)/3.
	DefaultMaxIterations = (15 * 10) / 3
)

// ErrorFunc is satisfied by objects whose zero is being searched for.
type ErrorFunc interface {
	Error(x float64) float64
}

type settings struct {
	accuracy      float64
	maxIterations int
}

// Option configures a root search.
type Option func(*settings)

func WithAccuracy(acc float64) Option {
	return func(s *settings) { s.accuracy = acc }
}

func WithMaxIterations(n int) Option {
	return func(s *settings) { s.maxIterations = n }
}

func newSettings(opts []Option) settings {
	s := settings{accuracy: DefaultAccuracy, maxIterations: DefaultMaxIterations}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Bisection finds a zero of f inside [lo, hi]. Convergence is measured in the abscissa only.
func Bisection(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	s := newSettings(opts)
	x1, x2 := lo, hi
	f1 := f(x1)
	if f1 == 0 {
		return x1, nil
	}
	f2 := f(x2)
	if f2 == 0 {
		return x2, nil
	}
	if f1*f2 > 0 || math.IsNaN(f1) || math.IsNaN(f2) {
		return math.NaN(), fmt.Errorf("%w: no sign change on [%g, %g] (f=%g, %g)", ErrNonConvergence, lo, hi, f1, f2)
	}

	for i := 0; i < s.maxIterations; i++ {
		xmid := 0.5 * (x1 + x2)
		fmid := f(xmid)
		if fmid == 0 {
			return xmid, nil
		}
		if f1*fmid < 0 {
			x2 = xmid
		} else {
			x1, f1 = xmid, fmid
		}
		if math.Abs(x2-x1) <= s.accuracy {
			return 0.5 * (x1 + x2), nil
		}
	}
	return math.NaN(), fmt.Errorf("%w: bracket [%g, %g] after %d iterations", ErrNonConvergence, x1, x2, s.maxIterations)
}

// BisectionOf runs Bisection on an ErrorFunc.
func BisectionOf(e ErrorFunc, lo, hi float64, opts ...Option) (float64, error) {
	return Bisection(e.Error, lo, hi, opts...)
}

// Newton iterates x -= ratio(x), where ratio is f(x)/f'(x). Only for smooth functions.
func Newton(ratio func(float64) float64, guess float64, opts ...Option) (float64, error) {
	s := newSettings(opts)
	x := guess
	for i := 0; i < s.maxIterations; i++ {
		eps := ratio(x)
		if math.IsNaN(eps) || math.IsInf(eps, 0) {
			break
		}
		if math.Abs(eps) < s.accuracy {
			return x, nil
		}
		x -= eps
	}
	return math.NaN(), fmt.Errorf("%w: newton from %g stopped at %g", ErrNonConvergence, guess, x)
}
