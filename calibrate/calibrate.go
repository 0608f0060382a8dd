// Package calibrate fits model components to market quotes, either by sequential bootstrap
// or by a joint least-squares fit.
package calibrate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/banachtech/valuation/engine"
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/solver"
)

// ErrMismatchedInputSizes is returned when maturities and quotes differ in length.
var ErrMismatchedInputSizes = errors.New("mismatched input sizes")

const (
	swapFrequency = 0.5
	swapNotional  = 10000.0

	rateLower = -0.1
	rateUpper = 1.0
	volLower  = 1e-5
	volUpper  = 3.0
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// componentSolver reprices an instrument while one model component moves.
// The first repricing failure is kept in err and turns every later error value into NaN.
type componentSolver struct {
	model   model.Calibratable
	product product.Product
	index   int
	target  float64
	err     error
}

var _ solver.ErrorFunc = (*componentSolver)(nil)

func newComponentSolver(m model.Calibratable, p product.Product, index int, target float64) (*componentSolver, error) {
	if index < 0 || index >= m.Size() {
		return nil, fmt.Errorf("component %d out of range [0, %d)", index, m.Size())
	}
	if _, err := engine.NewAnalytic(m, p, true); err != nil {
		return nil, err
	}
	return &componentSolver{model: m, product: p, index: index, target: target}, nil
}

// Error sets the component to x and returns the model price less the target.
func (s *componentSolver) Error(x float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	if err := s.model.SetComponent(s.index, x); err != nil {
		s.err = err
		return math.NaN()
	}
	e, err := engine.NewAnalytic(s.model, s.product, true)
	if err != nil {
		s.err = err
		return math.NaN()
	}
	return engine.PV(e) - s.target
}

func (s *componentSolver) solve(lo, hi float64) (float64, error) {
	x, err := solver.BisectionOf(s, lo, hi)
	if s.err != nil {
		return x, s.err
	}
	if err != nil {
		return x, err
	}
	return x, s.model.SetComponent(s.index, x)
}

// YieldCurve bootstraps a curve from par swap rates. Component i is solved so that a receive fixed swap
// from 0 to maturities[i] at rates[i], with semiannual legs, has zero value. Maturities must be ascending.
func YieldCurve(maturities, rates []float64, method model.InterpolationMethod, interpolatee model.YieldInterpolatee) (*model.YieldCurve, error) {
	if len(maturities) != len(rates) {
		return nil, fmt.Errorf("%w: %d maturities for %d swap rates", ErrMismatchedInputSizes, len(maturities), len(rates))
	}
	curve, err := model.NewYieldCurve(maturities, rates, interpolatee, method)
	if err != nil {
		return nil, err
	}

	for i, maturity := range maturities {
		swap, err := product.NewVanillaSwap(0.0, maturity, rates[i], swapFrequency, swapFrequency, swapNotional, product.Receive)
		if err != nil {
			return nil, fmt.Errorf("calibrate yield curve at %g: %w", maturity, err)
		}
		s, err := newComponentSolver(curve, swap, i, 0.0)
		if err != nil {
			return nil, fmt.Errorf("calibrate yield curve at %g: %w", maturity, err)
		}
		x, err := s.solve(rateLower, rateUpper)
		if err != nil {
			return nil, fmt.Errorf("calibrate yield curve at %g: %w", maturity, err)
		}
		logger.Debug("curve component solved", "index", i, "maturity", maturity, "swapRate", rates[i], "component", x)
	}
	return curve, nil
}

// BlackScholes bootstraps vol components from implied vols of at-the-money-forward calls, holding the
// given curve fixed. A nil curve means the default flat curve. Maturities must be ascending.
func BlackScholes(spot float64, maturities, vols []float64, curve *model.YieldCurve, method model.InterpolationMethod, interpolatee model.VolInterpolatee) (*model.BlackScholes, error) {
	if len(maturities) != len(vols) {
		return nil, fmt.Errorf("%w: %d maturities for %d implied vols", ErrMismatchedInputSizes, len(maturities), len(vols))
	}
	m, err := model.NewBlackScholes(spot, maturities, initialVols(maturities, vols, interpolatee), curve, interpolatee, method)
	if err != nil {
		return nil, err
	}

	for i, maturity := range maturities {
		fwd := m.ForwardPrice(maturity)
		call := product.NewCall(maturity, 1.0, product.Buy, fwd)
		target := engine.Black(fwd, fwd, maturity, vols[i], product.Call) * m.DF(maturity)
		s, err := newComponentSolver(m, call, i, target)
		if err != nil {
			return nil, fmt.Errorf("calibrate black scholes at %g: %w", maturity, err)
		}
		x, err := s.solve(volLower, volUpper)
		if err != nil {
			return nil, fmt.Errorf("calibrate black scholes at %g: %w", maturity, err)
		}
		logger.Debug("vol component solved", "index", i, "maturity", maturity, "impliedVol", vols[i], "component", x)
	}
	return m, nil
}

// initialVols converts implied vols into starting components in the units of interpolatee.
func initialVols(maturities, vols []float64, interpolatee model.VolInterpolatee) []float64 {
	out := make([]float64, len(vols))
	for i, v := range vols {
		switch interpolatee {
		case model.Variance:
			out[i] = v * v * maturities[i]
		case model.InstVolSquared:
			out[i] = v * v
		default:
			out[i] = v
		}
	}
	return out
}
