package engine

import (
	"fmt"

	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/random"
)

// NewAnalytic returns the closed form engine for a model and product pair. When no engine exists it returns
// a nil engine, or ErrUnsupportedPricingCombination if strict is set.
func NewAnalytic(m model.Model, p product.Product, strict bool) (Engine, error) {
	e, err := newAnalytic(m, p)
	if err != nil {
		return nil, err
	}
	if e == nil && strict {
		return nil, fmt.Errorf("%w: %v with %v analytically", ErrUnsupportedPricingCombination, p.Kind(), m.Kind())
	}
	return e, nil
}

func newAnalytic(m model.Model, p product.Product) (Engine, error) {
	switch m.Kind() {
	case model.KindYieldCurve:
		switch p.Kind() {
		case product.KindLeg, product.KindSwap:
			if lin, ok := p.(product.Linear); ok {
				return newLinearEngine(m, lin)
			}
		case product.KindCashflowBullet:
			if b, ok := p.(*product.Bullet); ok {
				return newBulletEngine(m, b), nil
			}
		case product.KindCashflowRateFixed:
			if c, ok := p.(*product.RateFixed); ok {
				return newFixedCashflowEngine(m, c), nil
			}
		case product.KindCashflowRateFloat:
			if c, ok := p.(*product.RateFloat); ok {
				return newFloatCashflowEngine(m, c), nil
			}
		}

	case model.KindBlackScholes:
		bs, ok := m.(*model.BlackScholes)
		if !ok {
			return nil, nil
		}
		switch p.Kind() {
		case product.KindEuropeanCall, product.KindEuropeanPut:
			if o, ok := p.(option); ok {
				return newEuropeanEngine(bs, o), nil
			}
		case product.KindEuropeanStraddle:
			if lin, ok := p.(product.Linear); ok {
				return newLinearEngine(m, lin)
			}
		case product.KindAsianOption:
			if a, ok := p.(*product.Asian); ok {
				return newGeometricAsianEngine(bs, a)
			}
		}
	}
	return nil, nil
}

// NewMonteCarlo returns a simulation engine. Only Black-Scholes dynamics and products with a time line
// and payoff can be simulated; other pairs give ErrUnsupportedPricingCombination if strict is set, and
// otherwise a nil *MonteCarlo with a nil error. Check that pointer before storing it in an Engine: a nil
// *MonteCarlo held in an Engine interface is not a nil Engine.
// The stream is cloned, so the caller's stream does not advance.
func NewMonteCarlo(m model.Model, p product.Product, stream random.Stream, paths int, strict bool, opts ...Option) (*MonteCarlo, error) {
	bs, okModel := m.(*model.BlackScholes)
	pd, okProduct := p.(product.PathDependent)
	if !okModel || !okProduct {
		if strict {
			return nil, fmt.Errorf("%w: %v with %v by simulation", ErrUnsupportedPricingCombination, p.Kind(), m.Kind())
		}
		return nil, nil
	}
	if stream == nil {
		return nil, ErrMissingStream
	}
	s := newSettings(opts)
	return newMonteCarlo(bs, pd, stream, paths, s.progress)
}
