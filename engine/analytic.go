package engine

import (
	"fmt"
	"math"

	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// linearEngine values a composite product as the weighted sum of one sub-engine per sub-product.
type linearEngine struct {
	product product.Linear
	engines []Engine
	weights []float64
}

func newLinearEngine(m model.Model, p product.Linear) (*linearEngine, error) {
	subs := p.Underlyings()
	e := &linearEngine{
		product: p,
		engines: make([]Engine, len(subs)),
		weights: p.Weights(),
	}
	for i, sub := range subs {
		se, err := NewAnalytic(m, sub, true)
		if err != nil {
			return nil, fmt.Errorf("%v component %d: %w", p.Kind(), i, err)
		}
		e.engines[i] = se
	}
	return e, nil
}

func (e *linearEngine) CalculatePV(acc *float64) {
	for i, sub := range e.engines {
		*acc += e.weights[i] * PV(sub)
	}
}

// option is the part of a European option the closed form needs.
type option interface {
	product.Product
	Expiry() float64
	Notional() float64
	BuySell() product.BuySell
	Strike() float64
	CallPut() product.CallPut
}

// europeanEngine prices a call or put with the Black formula on the model forward and implied vol.
type europeanEngine struct {
	model   *model.BlackScholes
	product option
	forward float64
	vol     float64
	df      float64
	value   float64
}

func newEuropeanEngine(m *model.BlackScholes, p option) *europeanEngine {
	e := &europeanEngine{model: m, product: p}
	t := p.Expiry()
	if t < 0 {
		return e
	}
	e.forward = m.ForwardPrice(t)
	e.vol = m.Vol(t)
	e.df = m.DF(t)
	e.value = Black(e.forward, p.Strike(), t, e.vol, p.CallPut()) * e.df * p.Notional() * p.BuySell().Sign()
	return e
}

func (e *europeanEngine) CalculatePV(acc *float64) { *acc += e.value }

func (e *europeanEngine) Forward() float64 { return e.forward }
func (e *europeanEngine) Vol() float64     { return e.vol }

// geometricAsianEngine prices a geometric average option in closed form. The log of the geometric
// average is normal under the model, with variance taken from the covariance of the log spots.
type geometricAsianEngine struct {
	model   *model.BlackScholes
	product *product.Asian
	forward float64
	vol     float64
	value   float64
}

func newGeometricAsianEngine(m *model.BlackScholes, p *product.Asian) (*geometricAsianEngine, error) {
	if p.AverageType() != product.Geometric {
		return nil, fmt.Errorf("%w: closed form needs a geometric average, got %v", ErrUnsupportedAverageType, p.AverageType())
	}
	dates := p.TimeLine()
	n := len(dates)
	expiry := p.Expiry()

	// Cov(ln S(ti), ln S(tj)) = V(0, min(ti, tj))
	variances := make([]float64, n)
	logForwards := make([]float64, n)
	for i, t := range dates {
		variances[i] = m.LogVariance(0.0, t)
		logForwards[i] = math.Log(m.ForwardPrice(t))
	}
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, variances[i])
		}
	}
	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1.0)
	}
	total := mat.Inner(ones, cov, ones)
	diag := mat.Trace(cov)

	fn := float64(n)
	e := &geometricAsianEngine{model: m, product: p}
	e.forward = math.Exp(floats.Sum(logForwards)/fn + 0.5*total/(fn*fn) - 0.5*diag/fn)
	if expiry > 0 {
		e.vol = math.Sqrt(total/expiry) / fn
	}
	if expiry >= 0 {
		premium := Black(e.forward, p.Strike(), expiry, e.vol, p.CallPut())
		e.value = premium * m.DF(expiry) * p.Notional() * p.BuySell().Sign()
	}
	return e, nil
}

func (e *geometricAsianEngine) CalculatePV(acc *float64) { *acc += e.value }

// Forward is the expected geometric average.
func (e *geometricAsianEngine) Forward() float64 { return e.forward }
func (e *geometricAsianEngine) Vol() float64     { return e.vol }
