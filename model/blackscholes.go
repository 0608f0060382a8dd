package model

import (
	"fmt"
	"math"
)

// VolInterpolatee selects what the Black-Scholes vol components represent.
type VolInterpolatee int

const (
	// Instantaneous volatility on each grid segment
	InstVol VolInterpolatee = iota
	// Total log variance accumulated from 0 to each grid time
	Variance
	// Instantaneous variance on each grid segment
	InstVolSquared
)

// BlackScholes is a lognormal diffusion with deterministic piecewise volatility and no dividend.
// It owns its discount curve.
type BlackScholes struct {
	spot         float64
	curve        *YieldCurve
	times        []float64
	vols         []float64
	interpolatee VolInterpolatee
	method       InterpolationMethod
}

var _ Calibratable = (*BlackScholes)(nil)

// Constructor for a Black-Scholes model with flat vol and flat rate.
func NewFlatBlackScholes(spot, vol, rate float64) *BlackScholes {
	return &BlackScholes{
		spot:         spot,
		curve:        NewFlatYieldCurve(rate),
		times:        []float64{1.0},
		vols:         []float64{vol},
		interpolatee: InstVol,
		method:       Flat,
	}
}

// DefaultBlackScholes returns spot 100, flat vol 30% on a flat 3% curve.
func DefaultBlackScholes() *BlackScholes {
	return NewFlatBlackScholes(100.0, 0.3, DefaultRate)
}

// Constructor for a Black-Scholes model with a vol curve. The curve is deep copied; nil means DefaultYieldCurve.
func NewBlackScholes(spot float64, times, vols []float64, curve *YieldCurve, interpolatee VolInterpolatee, method InterpolationMethod) (*BlackScholes, error) {
	if err := validateGrid(times, vols); err != nil {
		return nil, fmt.Errorf("black scholes: %w", err)
	}
	if spot <= 0 {
		return nil, fmt.Errorf("black scholes: %w: spot must be positive, got %g", ErrInvalidModelSpec, spot)
	}
	m := &BlackScholes{
		spot:         spot,
		times:        append([]float64(nil), times...),
		vols:         append([]float64(nil), vols...),
		interpolatee: interpolatee,
		method:       method,
	}
	m.SetYieldCurve(curve)
	return m, nil
}

// SetYieldCurve replaces the owned discount curve with a copy of c.
func (m *BlackScholes) SetYieldCurve(c *YieldCurve) {
	if c == nil {
		m.curve = DefaultYieldCurve()
		return
	}
	m.curve = c.clone()
}

// YieldCurve returns a copy of the owned discount curve.
func (m *BlackScholes) YieldCurve() *YieldCurve { return m.curve.clone() }

func (m *BlackScholes) Kind() Kind { return KindBlackScholes }

func (m *BlackScholes) Clone() Model {
	return &BlackScholes{
		spot:         m.spot,
		curve:        m.curve.clone(),
		times:        append([]float64(nil), m.times...),
		vols:         append([]float64(nil), m.vols...),
		interpolatee: m.interpolatee,
		method:       m.method,
	}
}

func (m *BlackScholes) Spot() float64 { return m.spot }

func (m *BlackScholes) DF(t float64) float64 { return m.curve.DF(t) }

func (m *BlackScholes) ForwardRate(t1, t2 float64) float64 { return m.curve.ForwardRate(t1, t2) }

// ForwardPrice is spot/DF(t).
func (m *BlackScholes) ForwardPrice(t float64) float64 {
	return m.spot / m.curve.DF(t)
}

// LogDrift is the risk neutral drift of log spot between t0 and t1.
func (m *BlackScholes) LogDrift(t0, t1 float64) float64 {
	return m.curve.LnDF(t0) - m.curve.LnDF(t1) - 0.5*m.LogVariance(t0, t1)
}

// LogVariance is the integrated instantaneous variance between t0 and t1. Zero when t1 < t0.
func (m *BlackScholes) LogVariance(t0, t1 float64) float64 {
	if t1 < t0 {
		return 0.0
	}
	return integrate(m.times, m.varianceRates(), m.method, t0, t1)
}

// Vol is the Black implied volatility to t.
func (m *BlackScholes) Vol(t float64) float64 {
	if t <= 0 {
		return math.Sqrt(m.varianceRates()[0])
	}
	return math.Sqrt(m.LogVariance(0.0, t) / t)
}

// varianceRates converts the components to instantaneous variance per grid segment.
func (m *BlackScholes) varianceRates() []float64 {
	rates := make([]float64, len(m.vols))
	switch m.interpolatee {
	case InstVolSquared:
		copy(rates, m.vols)
	case Variance:
		prevT, prevW := 0.0, 0.0
		for i, w := range m.vols {
			rates[i] = (w - prevW) / (m.times[i] - prevT)
			prevT, prevW = m.times[i], w
		}
	default:
		for i, v := range m.vols {
			rates[i] = v * v
		}
	}
	return rates
}

// Times returns a copy of the vol grid.
func (m *BlackScholes) Times() []float64 { return append([]float64(nil), m.times...) }

// Components returns a copy of the vol components.
func (m *BlackScholes) Components() []float64 { return append([]float64(nil), m.vols...) }

func (m *BlackScholes) Interpolatee() VolInterpolatee { return m.interpolatee }

func (m *BlackScholes) Method() InterpolationMethod { return m.method }

func (m *BlackScholes) Size() int { return len(m.vols) }

func (m *BlackScholes) Component(i int) float64 { return m.vols[i] }

func (m *BlackScholes) SetComponent(i int, v float64) error {
	if i < 0 || i >= len(m.vols) {
		return fmt.Errorf("black scholes: component %d out of range [0, %d)", i, len(m.vols))
	}
	m.vols[i] = v
	return nil
}
