package model

import (
	"fmt"
	"math"
)

// YieldInterpolatee selects what the yield curve components represent.
type YieldInterpolatee int

const (
	// Instantaneous forward rate on each grid segment
	InstForwardRate YieldInterpolatee = iota
	// Continuously compounded zero rate to each grid time
	ZeroRate
)

// DefaultRate is the flat rate of DefaultYieldCurve.
const DefaultRate = 0.03

// YieldCurve is a discount curve defined by components on a time grid.
type YieldCurve struct {
	times        []float64
	values       []float64
	interpolatee YieldInterpolatee
	method       InterpolationMethod
}

var _ Calibratable = (*YieldCurve)(nil)

// Constructor for a yield curve with a flat rate.
func NewFlatYieldCurve(rate float64) *YieldCurve {
	return &YieldCurve{
		times:        []float64{1.0},
		values:       []float64{rate},
		interpolatee: InstForwardRate,
		method:       Flat,
	}
}

// DefaultYieldCurve returns a flat 3% curve.
func DefaultYieldCurve() *YieldCurve {
	return NewFlatYieldCurve(DefaultRate)
}

// Constructor for a yield curve with given grid times and components. Inputs are copied.
func NewYieldCurve(times, values []float64, interpolatee YieldInterpolatee, method InterpolationMethod) (*YieldCurve, error) {
	if err := validateGrid(times, values); err != nil {
		return nil, fmt.Errorf("yield curve: %w", err)
	}
	return &YieldCurve{
		times:        append([]float64(nil), times...),
		values:       append([]float64(nil), values...),
		interpolatee: interpolatee,
		method:       method,
	}, nil
}

func (c *YieldCurve) Kind() Kind { return KindYieldCurve }

func (c *YieldCurve) Clone() Model { return c.clone() }

func (c *YieldCurve) clone() *YieldCurve {
	return &YieldCurve{
		times:        append([]float64(nil), c.times...),
		values:       append([]float64(nil), c.values...),
		interpolatee: c.interpolatee,
		method:       c.method,
	}
}

// LnDF is the natural log of the discount factor to t.
func (c *YieldCurve) LnDF(t float64) float64 {
	if t <= 0 {
		return 0.0
	}
	if c.interpolatee == ZeroRate {
		return -rateAt(c.times, c.values, c.method, t) * t
	}
	return -integrate(c.times, c.values, c.method, 0.0, t)
}

func (c *YieldCurve) DF(t float64) float64 {
	return math.Exp(c.LnDF(t))
}

// ForwardRate is the simply compounded rate between t1 and t2. For t2 <= t1 the instantaneous forward at t1 is returned.
func (c *YieldCurve) ForwardRate(t1, t2 float64) float64 {
	if t2 <= t1 {
		const h = 1e-6
		return (c.LnDF(t1) - c.LnDF(t1+h)) / h
	}
	return (c.DF(t1)/c.DF(t2) - 1.0) / (t2 - t1)
}

// Times returns a copy of the grid.
func (c *YieldCurve) Times() []float64 { return append([]float64(nil), c.times...) }

// Components returns a copy of the curve components.
func (c *YieldCurve) Components() []float64 { return append([]float64(nil), c.values...) }

func (c *YieldCurve) Interpolatee() YieldInterpolatee { return c.interpolatee }

func (c *YieldCurve) Method() InterpolationMethod { return c.method }

func (c *YieldCurve) Size() int { return len(c.values) }

func (c *YieldCurve) Component(i int) float64 { return c.values[i] }

func (c *YieldCurve) SetComponent(i int, v float64) error {
	if i < 0 || i >= len(c.values) {
		return fmt.Errorf("yield curve: component %d out of range [0, %d)", i, len(c.values))
	}
	c.values[i] = v
	return nil
}
