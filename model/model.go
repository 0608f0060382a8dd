// Package model holds the market models used for valuation: an interest rate curve
// and a Black-Scholes diffusion for an equity or FX underlying.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidModelSpec is returned when a model is constructed from inconsistent inputs.
var ErrInvalidModelSpec = errors.New("invalid model specification")

// Kind identifies the concrete model family for engine dispatch.
type Kind int

const (
	KindYieldCurve Kind = iota
	KindBlackScholes
)

func (k Kind) String() string {
	switch k {
	case KindYieldCurve:
		return "Yield Curve Model"
	case KindBlackScholes:
		return "Black Scholes Dynamics Model"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Model interface to be satisfied by every market model. It is the read-only pricing surface.
type Model interface {
	Kind() Kind
	// Independent deep copy
	Clone() Model
	// Discount factor to time t
	DF(t float64) float64
	// Simply compounded forward rate between two times
	ForwardRate(t1, t2 float64) float64
}

// Calibratable is the calibration handle of a model. Only calibration code that owns the model should use it.
type Calibratable interface {
	Model
	Size() int
	Component(i int) float64
	SetComponent(i int, v float64) error
}

// InterpolationMethod selects how components are interpolated between grid times.
type InterpolationMethod int

const (
	Flat InterpolationMethod = iota
	Linear
)

func (m InterpolationMethod) String() string {
	if m == Linear {
		return "linear"
	}
	return "flat"
}

// validateGrid checks that times and values line up and that times strictly increase from 0.
func validateGrid(times, values []float64) error {
	if len(times) == 0 || len(times) != len(values) {
		return fmt.Errorf("%w: %d grid times for %d components", ErrInvalidModelSpec, len(times), len(values))
	}
	prev := 0.0
	for i, t := range times {
		if t <= prev {
			return fmt.Errorf("%w: grid time %d (%g) must be greater than %g", ErrInvalidModelSpec, i, t, prev)
		}
		prev = t
	}
	return nil
}
