// Package engine values products under models, either in closed form or by Monte Carlo
// simulation, and resolves which valuation engine applies to a model and product pair.
package engine

import (
	"errors"
	"io"
	"log/slog"
)

var (
	// ErrUnsupportedPricingCombination is returned in strict mode when no engine can value a model and product pair.
	ErrUnsupportedPricingCombination = errors.New("unsupported pricing combination")
	// ErrUnsupportedAverageType is returned when an arithmetic Asian is priced in closed form.
	ErrUnsupportedAverageType = errors.New("unsupported average type")
	ErrInvalidPathCount       = errors.New("number of paths must be positive")
	ErrMissingStream          = errors.New("monte carlo pricing needs a random stream")
)

// Engine interface to be satisfied by every valuation engine.
type Engine interface {
	// Add the present value of the product to acc.
	CalculatePV(acc *float64)
}

// PV returns the present value computed by e.
func PV(e Engine) float64 {
	pv := 0.0
	e.CalculatePV(&pv)
	return pv
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
