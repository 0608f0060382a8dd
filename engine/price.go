package engine

import (
	"fmt"

	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/random"
)

// Method selects how a product is valued.
type Method int

const (
	MethodAnalytic Method = iota
	MethodMonteCarlo
)

func (m Method) String() string {
	if m == MethodMonteCarlo {
		return "montecarlo"
	}
	return "analytic"
}

// ParseMethod accepts "analytic" and "montecarlo".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "analytic", "":
		return MethodAnalytic, nil
	case "montecarlo", "mc":
		return MethodMonteCarlo, nil
	}
	return MethodAnalytic, fmt.Errorf("unknown pricing method %q", s)
}

type settings struct {
	stream   random.Stream
	paths    int
	progress func(done int)
}

// Option configures Monte Carlo pricing.
type Option func(*settings)

func WithStream(s random.Stream) Option {
	return func(o *settings) { o.stream = s }
}

func WithPaths(n int) Option {
	return func(o *settings) { o.paths = n }
}

// WithProgress registers a callback receiving the number of simulated paths as the simulation advances.
func WithProgress(f func(done int)) Option {
	return func(o *settings) { o.progress = f }
}

func newSettings(opts []Option) settings {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Price values p under m. Unsupported pairs always fail with ErrUnsupportedPricingCombination.
// Monte Carlo needs WithStream and a positive WithPaths.
func Price(m model.Model, p product.Product, method Method, opts ...Option) (float64, error) {
	if method == MethodAnalytic {
		e, err := NewAnalytic(m, p, true)
		if err != nil {
			return 0, err
		}
		return PV(e), nil
	}

	s := newSettings(opts)
	if s.stream == nil {
		return 0, ErrMissingStream
	}
	if s.paths <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPathCount, s.paths)
	}
	e, err := NewMonteCarlo(m, p, s.stream, s.paths, true, opts...)
	if err != nil {
		return 0, err
	}
	return PV(e), nil
}
