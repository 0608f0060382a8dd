package product

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// periods shorter than this are dropped when rolling a schedule
const scheduleTolerance = 1e-9

// Leg is a strip of fixed or floating rate cashflows paid at the end of each period.
type Leg struct {
	fixedFloat   FixedFloat
	start        float64
	end          float64
	rateOrSpread float64
	frequency    float64
	notional     float64
	payReceive   PayReceive

	cashflows []Product
	weights   []float64
}

var _ Linear = (*Leg)(nil)

// NewLeg builds a leg from start to end with periods of length frequency in years, rolled backward from
// end so that any short stub is the first period. rateOrSpread is the coupon of a fixed leg or the
// spread of a floating leg.
func NewLeg(fixedFloat FixedFloat, start, end, rateOrSpread, frequency, notional float64, payReceive PayReceive) (*Leg, error) {
	if end <= start {
		return nil, fmt.Errorf("%w: leg end %g must be after start %g", ErrInvalidProductSpec, end, start)
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("%w: leg frequency must be positive, got %g", ErrInvalidProductSpec, frequency)
	}

	dates := schedule(start, end, frequency)
	leg := &Leg{
		fixedFloat:   fixedFloat,
		start:        start,
		end:          end,
		rateOrSpread: rateOrSpread,
		frequency:    frequency,
		notional:     notional,
		payReceive:   payReceive,
		cashflows:    make([]Product, 0, len(dates)-1),
		weights:      make([]float64, len(dates)-1),
	}
	for i := 1; i < len(dates); i++ {
		var (
			cf  Product
			err error
		)
		if fixedFloat == Fixed {
			cf, err = NewRateFixed(dates[i-1], dates[i], dates[i], notional, rateOrSpread, payReceive)
		} else {
			cf, err = NewRateFloat(dates[i-1], dates[i], dates[i], notional, rateOrSpread, payReceive)
		}
		if err != nil {
			return nil, err
		}
		leg.cashflows = append(leg.cashflows, cf)
	}
	floats.AddConst(1.0, leg.weights)
	return leg, nil
}

// schedule returns the period boundaries from start to end inclusive.
func schedule(start, end, frequency float64) []float64 {
	n := int(math.Ceil((end-start)/frequency - scheduleTolerance))
	dates := make([]float64, 0, n+1)
	for k := 0; k < n; k++ {
		t := end - float64(k)*frequency
		if t-start <= scheduleTolerance {
			break
		}
		dates = append(dates, t)
	}
	dates = append(dates, start)
	floats.Reverse(dates)
	return dates
}

func (l *Leg) Kind() Kind             { return KindLeg }
func (l *Leg) FirstTime() float64     { return l.start }
func (l *Leg) LastTime() float64      { return l.end }
func (l *Leg) Underlyings() []Product { return append([]Product(nil), l.cashflows...) }
func (l *Leg) Weights() []float64     { return append([]float64(nil), l.weights...) }
func (l *Leg) FixedFloat() FixedFloat { return l.fixedFloat }
func (l *Leg) RateOrSpread() float64  { return l.rateOrSpread }
func (l *Leg) Frequency() float64     { return l.frequency }
func (l *Leg) Notional() float64      { return l.notional }
func (l *Leg) PayReceive() PayReceive { return l.payReceive }
func (l *Leg) NumberOfCashflows() int { return len(l.cashflows) }

// Swap exchanges two legs. The legs carry their own pay or receive side.
type Swap struct {
	legs    []Product
	weights []float64
}

var _ Linear = (*Swap)(nil)

func NewSwap(fixedLeg, floatLeg *Leg) *Swap {
	return &Swap{
		legs:    []Product{fixedLeg, floatLeg},
		weights: []float64{1.0, 1.0},
	}
}

// NewVanillaSwap builds a fixed against float swap with zero spread. payReceive applies to the fixed leg:
// receiving fixed means paying float.
func NewVanillaSwap(start, maturity, fixedRate, fixedFrequency, floatFrequency, notional float64, payReceive PayReceive) (*Swap, error) {
	fixed, err := NewLeg(Fixed, start, maturity, fixedRate, fixedFrequency, notional, payReceive)
	if err != nil {
		return nil, fmt.Errorf("fixed leg: %w", err)
	}
	float, err := NewLeg(Float, start, maturity, 0.0, floatFrequency, notional, payReceive.Opposite())
	if err != nil {
		return nil, fmt.Errorf("float leg: %w", err)
	}
	return NewSwap(fixed, float), nil
}

func (s *Swap) Kind() Kind             { return KindSwap }
func (s *Swap) FirstTime() float64     { return math.Min(s.legs[0].FirstTime(), s.legs[1].FirstTime()) }
func (s *Swap) LastTime() float64      { return math.Max(s.legs[0].LastTime(), s.legs[1].LastTime()) }
func (s *Swap) Underlyings() []Product { return append([]Product(nil), s.legs...) }
func (s *Swap) Weights() []float64     { return append([]float64(nil), s.weights...) }
func (s *Swap) FixedLeg() *Leg         { return s.legs[0].(*Leg) }
func (s *Swap) FloatLeg() *Leg         { return s.legs[1].(*Leg) }
