package product

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Asian is an option on the average spot observed over a set of dates, paid at the last one.
type Asian struct {
	dates       []float64
	notional    float64
	callPut     CallPut
	buySell     BuySell
	strike      float64
	averageType AverageType
}

var _ PathDependent = (*Asian)(nil)

// NewAsian averages over numberOfAverages equally spaced dates from averageStart to expiry, both included.
func NewAsian(averageStart, expiry float64, numberOfAverages int, notional float64, callPut CallPut, buySell BuySell, strike float64, averageType AverageType) (*Asian, error) {
	if averageStart >= expiry {
		return nil, fmt.Errorf("%w: average start %g must be before expiry %g", ErrInvalidProductSpec, averageStart, expiry)
	}
	if numberOfAverages < 2 {
		return nil, fmt.Errorf("%w: need at least 2 averaging dates, got %d", ErrInvalidProductSpec, numberOfAverages)
	}
	dates := make([]float64, numberOfAverages)
	floats.Span(dates, averageStart, expiry)
	return newAsian(dates, notional, callPut, buySell, strike, averageType), nil
}

// NewAsianWithDates averages over explicit observation dates, which must strictly increase.
func NewAsianWithDates(dates []float64, notional float64, callPut CallPut, buySell BuySell, strike float64, averageType AverageType) (*Asian, error) {
	if len(dates) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 averaging dates, got %d", ErrInvalidProductSpec, len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i] <= dates[i-1] {
			return nil, fmt.Errorf("%w: averaging date %d (%g) not after %g", ErrInvalidProductSpec, i, dates[i], dates[i-1])
		}
	}
	return newAsian(append([]float64(nil), dates...), notional, callPut, buySell, strike, averageType), nil
}

func newAsian(dates []float64, notional float64, callPut CallPut, buySell BuySell, strike float64, averageType AverageType) *Asian {
	return &Asian{
		dates:       dates,
		notional:    notional,
		callPut:     callPut,
		buySell:     buySell,
		strike:      strike,
		averageType: averageType,
	}
}

func (a *Asian) Kind() Kind                  { return KindAsianOption }
func (a *Asian) FirstTime() float64          { return a.dates[0] }
func (a *Asian) LastTime() float64           { return a.dates[len(a.dates)-1] }
func (a *Asian) TimeLine() []float64         { return append([]float64(nil), a.dates...) }
func (a *Asian) CashflowPayTimes() []float64 { return []float64{a.LastTime()} }
func (a *Asian) AverageStart() float64       { return a.dates[0] }
func (a *Asian) Expiry() float64             { return a.LastTime() }
func (a *Asian) NumberOfAverages() int       { return len(a.dates) }
func (a *Asian) Notional() float64           { return a.notional }
func (a *Asian) CallPut() CallPut            { return a.callPut }
func (a *Asian) BuySell() BuySell            { return a.buySell }
func (a *Asian) Strike() float64             { return a.strike }
func (a *Asian) AverageType() AverageType    { return a.averageType }

// Average of the spots observed on the averaging dates.
func (a *Asian) Average(spots []float64) float64 {
	path := spots[:len(a.dates)]
	if a.averageType == Geometric {
		logSum := 0.0
		for _, s := range path {
			logSum += math.Log(s)
		}
		return math.Exp(logSum / float64(len(path)))
	}
	return floats.Sum(path) / float64(len(path))
}

func (a *Asian) Payoffs(spots []float64, flows []Cashflow) int {
	amount := a.callPut.Intrinsic(a.Average(spots), a.strike) * a.notional * a.buySell.Sign()
	flows[0] = Cashflow{Index: 0, Amount: amount}
	return 1
}
