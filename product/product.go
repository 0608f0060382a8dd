// Package product defines the financial instruments that can be valued: cashflows,
// legs and swaps, European options and Asian options.
//
// Products are immutable after construction. Composite products hold their
// sub-products by shared reference.
package product

import (
	"errors"
	"fmt"
)

// ErrInvalidProductSpec is returned when a product is constructed with inconsistent terms.
var ErrInvalidProductSpec = errors.New("invalid product specification")

// Kind identifies the concrete product for engine dispatch.
type Kind int

const (
	KindCashflowBullet Kind = iota
	KindCashflowRateFixed
	KindCashflowRateFloat
	KindLeg
	KindSwap
	KindEuropeanCall
	KindEuropeanPut
	KindEuropeanStraddle
	KindAsianOption
)

var kindNames = map[Kind]string{
	KindCashflowBullet:    "Cashflow Bullet",
	KindCashflowRateFixed: "Cashflow Rate Fixed",
	KindCashflowRateFloat: "Cashflow Rate Float",
	KindLeg:               "Vanilla Leg",
	KindSwap:              "Vanilla Swap",
	KindEuropeanCall:      "European Call",
	KindEuropeanPut:       "European Put",
	KindEuropeanStraddle:  "European Straddle",
	KindAsianOption:       "Asian Option",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Product interface to be satisfied by every instrument.
type Product interface {
	Kind() Kind
	FirstTime() float64
	LastTime() float64
}

// Cashflow is a signed amount paid at CashflowPayTimes()[Index].
type Cashflow struct {
	Index  int
	Amount float64
}

// PathDependent is satisfied by products that can be valued along a simulated spot path.
type PathDependent interface {
	Product
	// Observation times the spot path must be simulated on
	TimeLine() []float64
	CashflowPayTimes() []float64
	// Write the cashflows implied by a spot path aligned with TimeLine into flows and return their count.
	// flows must hold at least len(CashflowPayTimes()) entries.
	Payoffs(spots []float64, flows []Cashflow) int
}

// Linear is satisfied by composite products valued as a weighted sum of sub-products.
type Linear interface {
	Product
	Underlyings() []Product
	Weights() []float64
}

// MustPathDependent returns p as a PathDependent and panics when p cannot be simulated.
func MustPathDependent(p Product) PathDependent {
	pd, ok := p.(PathDependent)
	if !ok {
		panic(fmt.Sprintf("product: %v has no time line or payoff", p.Kind()))
	}
	return pd
}

type PayReceive int

const (
	Pay     PayReceive = -1
	Receive PayReceive = 1
)

func (p PayReceive) Sign() float64 { return float64(p) }

// Opposite returns the other side of a cashflow.
func (p PayReceive) Opposite() PayReceive { return -p }

func (p PayReceive) String() string {
	if p == Pay {
		return "pay"
	}
	return "receive"
}

type BuySell int

const (
	Buy  BuySell = 1
	Sell BuySell = -1
)

func (b BuySell) Sign() float64 { return float64(b) }

func (b BuySell) String() string {
	if b == Sell {
		return "sell"
	}
	return "buy"
}

type CallPut int

const (
	Call CallPut = iota
	Put
)

func (c CallPut) String() string {
	if c == Put {
		return "put"
	}
	return "call"
}

// Intrinsic is the option payoff for one unit of notional.
func (c CallPut) Intrinsic(spot, strike float64) float64 {
	if c == Put {
		return max(strike-spot, 0.0)
	}
	return max(spot-strike, 0.0)
}

type AverageType int

const (
	Arithmetic AverageType = iota
	Geometric
)

func (a AverageType) String() string {
	if a == Geometric {
		return "geometric"
	}
	return "arithmetic"
}

type FixedFloat int

const (
	Fixed FixedFloat = iota
	Float
)

func (f FixedFloat) String() string {
	if f == Float {
		return "float"
	}
	return "fixed"
}
