package engine

import (
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
)

// cashflowValue holds the quantities every cashflow engine computes at construction.
type cashflowValue struct {
	payment   float64
	paymentDF float64
	value     float64
}

// newCashflowValue discounts a signed payment. Payments before the valuation date are worth nothing.
func newCashflowValue(m model.Model, payTime, payment float64) cashflowValue {
	if payTime < 0 {
		return cashflowValue{paymentDF: 1.0}
	}
	df := m.DF(payTime)
	return cashflowValue{payment: payment, paymentDF: df, value: payment * df}
}

func (c *cashflowValue) CalculatePV(acc *float64) { *acc += c.value }

func (c *cashflowValue) Payment() float64   { return c.payment }
func (c *cashflowValue) PaymentDF() float64 { return c.paymentDF }
func (c *cashflowValue) Value() float64     { return c.value }

type bulletEngine struct {
	cashflowValue
	model   model.Model
	product *product.Bullet
}

func newBulletEngine(m model.Model, p *product.Bullet) *bulletEngine {
	return &bulletEngine{
		cashflowValue: newCashflowValue(m, p.PayTime(), p.Amount()*p.PayReceive().Sign()),
		model:         m,
		product:       p,
	}
}

type fixedCashflowEngine struct {
	cashflowValue
	model   model.Model
	product *product.RateFixed
}

func newFixedCashflowEngine(m model.Model, p *product.RateFixed) *fixedCashflowEngine {
	payment := p.Notional() * p.Coupon() * p.AccrualFactor() * p.PayReceive().Sign()
	return &fixedCashflowEngine{
		cashflowValue: newCashflowValue(m, p.PayTime(), payment),
		model:         m,
		product:       p,
	}
}

type floatCashflowEngine struct {
	cashflowValue
	model            model.Model
	product          *product.RateFloat
	forwardRate      float64
	zeroSpreadAmount float64
}

func newFloatCashflowEngine(m model.Model, p *product.RateFloat) *floatCashflowEngine {
	fwd := m.ForwardRate(p.Start(), p.End())
	scale := p.Notional() * p.AccrualFactor() * p.PayReceive().Sign()
	e := &floatCashflowEngine{
		cashflowValue: newCashflowValue(m, p.PayTime(), (fwd+p.Spread())*scale),
		model:         m,
		product:       p,
		forwardRate:   fwd,
	}
	if p.PayTime() >= 0 {
		e.zeroSpreadAmount = fwd * scale
	}
	return e
}

// ForwardRate over the accrual period.
func (e *floatCashflowEngine) ForwardRate() float64 { return e.forwardRate }

// ZeroSpreadValue is the discounted payment with the spread removed.
func (e *floatCashflowEngine) ZeroSpreadValue() float64 { return e.zeroSpreadAmount * e.paymentDF }
