package product

import "fmt"

// Bullet pays a fixed amount at a single time.
type Bullet struct {
	payTime    float64
	amount     float64
	payReceive PayReceive
}

func NewBullet(payTime, amount float64, payReceive PayReceive) *Bullet {
	return &Bullet{payTime: payTime, amount: amount, payReceive: payReceive}
}

func (b *Bullet) Kind() Kind             { return KindCashflowBullet }
func (b *Bullet) FirstTime() float64     { return b.payTime }
func (b *Bullet) LastTime() float64      { return b.payTime }
func (b *Bullet) PayTime() float64       { return b.payTime }
func (b *Bullet) Amount() float64        { return b.amount }
func (b *Bullet) PayReceive() PayReceive { return b.payReceive }

// accrual holds the terms shared by rate cashflows.
type accrual struct {
	start      float64
	end        float64
	payTime    float64
	notional   float64
	payReceive PayReceive
}

func newAccrual(start, end, payTime, notional float64, payReceive PayReceive) (accrual, error) {
	if end <= start {
		return accrual{}, fmt.Errorf("%w: accrual end %g must be after start %g", ErrInvalidProductSpec, end, start)
	}
	return accrual{start: start, end: end, payTime: payTime, notional: notional, payReceive: payReceive}, nil
}

func (a accrual) FirstTime() float64     { return a.start }
func (a accrual) LastTime() float64      { return a.payTime }
func (a accrual) Start() float64         { return a.start }
func (a accrual) End() float64           { return a.end }
func (a accrual) PayTime() float64       { return a.payTime }
func (a accrual) Notional() float64      { return a.notional }
func (a accrual) PayReceive() PayReceive { return a.payReceive }

// AccrualFactor is the year fraction of the accrual period.
func (a accrual) AccrualFactor() float64 { return a.end - a.start }

// RateFixed pays notional * coupon * accrual factor.
type RateFixed struct {
	accrual
	coupon float64
}

func NewRateFixed(start, end, payTime, notional, coupon float64, payReceive PayReceive) (*RateFixed, error) {
	a, err := newAccrual(start, end, payTime, notional, payReceive)
	if err != nil {
		return nil, err
	}
	return &RateFixed{accrual: a, coupon: coupon}, nil
}

func (c *RateFixed) Kind() Kind      { return KindCashflowRateFixed }
func (c *RateFixed) Coupon() float64 { return c.coupon }

// RateFloat pays notional * (forward rate + spread) * accrual factor, the forward fixing over the accrual period.
type RateFloat struct {
	accrual
	spread float64
}

func NewRateFloat(start, end, payTime, notional, spread float64, payReceive PayReceive) (*RateFloat, error) {
	a, err := newAccrual(start, end, payTime, notional, payReceive)
	if err != nil {
		return nil, err
	}
	return &RateFloat{accrual: a, spread: spread}, nil
}

func (c *RateFloat) Kind() Kind      { return KindCashflowRateFloat }
func (c *RateFloat) Spread() float64 { return c.spread }
