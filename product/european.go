package product

// european holds the terms shared by options exercised at a single expiry.
type european struct {
	expiry   float64
	notional float64
	buySell  BuySell
	strike   float64
}

func newEuropean(expiry, notional float64, buySell BuySell, strike float64) european {
	return european{expiry: expiry, notional: notional, buySell: buySell, strike: strike}
}

func (e *european) FirstTime() float64          { return e.expiry }
func (e *european) LastTime() float64           { return e.expiry }
func (e *european) TimeLine() []float64         { return []float64{e.expiry} }
func (e *european) CashflowPayTimes() []float64 { return []float64{e.expiry} }
func (e *european) Expiry() float64             { return e.expiry }
func (e *european) Notional() float64           { return e.notional }
func (e *european) BuySell() BuySell            { return e.buySell }
func (e *european) Strike() float64             { return e.strike }

func (e *european) payoffs(cp CallPut, spots []float64, flows []Cashflow) int {
	spot := spots[len(spots)-1]
	flows[0] = Cashflow{Index: 0, Amount: cp.Intrinsic(spot, e.strike) * e.notional * e.buySell.Sign()}
	return 1
}

// EuropeanCall pays max(S-K, 0) at expiry.
type EuropeanCall struct {
	european
}

var _ PathDependent = (*EuropeanCall)(nil)

func NewCall(expiry, notional float64, buySell BuySell, strike float64) *EuropeanCall {
	return &EuropeanCall{european: newEuropean(expiry, notional, buySell, strike)}
}

func (c *EuropeanCall) Kind() Kind       { return KindEuropeanCall }
func (c *EuropeanCall) CallPut() CallPut { return Call }

// Payoff for one unit of notional, unsigned.
func (c *EuropeanCall) Payoff(spot float64) float64 { return Call.Intrinsic(spot, c.strike) }

func (c *EuropeanCall) Payoffs(spots []float64, flows []Cashflow) int {
	return c.payoffs(Call, spots, flows)
}

// EuropeanPut pays max(K-S, 0) at expiry.
type EuropeanPut struct {
	european
}

var _ PathDependent = (*EuropeanPut)(nil)

func NewPut(expiry, notional float64, buySell BuySell, strike float64) *EuropeanPut {
	return &EuropeanPut{european: newEuropean(expiry, notional, buySell, strike)}
}

func (p *EuropeanPut) Kind() Kind       { return KindEuropeanPut }
func (p *EuropeanPut) CallPut() CallPut { return Put }

func (p *EuropeanPut) Payoff(spot float64) float64 { return Put.Intrinsic(spot, p.strike) }

func (p *EuropeanPut) Payoffs(spots []float64, flows []Cashflow) int {
	return p.payoffs(Put, spots, flows)
}

// EuropeanStraddle is a call plus a put with the same terms. It is valued analytically as the sum
// of its two options and along a path by its combined payoff.
type EuropeanStraddle struct {
	call    *EuropeanCall
	put     *EuropeanPut
	weights []float64
}

var (
	_ Linear        = (*EuropeanStraddle)(nil)
	_ PathDependent = (*EuropeanStraddle)(nil)
)

func NewStraddle(expiry, notional float64, buySell BuySell, strike float64) *EuropeanStraddle {
	return &EuropeanStraddle{
		call:    NewCall(expiry, notional, buySell, strike),
		put:     NewPut(expiry, notional, buySell, strike),
		weights: []float64{1.0, 1.0},
	}
}

func (s *EuropeanStraddle) Kind() Kind                  { return KindEuropeanStraddle }
func (s *EuropeanStraddle) FirstTime() float64          { return s.call.FirstTime() }
func (s *EuropeanStraddle) LastTime() float64           { return s.call.LastTime() }
func (s *EuropeanStraddle) Underlyings() []Product      { return []Product{s.call, s.put} }
func (s *EuropeanStraddle) Weights() []float64          { return append([]float64(nil), s.weights...) }
func (s *EuropeanStraddle) TimeLine() []float64         { return s.call.TimeLine() }
func (s *EuropeanStraddle) CashflowPayTimes() []float64 { return s.call.CashflowPayTimes() }
func (s *EuropeanStraddle) Call() *EuropeanCall         { return s.call }
func (s *EuropeanStraddle) Put() *EuropeanPut           { return s.put }

func (s *EuropeanStraddle) Payoffs(spots []float64, flows []Cashflow) int {
	spot := spots[len(spots)-1]
	amount := (s.call.Payoff(spot) + s.put.Payoff(spot)) * s.call.notional * s.call.buySell.Sign()
	flows[0] = Cashflow{Index: 0, Amount: amount}
	return 1
}
