package engine

import (
	"math"

	"github.com/banachtech/valuation/product"
	"gonum.org/v1/gonum/stat/distuv"
)

// Black returns the undiscounted Black premium of an option on a lognormal forward.
// A non-positive total standard deviation or strike gives the intrinsic value.
func Black(forward, strike, expiry, vol float64, callPut product.CallPut) float64 {
	stdDev := vol * math.Sqrt(math.Max(expiry, 0.0))
	if stdDev <= 0 || strike <= 0 {
		return callPut.Intrinsic(forward, strike)
	}
	d1 := (math.Log(forward/strike) + 0.5*stdDev*stdDev) / stdDev
	d2 := d1 - stdDev
	n := distuv.UnitNormal
	if callPut == product.Put {
		return strike*n.CDF(-d2) - forward*n.CDF(-d1)
	}
	return forward*n.CDF(d1) - strike*n.CDF(d2)
}
