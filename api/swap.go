package api

import (
	"net/http"

	"github.com/banachtech/valuation/engine"
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type swapRequest struct {
	CurveMaturities []float64 `json:"curve_maturities" binding:"required,min=1"`
	CurveRates      []float64 `json:"curve_rates" binding:"required,min=1"`
	Interpolation   string    `json:"interpolation" binding:"omitempty,oneof=flat linear"`
	Start           float64   `json:"start" binding:"gte=0"`
	Maturity        float64   `json:"maturity" binding:"required,gtfield=Start"`
	FixedRate       float64   `json:"fixed_rate"`
	FixedFrequency  float64   `json:"fixed_frequency" binding:"gte=0"`
	FloatFrequency  float64   `json:"float_frequency" binding:"gte=0"`
	Notional        float64   `json:"notional" binding:"required,gt=0"`
	// Side of the fixed leg
	Side string `json:"side" binding:"required,oneof=pay receive"`
}

type swapResponse struct {
	PV         decimal.Decimal `json:"pv"`
	FixedLegPV decimal.Decimal `json:"fixed_leg_pv"`
	FloatLegPV decimal.Decimal `json:"float_leg_pv"`
	ParRate    float64         `json:"par_rate"`
}

func (server *Server) priceSwap(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	curve, err := yieldCurve(req.CurveMaturities, req.CurveRates, 0.0, interpolation(req.Interpolation), model.InstForwardRate)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}

	side := product.Receive
	if req.Side == "pay" {
		side = product.Pay
	}
	fixedFrequency, floatFrequency := req.FixedFrequency, req.FloatFrequency
	if fixedFrequency == 0 {
		fixedFrequency = 0.5
	}
	if floatFrequency == 0 {
		floatFrequency = 0.5
	}

	swap, err := product.NewVanillaSwap(req.Start, req.Maturity, req.FixedRate, fixedFrequency, floatFrequency, req.Notional, side)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}
	// unit coupon leg on the fixed schedule
	annuity, err := product.NewLeg(product.Fixed, req.Start, req.Maturity, 1.0, fixedFrequency, req.Notional, side)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}

	var pvs [4]float64
	for i, p := range []product.Product{swap, swap.FixedLeg(), swap.FloatLeg(), annuity} {
		pv, err := engine.Price(curve, p, engine.MethodAnalytic)
		if err != nil {
			c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
			return
		}
		pvs[i] = pv
	}

	c.JSON(http.StatusOK, swapResponse{
		PV:         money(pvs[0]),
		FixedLegPV: money(pvs[1]),
		FloatLegPV: money(pvs[2]),
		ParRate:    -pvs[2] / pvs[3],
	})
}
