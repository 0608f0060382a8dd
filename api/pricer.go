package api

import (
	"fmt"
	"net/http"

	"github.com/banachtech/valuation/calibrate"
	"github.com/banachtech/valuation/engine"
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/random"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// monetary outputs are rounded to this many decimal places
const places = 6

// marketRequest describes the Black-Scholes market. Quotes take precedence over the flat rate and vol.
type marketRequest struct {
	Spot            float64   `json:"spot" binding:"required,gt=0"`
	Rate            float64   `json:"rate"`
	Vol             float64   `json:"vol" binding:"gte=0"`
	CurveMaturities []float64 `json:"curve_maturities"`
	CurveRates      []float64 `json:"curve_rates"`
	VolMaturities   []float64 `json:"vol_maturities"`
	Vols            []float64 `json:"vols"`
}

type optionRequest struct {
	Market       marketRequest `json:"market"`
	Type         string        `json:"type" binding:"required,oneof=call put straddle asian"`
	Strike       float64       `json:"strike" binding:"required,gt=0"`
	Expiry       float64       `json:"expiry" binding:"required,gt=0"`
	Notional     float64       `json:"notional" binding:"gte=0"`
	Side         string        `json:"side" binding:"omitempty,oneof=buy sell"`
	CallPut      string        `json:"call_put" binding:"omitempty,oneof=call put"`
	AverageStart float64       `json:"average_start" binding:"gte=0"`
	Averages     int           `json:"averages" binding:"omitempty,min=2"`
	AverageType  string        `json:"average_type" binding:"omitempty,oneof=arithmetic geometric"`
	Method       string        `json:"method" binding:"omitempty,oneof=analytic montecarlo"`
	Paths        int           `json:"paths" binding:"omitempty,min=1"`
	Seed         uint64        `json:"seed"`
}

type optionResponse struct {
	Type   string           `json:"type"`
	Method string           `json:"method"`
	PV     decimal.Decimal  `json:"pv"`
	StdErr *decimal.Decimal `json:"std_err,omitempty"`
	Paths  int              `json:"paths,omitempty"`
	Vol    float64          `json:"vol"`
}

func (server *Server) priceOption(c *gin.Context) {
	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	m, err := blackScholesModel(req.Market)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}
	p, err := optionProduct(req)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}
	method, err := engine.ParseMethod(req.Method)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	resp := optionResponse{Type: req.Type, Method: method.String(), Vol: m.Vol(req.Expiry)}
	if method == engine.MethodAnalytic {
		pv, err := engine.Price(m, p, method)
		if err != nil {
			c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
			return
		}
		resp.PV = money(pv)
		c.JSON(http.StatusOK, resp)
		return
	}

	paths := req.Paths
	if paths == 0 {
		paths = server.config.MC.Paths
	}
	if paths > server.config.MC.MaxPaths {
		err := fmt.Errorf("%w: %d paths above the limit of %d", errBadRequest, paths, server.config.MC.MaxPaths)
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	e, err := engine.NewMonteCarlo(m, p, server.stream(req.Seed), paths, true)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}
	stdErr := money(e.StdErr())
	resp.PV = money(engine.PV(e))
	resp.StdErr = &stdErr
	resp.Paths = paths
	c.JSON(http.StatusOK, resp)
}

// stream builds the configured random stream. A zero seed means the configured seed.
func (server *Server) stream(seed uint64) random.Stream {
	if seed == 0 {
		seed = server.config.MC.Seed
	}
	var s random.Stream = random.NewParkMiller(1, seed)
	if server.config.MC.Antithetic {
		s = random.NewAntithetic(s)
	}
	return s
}

func blackScholesModel(req marketRequest) (*model.BlackScholes, error) {
	curve, err := yieldCurve(req.CurveMaturities, req.CurveRates, req.Rate, model.Flat, model.InstForwardRate)
	if err != nil {
		return nil, err
	}
	if len(req.VolMaturities) > 0 || len(req.Vols) > 0 {
		return calibrate.BlackScholes(req.Spot, req.VolMaturities, req.Vols, curve, model.Flat, model.InstVol)
	}
	if req.Vol <= 0 {
		return nil, fmt.Errorf("%w: a positive vol or vol quotes are required", errBadRequest)
	}
	return model.NewBlackScholes(req.Spot, []float64{1.0}, []float64{req.Vol}, curve, model.InstVol, model.Flat)
}

// yieldCurve bootstraps from swap quotes when there are any, else returns a flat curve.
func yieldCurve(maturities, rates []float64, flat float64, method model.InterpolationMethod, interpolatee model.YieldInterpolatee) (*model.YieldCurve, error) {
	if len(maturities) == 0 && len(rates) == 0 {
		return model.NewFlatYieldCurve(flat), nil
	}
	return calibrate.YieldCurve(maturities, rates, method, interpolatee)
}

func optionProduct(req optionRequest) (product.Product, error) {
	notional := req.Notional
	if notional == 0 {
		notional = 1.0
	}
	side := product.Buy
	if req.Side == "sell" {
		side = product.Sell
	}

	switch req.Type {
	case "call":
		return product.NewCall(req.Expiry, notional, side, req.Strike), nil
	case "put":
		return product.NewPut(req.Expiry, notional, side, req.Strike), nil
	case "straddle":
		return product.NewStraddle(req.Expiry, notional, side, req.Strike), nil
	}

	callPut := product.Call
	if req.CallPut == "put" {
		callPut = product.Put
	}
	averageType := product.Arithmetic
	if req.AverageType == "geometric" {
		averageType = product.Geometric
	}
	averages := req.Averages
	if averages == 0 {
		averages = 12
	}
	return product.NewAsian(req.AverageStart, req.Expiry, averages, notional, callPut, side, req.Strike, averageType)
}

func money(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(places)
}
