package api

import (
	"net/http"

	"github.com/banachtech/valuation/model"
	"github.com/gin-gonic/gin"
)

type curveRequest struct {
	Maturities    []float64 `json:"maturities" binding:"required,min=1"`
	Rates         []float64 `json:"rates" binding:"required,min=1"`
	Interpolation string    `json:"interpolation" binding:"omitempty,oneof=flat linear"`
	Interpolatee  string    `json:"interpolatee" binding:"omitempty,oneof=forward zero"`
	// Times to report discount factors at. Defaults to the maturities.
	Times []float64 `json:"times"`
}

type discountFactor struct {
	Time float64 `json:"time"`
	DF   float64 `json:"df"`
}

type curveResponse struct {
	Interpolation   string           `json:"interpolation"`
	Interpolatee    string           `json:"interpolatee"`
	Components      []float64        `json:"components"`
	DiscountFactors []discountFactor `json:"discount_factors"`
}

func (server *Server) calibrateCurve(c *gin.Context) {
	var req curveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	method, interpolatee := interpolation(req.Interpolation), curveInterpolatee(req.Interpolatee)
	curve, err := yieldCurve(req.Maturities, req.Rates, 0.0, method, interpolatee)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), errorResponse(err))
		return
	}

	times := req.Times
	if len(times) == 0 {
		times = req.Maturities
	}
	resp := curveResponse{
		Interpolation:   method.String(),
		Interpolatee:    req.Interpolatee,
		Components:      curve.Components(),
		DiscountFactors: make([]discountFactor, len(times)),
	}
	if resp.Interpolatee == "" {
		resp.Interpolatee = "forward"
	}
	for i, t := range times {
		resp.DiscountFactors[i] = discountFactor{Time: t, DF: curve.DF(t)}
	}
	c.JSON(http.StatusOK, resp)
}

func interpolation(s string) model.InterpolationMethod {
	if s == "linear" {
		return model.Linear
	}
	return model.Flat
}

func curveInterpolatee(s string) model.YieldInterpolatee {
	if s == "zero" {
		return model.ZeroRate
	}
	return model.InstForwardRate
}
