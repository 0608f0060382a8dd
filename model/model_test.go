package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatYieldCurve(t *testing.T) {
	c := NewFlatYieldCurve(0.05)
	require.Equal(t, KindYieldCurve, c.Kind())
	require.Equal(t, 1.0, c.DF(0.0))
	require.Equal(t, 1.0, c.DF(-1.0))
	require.InDelta(t, math.Exp(-0.05*2.5), c.DF(2.5), 1e-14)
	require.InDelta(t, (math.Exp(0.05*0.5)-1.0)/0.5, c.ForwardRate(1.0, 1.5), 1e-12)
	require.InDelta(t, 0.05, c.ForwardRate(1.0, 1.0), 1e-6)
}

func TestYieldCurveDiscountMonotone(t *testing.T) {
	type testCases struct {
		name         string
		interpolatee YieldInterpolatee
		method       InterpolationMethod
	}

	times := []float64{0.5, 1.0, 2.0, 5.0}
	values := []float64{0.01, 0.02, 0.035, 0.04}
	for _, test := range []testCases{
		{name: "FORWARD_FLAT", interpolatee: InstForwardRate, method: Flat},
		{name: "FORWARD_LINEAR", interpolatee: InstForwardRate, method: Linear},
		{name: "ZERO_FLAT", interpolatee: ZeroRate, method: Flat},
		{name: "ZERO_LINEAR", interpolatee: ZeroRate, method: Linear},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := NewYieldCurve(times, values, test.interpolatee, test.method)
			require.NoError(t, err)
			prev := c.DF(0.0)
			require.Equal(t, 1.0, prev)
			for x := 0.1; x < 8.0; x += 0.1 {
				df := c.DF(x)
				require.Less(t, df, prev)
				prev = df
			}
		})
	}
}

func TestYieldCurveSegments(t *testing.T) {
	c, err := NewYieldCurve([]float64{1.0, 2.0}, []float64{0.02, 0.04}, InstForwardRate, Flat)
	require.NoError(t, err)
	require.InDelta(t, -0.02*0.5, c.LnDF(0.5), 1e-15)
	require.InDelta(t, -0.02, c.LnDF(1.0), 1e-15)
	require.InDelta(t, -(0.02 + 0.04*0.5), c.LnDF(1.5), 1e-15)
	// last component extends beyond the grid
	require.InDelta(t, -(0.02 + 0.04*2.0), c.LnDF(3.0), 1e-15)

	z, err := NewYieldCurve([]float64{1.0, 2.0}, []float64{0.02, 0.04}, ZeroRate, Flat)
	require.NoError(t, err)
	require.InDelta(t, -0.02, z.LnDF(1.0), 1e-15)
	require.InDelta(t, -0.04*1.5, z.LnDF(1.5), 1e-15)

	l, err := NewYieldCurve([]float64{1.0}, []float64{0.04}, InstForwardRate, Linear)
	require.NoError(t, err)
	// f(t) = 0.04 everywhere since f(0) = c0
	require.InDelta(t, -0.04*3.0, l.LnDF(3.0), 1e-15)

	l, err = NewYieldCurve([]float64{1.0, 2.0}, []float64{0.02, 0.04}, InstForwardRate, Linear)
	require.NoError(t, err)
	require.InDelta(t, -(0.02 + 0.5*(0.02+0.04)), l.LnDF(2.0), 1e-15)
}

func TestNewYieldCurveValidation(t *testing.T) {
	type testCases struct {
		name   string
		times  []float64
		values []float64
	}

	for _, test := range []testCases{
		{name: "EMPTY", times: nil, values: nil},
		{name: "MISMATCHED", times: []float64{1.0, 2.0}, values: []float64{0.01}},
		{name: "NOT_INCREASING", times: []float64{1.0, 1.0}, values: []float64{0.01, 0.02}},
		{name: "ZERO_TIME", times: []float64{0.0, 1.0}, values: []float64{0.01, 0.02}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewYieldCurve(test.times, test.values, InstForwardRate, Flat)
			require.ErrorIs(t, err, ErrInvalidModelSpec)
			_, err = NewBlackScholes(100.0, test.times, test.values, nil, InstVol, Flat)
			require.ErrorIs(t, err, ErrInvalidModelSpec)
		})
	}

	_, err := NewBlackScholes(0.0, []float64{1.0}, []float64{0.2}, nil, InstVol, Flat)
	require.ErrorIs(t, err, ErrInvalidModelSpec)
}

func TestYieldCurveClone(t *testing.T) {
	c, err := NewYieldCurve([]float64{1.0, 2.0}, []float64{0.02, 0.04}, InstForwardRate, Flat)
	require.NoError(t, err)
	d := c.Clone().(*YieldCurve)
	require.NoError(t, d.SetComponent(1, 0.10))
	require.Equal(t, 0.04, c.Component(1))
	require.Equal(t, 0.10, d.Component(1))
	require.Error(t, d.SetComponent(2, 0.0))
}

func TestBlackScholesLogVariance(t *testing.T) {
	m, err := NewBlackScholes(100.0, []float64{1.0, 2.0}, []float64{0.2, 0.3}, nil, InstVol, Flat)
	require.NoError(t, err)
	require.Equal(t, KindBlackScholes, m.Kind())

	require.InDelta(t, 0.04*0.5, m.LogVariance(0.0, 0.5), 1e-15)
	require.InDelta(t, 0.04+0.09*0.5, m.LogVariance(0.0, 1.5), 1e-15)
	require.InDelta(t, 0.04*0.5+0.09*0.5, m.LogVariance(0.5, 1.5), 1e-15)
	require.InDelta(t, 0.09*2.0, m.LogVariance(2.0, 4.0), 1e-15)
	require.Equal(t, 0.0, m.LogVariance(1.5, 0.5))
	require.InDelta(t, math.Sqrt((0.04+0.09)/2.0), m.Vol(2.0), 1e-15)
	require.InDelta(t, 0.2, m.Vol(0.0), 1e-15)

	sq, err := NewBlackScholes(100.0, []float64{1.0, 2.0}, []float64{0.04, 0.09}, nil, InstVolSquared, Flat)
	require.NoError(t, err)
	require.InDelta(t, m.LogVariance(0.3, 1.7), sq.LogVariance(0.3, 1.7), 1e-15)

	w, err := NewBlackScholes(100.0, []float64{1.0, 2.0}, []float64{0.04, 0.13}, nil, Variance, Flat)
	require.NoError(t, err)
	require.InDelta(t, m.LogVariance(0.3, 1.7), w.LogVariance(0.3, 1.7), 1e-15)
	require.InDelta(t, 0.13, w.LogVariance(0.0, 2.0), 1e-15)
}

func TestBlackScholesForward(t *testing.T) {
	m := NewFlatBlackScholes(100.0, 0.2, 0.03)
	require.InDelta(t, 100.0*math.Exp(0.03*2.0), m.ForwardPrice(2.0), 1e-10)
	require.InDelta(t, 0.03*1.0-0.5*0.04*1.0, m.LogDrift(1.0, 2.0), 1e-14)
	require.InDelta(t, math.Exp(-0.03), m.DF(1.0), 1e-15)

	d := DefaultBlackScholes()
	require.Equal(t, 100.0, d.Spot())
	require.InDelta(t, 0.3, d.Vol(1.0), 1e-15)
	require.InDelta(t, math.Exp(-DefaultRate), d.DF(1.0), 1e-15)
}

func TestBlackScholesOwnsCurve(t *testing.T) {
	c := NewFlatYieldCurve(0.02)
	m, err := NewBlackScholes(100.0, []float64{1.0}, []float64{0.2}, c, InstVol, Flat)
	require.NoError(t, err)

	require.NoError(t, c.SetComponent(0, 0.10))
	require.InDelta(t, math.Exp(-0.02), m.DF(1.0), 1e-15)

	got := m.YieldCurve()
	require.NoError(t, got.SetComponent(0, 0.10))
	require.InDelta(t, math.Exp(-0.02), m.DF(1.0), 1e-15)

	clone := m.Clone().(*BlackScholes)
	require.NoError(t, clone.SetComponent(0, 0.5))
	clone.SetYieldCurve(NewFlatYieldCurve(0.07))
	require.Equal(t, 0.2, m.Component(0))
	require.InDelta(t, math.Exp(-0.02), m.DF(1.0), 1e-15)
	require.InDelta(t, math.Exp(-0.07), clone.DF(1.0), 1e-15)
}
