package product

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateCashflowValidation(t *testing.T) {
	_, err := NewRateFixed(1.0, 1.0, 1.0, 100.0, 0.05, Receive)
	require.ErrorIs(t, err, ErrInvalidProductSpec)
	_, err = NewRateFloat(2.0, 1.0, 2.0, 100.0, 0.0, Pay)
	require.ErrorIs(t, err, ErrInvalidProductSpec)

	c, err := NewRateFixed(0.5, 1.0, 1.0, 100.0, 0.05, Receive)
	require.NoError(t, err)
	require.Equal(t, KindCashflowRateFixed, c.Kind())
	require.Equal(t, 0.5, c.AccrualFactor())
	require.Equal(t, 0.5, c.FirstTime())
	require.Equal(t, 1.0, c.LastTime())
}

func TestLegSchedule(t *testing.T) {
	type testCases struct {
		name  string
		start float64
		end   float64
		freq  float64
		want  [][2]float64
	}

	for _, test := range []testCases{
		{
			name:  "REGULAR",
			start: 0.0,
			end:   1.5,
			freq:  0.5,
			want:  [][2]float64{{0.0, 0.5}, {0.5, 1.0}, {1.0, 1.5}},
		},
		{
			name:  "SHORT_FIRST_STUB",
			start: 0.0,
			end:   1.25,
			freq:  0.5,
			want:  [][2]float64{{0.0, 0.25}, {0.25, 0.75}, {0.75, 1.25}},
		},
		{
			name:  "SINGLE_PERIOD",
			start: 1.0,
			end:   1.5,
			freq:  1.0,
			want:  [][2]float64{{1.0, 1.5}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			leg, err := NewLeg(Fixed, test.start, test.end, 0.03, test.freq, 100.0, Receive)
			require.NoError(t, err)
			require.Equal(t, len(test.want), leg.NumberOfCashflows())
			require.Len(t, leg.Weights(), len(test.want))
			for i, p := range leg.Underlyings() {
				cf := p.(*RateFixed)
				require.InDelta(t, test.want[i][0], cf.Start(), 1e-12)
				require.InDelta(t, test.want[i][1], cf.End(), 1e-12)
				require.Equal(t, cf.End(), cf.PayTime())
				require.Equal(t, 1.0, leg.Weights()[i])
			}
		})
	}

	_, err := NewLeg(Float, 1.0, 1.0, 0.0, 0.5, 100.0, Pay)
	require.ErrorIs(t, err, ErrInvalidProductSpec)
	_, err = NewLeg(Float, 0.0, 1.0, 0.0, 0.0, 100.0, Pay)
	require.ErrorIs(t, err, ErrInvalidProductSpec)
}

func TestVanillaSwap(t *testing.T) {
	s, err := NewVanillaSwap(0.0, 2.0, 0.03, 1.0, 0.5, 10000.0, Receive)
	require.NoError(t, err)
	require.Equal(t, KindSwap, s.Kind())
	require.Equal(t, Receive, s.FixedLeg().PayReceive())
	require.Equal(t, Pay, s.FloatLeg().PayReceive())
	require.Equal(t, 2, s.FixedLeg().NumberOfCashflows())
	require.Equal(t, 4, s.FloatLeg().NumberOfCashflows())
	require.Equal(t, Float, s.FloatLeg().FixedFloat())
	require.Equal(t, 0.0, s.FirstTime())
	require.Equal(t, 2.0, s.LastTime())

	_, err = NewVanillaSwap(0.0, 2.0, 0.03, -1.0, 0.5, 10000.0, Receive)
	require.ErrorIs(t, err, ErrInvalidProductSpec)
}

func TestEuropeanPayoffs(t *testing.T) {
	type testCases struct {
		name    string
		product PathDependent
		spot    float64
		want    float64
	}

	for _, test := range []testCases{
		{name: "CALL_ITM", product: NewCall(1.0, 2.0, Buy, 100.0), spot: 110.0, want: 20.0},
		{name: "CALL_OTM", product: NewCall(1.0, 2.0, Buy, 100.0), spot: 90.0, want: 0.0},
		{name: "PUT_ITM_SOLD", product: NewPut(1.0, 2.0, Sell, 100.0), spot: 90.0, want: -20.0},
		{name: "STRADDLE", product: NewStraddle(1.0, 1.0, Buy, 100.0), spot: 93.0, want: 7.0},
	} {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, []float64{1.0}, test.product.TimeLine())
			require.Equal(t, []float64{1.0}, test.product.CashflowPayTimes())
			flows := make([]Cashflow, 1)
			n := test.product.Payoffs([]float64{test.spot}, flows)
			require.Equal(t, 1, n)
			require.Equal(t, 0, flows[0].Index)
			require.InDelta(t, test.want, flows[0].Amount, 1e-12)
		})
	}
}

func TestStraddleIsLinear(t *testing.T) {
	s := NewStraddle(2.0, 10.0, Sell, 95.0)
	var p Product = s
	lin, ok := p.(Linear)
	require.True(t, ok)
	subs := lin.Underlyings()
	require.Len(t, subs, 2)
	require.Equal(t, KindEuropeanCall, subs[0].Kind())
	require.Equal(t, KindEuropeanPut, subs[1].Kind())
	require.Same(t, s.Call(), subs[0])
	require.Equal(t, []float64{1.0, 1.0}, lin.Weights())
	require.Equal(t, Sell, s.Put().BuySell())
}

func TestAsian(t *testing.T) {
	t.Run("TIME_LINE", func(t *testing.T) {
		a, err := NewAsian(0.5, 1.0, 3, 1.0, Call, Buy, 100.0, Arithmetic)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{0.5, 0.75, 1.0}, a.TimeLine(), 1e-15)
		require.Equal(t, []float64{1.0}, a.CashflowPayTimes())
		require.Equal(t, 0.5, a.FirstTime())
		require.Equal(t, 1.0, a.LastTime())
	})

	t.Run("PAYOFFS", func(t *testing.T) {
		spots := []float64{90.0, 100.0, 125.0}
		flows := make([]Cashflow, 1)

		a, err := NewAsian(0.0, 1.0, 3, 2.0, Call, Buy, 100.0, Arithmetic)
		require.NoError(t, err)
		require.Equal(t, 1, a.Payoffs(spots, flows))
		require.InDelta(t, 2.0*5.0, flows[0].Amount, 1e-12)

		g, err := NewAsian(0.0, 1.0, 3, 1.0, Put, Sell, 110.0, Geometric)
		require.NoError(t, err)
		mean := math.Cbrt(90.0 * 100.0 * 125.0)
		require.InDelta(t, mean, g.Average(spots), 1e-12)
		g.Payoffs(spots, flows)
		require.InDelta(t, -(110.0 - mean), flows[0].Amount, 1e-12)
	})

	t.Run("INVALID", func(t *testing.T) {
		_, err := NewAsian(1.0, 1.0, 3, 1.0, Call, Buy, 100.0, Arithmetic)
		require.ErrorIs(t, err, ErrInvalidProductSpec)
		_, err = NewAsian(0.0, 1.0, 1, 1.0, Call, Buy, 100.0, Arithmetic)
		require.ErrorIs(t, err, ErrInvalidProductSpec)
		_, err = NewAsianWithDates([]float64{0.25, 0.5, 0.5}, 1.0, Call, Buy, 100.0, Geometric)
		require.ErrorIs(t, err, ErrInvalidProductSpec)
		_, err = NewAsianWithDates([]float64{0.25}, 1.0, Call, Buy, 100.0, Geometric)
		require.ErrorIs(t, err, ErrInvalidProductSpec)
	})

	t.Run("EXPLICIT_DATES", func(t *testing.T) {
		dates := []float64{0.1, 0.4, 0.9}
		a, err := NewAsianWithDates(dates, 1.0, Call, Buy, 100.0, Geometric)
		require.NoError(t, err)
		dates[0] = 0.0
		require.Equal(t, 0.1, a.AverageStart())
		require.Equal(t, 0.9, a.Expiry())
	})
}

func TestMustPathDependent(t *testing.T) {
	require.NotPanics(t, func() { MustPathDependent(NewCall(1.0, 1.0, Buy, 100.0)) })
	require.Panics(t, func() { MustPathDependent(NewBullet(1.0, 100.0, Receive)) })
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Run("ASIAN_TIME_LINE", func(t *testing.T) {
		a, err := NewAsian(0.0, 1.0, 3, 1.0, Call, Buy, 100.0, Geometric)
		require.NoError(t, err)
		a.TimeLine()[2] = 0.1
		require.Equal(t, []float64{0.0, 0.5, 1.0}, a.TimeLine())
		require.Equal(t, 1.0, a.Expiry())
		require.Equal(t, 1.0, a.LastTime())
		require.Equal(t, []float64{1.0}, a.CashflowPayTimes())
	})

	t.Run("EUROPEAN_TIME_LINE", func(t *testing.T) {
		c := NewCall(1.0, 1.0, Buy, 100.0)
		c.TimeLine()[0] = 5.0
		require.Equal(t, []float64{1.0}, c.TimeLine())
		require.Equal(t, 1.0, c.Expiry())

		s := NewStraddle(1.0, 1.0, Buy, 100.0)
		s.TimeLine()[0] = 5.0
		s.Weights()[1] = -1.0
		require.Equal(t, []float64{1.0}, s.TimeLine())
		require.Equal(t, []float64{1.0, 1.0}, s.Weights())
	})

	t.Run("LEG_AND_SWAP", func(t *testing.T) {
		swap, err := NewVanillaSwap(0.0, 2.0, 0.03, 1.0, 0.5, 100.0, Receive)
		require.NoError(t, err)
		leg := swap.FixedLeg()

		leg.Underlyings()[0] = NewBullet(1.0, 1.0, Pay)
		leg.Weights()[0] = 0.0
		require.Equal(t, KindCashflowRateFixed, leg.Underlyings()[0].Kind())
		require.Equal(t, []float64{1.0, 1.0}, leg.Weights())

		swap.Underlyings()[1] = leg
		swap.Weights()[0] = 2.0
		require.Same(t, swap.FloatLeg(), swap.Underlyings()[1])
		require.Equal(t, Float, swap.FloatLeg().FixedFloat())
		require.Equal(t, []float64{1.0, 1.0}, swap.Weights())
	})
}
