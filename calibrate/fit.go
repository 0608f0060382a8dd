package calibrate

import (
	"fmt"
	"math"

	"github.com/banachtech/valuation/model"
	"gonum.org/v1/gonum/optimize"
)

// FitBlackScholes fits flat instantaneous vols on the maturity grid by minimising the mean squared error
// between model and market implied vols. Parameters are searched in log space so vols stay positive.
// Unlike the bootstrap it always returns a model, even when forward variances would go negative.
func FitBlackScholes(spot float64, maturities, vols []float64, curve *model.YieldCurve) (*model.BlackScholes, error) {
	if len(maturities) != len(vols) {
		return nil, fmt.Errorf("%w: %d maturities for %d implied vols", ErrMismatchedInputSizes, len(maturities), len(vols))
	}
	m, err := model.NewBlackScholes(spot, maturities, vols, curve, model.InstVol, model.Flat)
	if err != nil {
		return nil, err
	}

	par := make([]float64, len(vols))
	for i, v := range vols {
		par[i] = math.Log(v)
	}
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			return mse(m, par, maturities, vols)
		},
	}
	res, err := optimize.Minimize(problem, par, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fit black scholes: %w", err)
	}
	setLogVols(m, res.X)
	logger.Debug("black scholes fit", "status", res.Status.String(), "mse", res.F, "evaluations", res.FuncEvaluations)
	return m, nil
}

func setLogVols(m *model.BlackScholes, par []float64) {
	for i, p := range par {
		_ = m.SetComponent(i, math.Exp(p))
	}
}

// mse between model and market implied vols.
func mse(m *model.BlackScholes, par, maturities, vols []float64) float64 {
	setLogVols(m, par)
	loss := 0.0
	for i, t := range maturities {
		loss += math.Pow(m.Vol(t)-vols[i], 2)
	}
	return loss / float64(len(vols))
}
