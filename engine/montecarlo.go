package engine

import (
	"fmt"
	"math"

	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/random"
	"gonum.org/v1/gonum/stat"
)

// path PVs are summarised, and progress reported, in batches of this many paths
const batchSize = 1000

// MonteCarlo values a path dependent product under Black-Scholes dynamics by simulating log spot
// on the product time line. The simulation runs once, on the first call to Run or CalculatePV.
type MonteCarlo struct {
	model   *model.BlackScholes
	product product.PathDependent
	stream  random.Stream
	paths   int

	logSpot  float64
	drifts   []float64
	stdDevs  []float64
	dfs      []float64
	progress func(done int)

	// scratch reused on every path
	variates []float64
	spots    []float64
	flows    []product.Cashflow
	batch    []float64

	// running moments over the finished batches
	count int
	m2    float64

	done   bool
	mean   float64
	stdErr float64
}

func newMonteCarlo(m *model.BlackScholes, p product.PathDependent, stream random.Stream, paths int, progress func(int)) (*MonteCarlo, error) {
	if paths <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPathCount, paths)
	}
	times := p.TimeLine()
	payTimes := p.CashflowPayTimes()
	steps := len(times)

	e := &MonteCarlo{
		model:    m,
		product:  p,
		stream:   stream.Clone(),
		paths:    paths,
		logSpot:  math.Log(m.Spot()),
		drifts:   make([]float64, steps),
		stdDevs:  make([]float64, steps),
		dfs:      make([]float64, len(payTimes)),
		progress: progress,
		variates: make([]float64, steps),
		spots:    make([]float64, steps),
		flows:    make([]product.Cashflow, len(payTimes)),
		batch:    make([]float64, 0, min(paths, batchSize)),
	}
	e.stream.ResetDimensionality(steps)

	prev := 0.0
	for i, t := range times {
		e.drifts[i] = m.LogDrift(prev, t)
		e.stdDevs[i] = math.Sqrt(m.LogVariance(prev, t))
		prev = t
	}
	for i, t := range payTimes {
		if t >= 0 {
			e.dfs[i] = m.DF(t)
		}
	}
	return e, nil
}

// Run simulates all paths. Later calls do nothing. Memory does not grow with the number of paths.
func (e *MonteCarlo) Run() {
	if e.done {
		return
	}
	for path := 0; path < e.paths; path++ {
		e.stream.NextGaussianVector(e.variates)
		x := e.logSpot
		for i := range e.spots {
			x += e.drifts[i] + e.stdDevs[i]*e.variates[i]
			e.spots[i] = math.Exp(x)
		}
		n := e.product.Payoffs(e.spots, e.flows)
		pv := 0.0
		for _, cf := range e.flows[:n] {
			pv += cf.Amount * e.dfs[cf.Index]
		}
		e.batch = append(e.batch, pv)

		if len(e.batch) == batchSize || path+1 == e.paths {
			e.flush()
			if e.progress != nil {
				e.progress(path + 1)
			}
		}
	}

	if e.count > 1 {
		e.stdErr = math.Sqrt(e.m2/float64(e.count-1)) / math.Sqrt(float64(e.count))
	}
	e.done = true
	logger.Debug("monte carlo finished",
		"product", e.product.Kind().String(),
		"paths", e.paths,
		"pv", e.mean,
		"stdErr", e.stdErr)
}

// flush merges the batch moments into the running mean and sum of squared deviations.
func (e *MonteCarlo) flush() {
	nb := len(e.batch)
	if nb == 0 {
		return
	}
	mean, m2 := e.batch[0], 0.0
	if nb > 1 {
		var variance float64
		mean, variance = stat.MeanVariance(e.batch, nil)
		m2 = variance * float64(nb-1)
	}

	total := e.count + nb
	delta := mean - e.mean
	e.mean += delta * float64(nb) / float64(total)
	e.m2 += m2 + delta*delta*float64(e.count)*float64(nb)/float64(total)
	e.count = total
	e.batch = e.batch[:0]
}

func (e *MonteCarlo) CalculatePV(acc *float64) {
	e.Run()
	*acc += e.mean
}

// StdErr is the standard error of the PV estimate.
func (e *MonteCarlo) StdErr() float64 {
	e.Run()
	return e.stdErr
}

func (e *MonteCarlo) Paths() int { return e.paths }
