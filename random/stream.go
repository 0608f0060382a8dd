// Package random provides reproducible uniform and Gaussian variate streams for
// Monte Carlo pricing.
package random

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Stream interface to be satisfied by random number generators used in path simulation.
type Stream interface {
	// Number of variates per vector draw
	Dimensionality() int
	// Fill v with the next Dimensionality() uniforms in (0,1)
	NextUniformVector(v []float64)
	// Fill v with the next Dimensionality() standard normal variates
	NextGaussianVector(v []float64)
	// Advance the stream by n vector draws without emitting them
	Skip(n int)
	SetSeed(seed uint64)
	// Restart from the initial seed
	Reset()
	ResetDimensionality(d int)
	// Independent deep copy
	Clone() Stream
}

// gaussianFromUniform maps uniforms to standard normals in place using the inverse normal CDF.
func gaussianFromUniform(v []float64) {
	for i, u := range v {
		v[i] = distuv.UnitNormal.Quantile(u)
	}
}
