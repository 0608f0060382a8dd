package random

import (
	"golang.org/x/exp/rand"
)

// Minimal standard generator constants with Schrage's factorisation m = a*q + r.
const (
	pmA = 16807
	pmM = 2147483647
	pmQ = 127773
	pmR = 2836
)

// Integer Park-Miller generator. Produces integers in [1, m-1].
type lcg struct {
	seed int64
}

func newLCG(seed uint64) lcg {
	g := lcg{}
	g.setSeed(seed)
	return g
}

func (g *lcg) setSeed(seed uint64) {
	s := int64(seed % pmM)
	if s == 0 {
		s = 1
	}
	g.seed = s
}

func (g *lcg) next() int64 {
	k := g.seed / pmQ
	g.seed = pmA*(g.seed-k*pmQ) - k*pmR
	if g.seed < 0 {
		g.seed += pmM
	}
	return g.seed
}

// ParkMiller is a vector uniform stream driven by the Park-Miller linear congruential generator.
// It also satisfies golang.org/x/exp/rand.Source so it can drive gonum distributions.
type ParkMiller struct {
	gen         lcg
	dim         int
	initialSeed uint64
	reciprocal  float64
}

var _ Stream = (*ParkMiller)(nil)
var _ rand.Source = (*ParkMiller)(nil)

// Constructor for ParkMiller. A dimensionality below 1 is treated as 1.
func NewParkMiller(dim int, seed uint64) *ParkMiller {
	if dim < 1 {
		dim = 1
	}
	return &ParkMiller{
		gen:         newLCG(seed),
		dim:         dim,
		initialSeed: seed,
		reciprocal:  1.0 / (float64(pmM) + 1.0),
	}
}

func (p *ParkMiller) Dimensionality() int { return p.dim }

func (p *ParkMiller) NextUniformVector(v []float64) {
	for i := 0; i < p.dim; i++ {
		v[i] = float64(p.gen.next()) * p.reciprocal
	}
}

func (p *ParkMiller) NextGaussianVector(v []float64) {
	p.NextUniformVector(v)
	gaussianFromUniform(v[:p.dim])
}

// Skip regenerates n vectors worth of integers and throws them away.
func (p *ParkMiller) Skip(n int) {
	for i := 0; i < n*p.dim; i++ {
		p.gen.next()
	}
}

func (p *ParkMiller) SetSeed(seed uint64) {
	p.initialSeed = seed
	p.gen.setSeed(seed)
}

func (p *ParkMiller) Reset() {
	p.gen.setSeed(p.initialSeed)
}

func (p *ParkMiller) ResetDimensionality(d int) {
	if d < 1 {
		d = 1
	}
	p.dim = d
}

func (p *ParkMiller) Clone() Stream {
	c := *p
	return &c
}

// Uint64 packs three draws into 64 bits.
func (p *ParkMiller) Uint64() uint64 {
	hi := uint64(p.gen.next())
	mid := uint64(p.gen.next())
	lo := uint64(p.gen.next())
	return hi<<33 | mid<<2 | lo&3
}

// Seed reseeds the underlying generator. Equivalent to SetSeed.
func (p *ParkMiller) Seed(seed uint64) {
	p.SetSeed(seed)
}
