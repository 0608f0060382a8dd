package random

// Antithetic decorates another stream: every fresh vector u is followed by its mirror 1-u.
type Antithetic struct {
	inner Stream
	odd   bool
	next  []float64
}

var _ Stream = (*Antithetic)(nil)

// Constructor for Antithetic. The inner stream is cloned and reset, so the caller keeps ownership of its own copy.
func NewAntithetic(inner Stream) *Antithetic {
	a := &Antithetic{inner: inner.Clone(), odd: true}
	a.inner.Reset()
	a.next = make([]float64, a.inner.Dimensionality())
	return a
}

func (a *Antithetic) Dimensionality() int { return a.inner.Dimensionality() }

func (a *Antithetic) NextUniformVector(v []float64) {
	if a.odd {
		a.inner.NextUniformVector(v)
		for i := range a.next {
			a.next[i] = 1.0 - v[i]
		}
		a.odd = false
		return
	}
	copy(v, a.next)
	a.odd = true
}

func (a *Antithetic) NextGaussianVector(v []float64) {
	a.NextUniformVector(v)
	gaussianFromUniform(v[:a.Dimensionality()])
}

// Skip behaves as n calls to NextUniformVector.
func (a *Antithetic) Skip(n int) {
	if n <= 0 {
		return
	}
	if !a.odd {
		// the pending mirror is consumed first
		a.odd = true
		n--
	}
	a.inner.Skip(n / 2)
	if n%2 == 1 {
		tmp := make([]float64, a.Dimensionality())
		a.NextUniformVector(tmp)
	}
}

func (a *Antithetic) SetSeed(seed uint64) {
	a.inner.SetSeed(seed)
	a.odd = true
}

func (a *Antithetic) Reset() {
	a.inner.Reset()
	a.odd = true
}

func (a *Antithetic) ResetDimensionality(d int) {
	a.inner.ResetDimensionality(d)
	a.next = make([]float64, a.inner.Dimensionality())
	a.odd = true
}

func (a *Antithetic) Clone() Stream {
	c := &Antithetic{inner: a.inner.Clone(), odd: a.odd}
	c.next = append([]float64(nil), a.next...)
	return c
}
