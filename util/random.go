// Package util generates random market inputs for tests.
package util

import (
	"time"

	"github.com/banachtech/valuation/random"
	"golang.org/x/exp/rand"
)

var rng = rand.New(random.NewParkMiller(1, uint64(time.Now().UnixNano())))

// Seed makes the generated inputs reproducible.
func Seed(seed uint64) {
	rng.Seed(seed)
}

// RandomInt generates a random integer between min and max
func RandomInt(min, max int) int {
	return min + rng.Intn(max-min+1)
}

// RandomFloat generates a random float in [min, max)
func RandomFloat(min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// RandomFloats generates n random floats in [min, max)
func RandomFloats(n int, min, max float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = RandomFloat(min, max)
	}
	return xs
}

// RandomTimes generates n strictly increasing positive times with gaps in (0, maxStep].
func RandomTimes(n int, maxStep float64) []float64 {
	ts := make([]float64, n)
	t := 0.0
	for i := range ts {
		t += maxStep * (1 - rng.Float64())
		ts[i] = t
	}
	return ts
}
