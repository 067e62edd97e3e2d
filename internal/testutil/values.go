package testutil

import "math/rand"

// DeterministicValues returns n values uniformly drawn from [-scale, scale)
// with a fixed seed.
func DeterministicValues(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}

// Ramp returns [start, start+1, ..., start+n-1].
func Ramp(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}
