package engine

// Random is the sampling source for reset placement, membrane absorption and fragments
// *rand.Rand satisfies it
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// randInt returns an integer in the closed range [lo, hi]
func randInt(rng Random, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// randUniform returns a value in [lo, hi)
func randUniform(rng Random, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
