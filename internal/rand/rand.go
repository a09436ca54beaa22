// Package rand provides the seedable uniform random source spec §6
// asks for: uniform floats in [0,1) and bounded integers, so the
// placer's annealing schedule and perturbation selection are
// reproducible across runs given the same seed.
package rand

import "math/rand"

// Source is a seedable uniform random source. The zero value is not
// usable; construct with New.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform float in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a uniform integer in [0,n). Panics if n<=0.
func (s *Source) IntN(n int) int {
	return s.r.Intn(n)
}

// NormFloat64 returns a value from the standard normal distribution,
// used by the placer's shift perturbation (§4.5: "sampled from a
// zero-mean distribution").
func (s *Source) NormFloat64() float64 {
	return s.r.NormFloat64()
}

// Bool returns true or false with equal probability.
func (s *Source) Bool() bool {
	return s.r.Intn(2) == 0
}
