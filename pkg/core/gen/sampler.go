package gen

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler wraps a single seeded random source. Every draw the generator makes
// goes through one Sampler, so a fixed seed reproduces a run exactly.
type Sampler struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewSampler creates a sampler seeded deterministically from seed.
func NewSampler(seed uint64) *Sampler {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Sampler{src: src, rng: rand.New(src)}
}

// WeightedIndex draws an index with probability proportional to weights.
// Weights are normalized internally; they must be non-negative with a
// positive sum, which Config.Validate guarantees for every table.
func (s *Sampler) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := s.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

// Uniform draws from [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntN draws a uniform integer from [0, n).
func (s *Sampler) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntRange draws a uniform integer from [lo, hi).
func (s *Sampler) IntRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo)
}

// Bool returns true with probability p.
func (s *Sampler) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// Normal draws from N(mu, sigma).
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Gamma draws from Gamma(shape, scale).
func (s *Sampler) Gamma(shape, scale float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}.Rand()
}

// Beta draws from Beta(a, b).
func (s *Sampler) Beta(a, b float64) float64 {
	return distuv.Beta{Alpha: a, Beta: b, Src: s.src}.Rand()
}

// Poisson draws a count from Poisson(lambda).
func (s *Sampler) Poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}

// Exponential draws from Exp with the given scale (mean).
func (s *Sampler) Exponential(scale float64) float64 {
	return distuv.Exponential{Rate: 1 / scale, Src: s.src}.Rand()
}

// LogNormal draws from LogNormal(mu, sigma).
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Dirichlet draws a flat-Dirichlet weight vector of length k. Components are
// positive and sum to 1 exactly up to float rounding, so a giving amount
// split with it reassembles to the total.
func (s *Sampler) Dirichlet(k int) []float64 {
	alpha := make([]float64, k)
	for i := range alpha {
		alpha[i] = 1
	}
	return distmv.NewDirichlet(alpha, s.src).Rand(nil)
}

// SubsetIndices draws k distinct indices from [0, n) without replacement.
func (s *Sampler) SubsetIndices(n, k int) []int {
	return s.rng.Perm(n)[:k]
}

// Pick returns one uniformly chosen element of choices.
func (s *Sampler) Pick(choices []string) string {
	return choices[s.rng.IntN(len(choices))]
}
