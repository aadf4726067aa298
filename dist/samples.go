package dist

import (
	"math"
	"sort"
)

// Samples is a distributional value: repeated draws of a single
// quantity, e.g. a posterior or posterior-predictive distribution
// from a fitted model. Draws may come from several chains; all
// sampling dimensions are pooled for summaries.
type Samples struct {
	chains [][]float64
	pooled []float64
	sorted []float64
}

func NewSamples(draws []float64) *Samples {
	return NewChains([][]float64{draws})
}

func NewChains(chains [][]float64) *Samples {
	total := 0
	for _, chain := range chains {
		total += len(chain)
	}

	copied := make([][]float64, len(chains))
	pooled := make([]float64, 0, total)
	for i, chain := range chains {
		copied[i] = append([]float64(nil), chain...)
		pooled = append(pooled, chain...)
	}

	sorted := append([]float64(nil), pooled...)
	sort.Float64s(sorted)

	return &Samples{
		chains: copied,
		pooled: pooled,
		sorted: sorted,
	}
}

func (samples *Samples) Len() int {
	return len(samples.pooled)
}

func (samples *Samples) NumChains() int {
	return len(samples.chains)
}

func (samples *Samples) Values() []float64 {
	return append([]float64(nil), samples.pooled...)
}

func (samples *Samples) Chains() [][]float64 {
	chains := make([][]float64, len(samples.chains))
	for i, chain := range samples.chains {
		chains[i] = append([]float64(nil), chain...)
	}
	return chains
}

// Mean returns the arithmetic mean over all pooled draws.
// Returns NaN for an empty sample set.
func (samples *Samples) Mean() float64 {
	if len(samples.pooled) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, value := range samples.pooled {
		sum += value
	}
	return sum / float64(len(samples.pooled))
}

// Quantile returns the q-th quantile of the pooled draws, using
// linear interpolation between adjacent order statistics. q outside
// [0, 1] is clamped. Returns NaN for an empty sample set.
func (samples *Samples) Quantile(q float64) float64 {
	if len(samples.sorted) == 0 {
		return math.NaN()
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	pos := q * float64(len(samples.sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return samples.sorted[lo]
	}
	frac := pos - float64(lo)
	return samples.sorted[lo]*(1-frac) + samples.sorted[hi]*frac
}

// CredibleInterval returns the central interval holding the given
// probability mass, so a width of 0.94 gives the 3rd and 97th
// percentiles.
func (samples *Samples) CredibleInterval(width float64) (float64, float64) {
	tail := (1 - width) / 2
	return samples.Quantile(tail), samples.Quantile(1 - tail)
}

// Summary returns the pooled mean and sample standard deviation.
func (samples *Samples) Summary() (float64, float64) {
	moments := NewMoments()
	for _, value := range samples.pooled {
		moments.Update(value)
	}
	return moments.Mean(), moments.SD()
}
