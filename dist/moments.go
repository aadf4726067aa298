package dist

import "math"

// Moments accumulates the running mean and variance of a stream of
// draws using Welford's update.
type Moments struct {
	count uint64
	mean  float64
	m2    float64
}

func NewMoments() *Moments {
	return &Moments{}
}

func (moments *Moments) Update(value float64) {
	moments.count++
	delta := value - moments.mean
	moments.mean += delta / float64(moments.count)
	moments.m2 += delta * (value - moments.mean)
}

func (moments *Moments) Count() uint64 {
	return moments.count
}

func (moments *Moments) Mean() float64 {
	return moments.mean
}

func (moments *Moments) Variance() float64 {
	if moments.count < 2 {
		return 0
	}
	return moments.m2 / float64(moments.count)
}

func (moments *Moments) SampleVariance() float64 {
	if moments.count < 2 {
		return 0
	}
	return moments.m2 / float64(moments.count-1)
}

func (moments *Moments) SD() float64 {
	return math.Sqrt(moments.SampleVariance())
}

func (moments *Moments) CV() float64 {
	if moments.count < 2 || moments.mean == 0 {
		return 0
	}
	return moments.SD() / moments.mean
}
