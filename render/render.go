package render

import (
	"causalkit/dist"
	"fmt"
	"math"
)

// CILabel marks a 94% credible interval in rendered summaries. It is
// matplotlib-style math markup so plot annotations show a proper
// subscript.
const CILabel = `$CI_{94\%}$`

// CredibleIntervalWidth is the probability mass covered by rendered
// intervals.
const CredibleIntervalWidth = 0.94

const defaultSigFigs = 2

// SigFigs returns the number of significant figures to use when
// rendering value: enough digits to show the full integer part, but
// never fewer than def. A zero value gets a single figure, since
// log10(0) is undefined. def <= 0 means unset and falls back to 2.
func SigFigs(value float64, def int) int {
	if def <= 0 {
		def = defaultSigFigs
	}
	if value == 0 {
		return 1
	}
	figs := int(math.Floor(math.Log10(math.Abs(value)))) + 1
	if figs < def {
		return def
	}
	return figs
}

// Num renders n with roundTo significant figures, or more when the
// integer part alone needs them.
func Num(n float64, roundTo int) string {
	return fmt.Sprintf("%.*g", SigFigs(n, roundTo), n)
}

// Scalar renders a point estimate with two decimal places.
func Scalar(x float64) string {
	return fmt.Sprintf("%.2f", x)
}

// Dist renders a distributional value as its mean followed by a 94%
// credible interval, with the interval bounds rendered to roundTo
// significant figures.
func Dist(samples *dist.Samples, roundTo int) string {
	lo, hi := samples.CredibleInterval(CredibleIntervalWidth)
	return Scalar(samples.Mean()) +
		CILabel + "[" + Num(lo, roundTo) + ", " + Num(hi, roundTo) + "]"
}

// Value renders either a scalar or a distributional value. The scalar
// branch always uses two decimal places regardless of roundTo; only
// the interval bounds of the distributional branch honor it.
func Value(x interface{}, roundTo int) string {
	switch v := x.(type) {
	case float64:
		return Scalar(v)
	case *dist.Samples:
		return Dist(v, roundTo)
	default:
		panic(fmt.Sprintf("render: unsupported value type %T", x))
	}
}
