package stats

import "math"

// Acklam's coefficients. They must stay exactly as written.
var (
	acklamA = [6]float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}
	acklamB = [5]float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	acklamC = [6]float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}
	acklamD = [4]float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

const (
	pLow  = 0.02425
	pHigh = 1 - pLow
)

// Quantile returns z such that Φ(z) = p for the standard normal CDF Φ.
// p must lie in the open interval (0, 1).
func Quantile(p float64) (float64, error) {
	// Written so that NaN fails too.
	if !(p > 0 && p < 1) {
		return 0, &DomainError{Func: "Quantile", Arg: "p", Value: p, Reason: "must be in (0, 1)"}
	}

	switch {
	case p < pLow:
		return tail(math.Sqrt(-2 * math.Log(p))), nil
	case p > pHigh:
		return -tail(math.Sqrt(-2 * math.Log(1-p))), nil
	}

	q := p - 0.5
	r := q * q
	a, b := &acklamA, &acklamB
	num := (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q
	den := ((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1
	return num / den, nil
}

// tail evaluates the lower-tail rational function at q = sqrt(-2 ln p).
func tail(q float64) float64 {
	c, d := &acklamC, &acklamD
	num := ((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]
	den := (((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1
	return num / den
}
