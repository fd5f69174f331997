package stats

import (
	"math"

	"wilsonci/internal/domain"
)

// CriticalValue returns the two-sided standard normal critical value for the
// given confidence level, i.e. Quantile(1 - (1-confidence)/2).
func CriticalValue(confidence float64) (float64, error) {
	if !(confidence > 0 && confidence < 1) {
		return 0, &DomainError{Func: "CriticalValue", Arg: "confidence", Value: confidence, Reason: "must be in (0, 1)"}
	}
	alpha := 1 - confidence
	return Quantile(1 - alpha/2)
}

// WilsonInterval returns the Wilson score interval for successes out of
// trials at the given confidence level. The bounds are clamped to [0, 1];
// Low is exactly 0 when successes is 0 and High exactly 1 when successes
// equals trials.
func WilsonInterval(successes, trials int, confidence float64) (domain.Interval, error) {
	if trials <= 0 {
		return domain.Interval{}, &DomainError{Func: "WilsonInterval", Arg: "trials", Value: float64(trials), Reason: "must be > 0"}
	}
	if successes < 0 || successes > trials {
		return domain.Interval{}, &DomainError{Func: "WilsonInterval", Arg: "successes", Value: float64(successes), Reason: "must be in [0, trials]"}
	}
	if !(confidence > 0 && confidence < 1) {
		return domain.Interval{}, &DomainError{Func: "WilsonInterval", Arg: "confidence", Value: confidence, Reason: "must be in (0, 1)"}
	}

	z, err := CriticalValue(confidence)
	if err != nil {
		return domain.Interval{}, err
	}

	n := float64(trials)
	pHat := float64(successes) / n
	z2 := z * z

	denom := 1 + z2/n
	center := (pHat + z2/(2*n)) / denom
	halfWidth := z * math.Sqrt((pHat*(1-pHat)+z2/(4*n))/n) / denom

	iv := domain.Interval{
		Low:  math.Max(0, center-halfWidth),
		High: math.Min(1, center+halfWidth),
	}
	// The closed form misses the boundaries by a few ulps.
	if successes == 0 {
		iv.Low = 0
	}
	if successes == trials {
		iv.High = 1
	}
	return iv, nil
}

// Compute is WilsonInterval applied to an observation.
func Compute(o domain.Observation, confidence float64) (domain.Row, error) {
	iv, err := WilsonInterval(o.Successes, o.Trials, confidence)
	if err != nil {
		return domain.Row{}, err
	}
	return domain.Row{Observation: o, Interval: iv}, nil
}
