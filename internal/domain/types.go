package domain

// Observation is one labelled count: Successes out of Trials.
// Parsers guarantee 0 <= Successes <= Trials and Trials > 0.
type Observation struct {
	Label     string
	Successes int
	Trials    int
}

// Proportion returns the observed success fraction p̂ = Successes/Trials.
func (o Observation) Proportion() float64 {
	return float64(o.Successes) / float64(o.Trials)
}

// Interval is a confidence interval on a proportion, 0 <= Low <= High <= 1.
type Interval struct {
	Low  float64
	High float64
}

// Width returns High - Low.
func (i Interval) Width() float64 { return i.High - i.Low }

// Contains reports whether p lies within the closed interval.
func (i Interval) Contains(p float64) bool { return i.Low <= p && p <= i.High }

// Row pairs an observation with the interval computed for it.
type Row struct {
	Observation Observation
	Interval    Interval
}

// Unit selects how proportions are rendered.
type Unit int

const (
	// UnitPercent renders values scaled by 100.
	UnitPercent Unit = iota
	// UnitProportion renders values in [0,1].
	UnitProportion
)

func (u Unit) String() string {
	switch u {
	case UnitPercent:
		return "percent"
	case UnitProportion:
		return "proportion"
	default:
		return "unknown"
	}
}
