package stats

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = errors.New("argument out of domain")

// DomainError reports a numeric argument outside the range a function accepts.
type DomainError struct {
	Func   string  // e.g. "Quantile"
	Arg    string  // argument name
	Value  float64 // offending value
	Reason string  // the violated constraint, e.g. "must be in (0, 1)"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", e.Func, e.Arg, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrDomain) match.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }
