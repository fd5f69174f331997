package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"wilsonci/internal/domain"
)

// ErrFormat is matched by every *FormatError.
var ErrFormat = errors.New("malformed item")

// FormatError reports an item that is not a valid "Label=k/n".
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s in %q (expected Label=k/n, e.g. \"Smartphone apps=28/42\")", e.Reason, e.Input)
}

// Is lets errors.Is(err, ErrFormat) match.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

var fraction = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)

// Observation parses a single "Label=k/n" item.
func Observation(s string) (domain.Observation, error) {
	s = strings.TrimSpace(s)
	label, frac, ok := strings.Cut(s, "=")
	if !ok {
		return domain.Observation{}, &FormatError{Input: s, Reason: "missing '='"}
	}
	label = strings.TrimSpace(label)
	frac = strings.TrimSpace(frac)

	m := fraction.FindStringSubmatch(frac)
	if m == nil {
		return domain.Observation{}, &FormatError{Input: s, Reason: fmt.Sprintf("bad fraction %q", frac)}
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Observation{}, &FormatError{Input: s, Reason: "k out of range"}
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.Observation{}, &FormatError{Input: s, Reason: "n out of range"}
	}
	if n <= 0 {
		return domain.Observation{}, &FormatError{Input: s, Reason: "n must be > 0"}
	}
	if k > n {
		return domain.Observation{}, &FormatError{Input: s, Reason: "k must be in [0, n]"}
	}

	if label == "" {
		label = fmt.Sprintf("%d/%d", k, n)
	}
	return domain.Observation{Label: label, Successes: k, Trials: n}, nil
}

// Observations parses every item, stopping at the first error.
func Observations(items []string) ([]domain.Observation, error) {
	out := make([]domain.Observation, 0, len(items))
	for _, s := range items {
		o, err := Observation(s)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Lines reads one item per line from r. Blank lines and lines starting
// with '#' are skipped.
func Lines(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}
