package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"wilsonci/internal/domain"
)

// ErrDigits is returned for a negative precision.
var ErrDigits = errors.New("digits must be >= 0")

// Options controls table rendering.
type Options struct {
	Digits     int         // decimal places for p̂ and the bounds
	Unit       domain.Unit // percent (default) or proportion
	Confidence float64     // only used in the header
}

// Header returns the column titles for opts.
func Header(opts Options) []string {
	pCol := "%"
	if opts.Unit == domain.UnitProportion {
		pCol = "p_hat"
	}
	conf := strconv.FormatFloat(opts.Confidence*100, 'g', 10, 64)
	return []string{"Label", "k", "n", pCol, fmt.Sprintf("Wilson %s%% CI [low, high]", conf)}
}

// Cells formats one row according to opts.
func Cells(r domain.Row, opts Options) []string {
	o := r.Observation
	p := format(o.Proportion(), opts)
	low, high := format(r.Interval.Low, opts), format(r.Interval.High, opts)

	var ci string
	if opts.Unit == domain.UnitProportion {
		ci = fmt.Sprintf("[%s, %s]", low, high)
	} else {
		ci = fmt.Sprintf("[%s%%, %s%%]", low, high)
	}
	return []string{o.Label, strconv.Itoa(o.Successes), strconv.Itoa(o.Trials), p, ci}
}

// Render writes the header, a rule and one line per row to w.
func Render(w io.Writer, rows []domain.Row, opts Options) error {
	if opts.Digits < 0 {
		return fmt.Errorf("%w (got %d)", ErrDigits, opts.Digits)
	}

	header := Header(opts)
	body := lo.Map(rows, func(r domain.Row, _ int) []string {
		return Cells(r, opts)
	})

	widths := make([]int, len(header))
	for i := range header {
		widths[i] = lo.Max(lo.Map(append([][]string{header}, body...), func(cells []string, _ int) int {
			return utf8.RuneCountInString(cells[i])
		}))
	}
	rule := lo.Map(widths, func(n int, _ int) string { return strings.Repeat("-", n) })

	var b strings.Builder
	writeLine(&b, header, widths)
	writeLine(&b, rule, widths)
	for _, cells := range body {
		writeLine(&b, cells, widths)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for i, c := range cells {
		if i > 0 {
			line.WriteString("  ")
		}
		line.WriteString(c)
		line.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteByte('\n')
}

func format(x float64, opts Options) string {
	if opts.Unit == domain.UnitPercent {
		x *= 100
	}
	return strconv.FormatFloat(x, 'f', opts.Digits, 64)
}
