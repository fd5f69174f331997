package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"wilsonci/internal/domain"
	"wilsonci/internal/parse"
	"wilsonci/internal/report"
	"wilsonci/internal/stats"
)

// ErrNoObservations is returned when no item survives parsing.
var ErrNoObservations = errors.New("no valid observations")

type App struct {
	cfg    Config
	logger zerolog.Logger
}

// New validates cfg and returns an App.
func New(cfg Config) (*App, error) {
	if _, err := stats.CriticalValue(cfg.Confidence); err != nil {
		return nil, fmt.Errorf("confidence: %w", err)
	}
	if cfg.Digits < 0 {
		return nil, fmt.Errorf("%w (got %d)", report.ErrDigits, cfg.Digits)
	}
	if cfg.Out == nil {
		return nil, errors.New("app: no output writer")
	}
	return &App{
		cfg:    cfg,
		logger: cfg.Logger.With().Str("component", "app").Logger(),
	}, nil
}

// Run parses items, computes one interval per observation and renders the
// table to the configured writer.
func (a *App) Run(items []string) error {
	obs, err := a.observations(items)
	if err != nil {
		return err
	}

	rows := make([]domain.Row, 0, len(obs))
	for _, o := range obs {
		row, err := stats.Compute(o, a.cfg.Confidence)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Label, err)
		}
		a.logger.Debug().
			Str("label", o.Label).
			Int("k", o.Successes).
			Int("n", o.Trials).
			Float64("low", row.Interval.Low).
			Float64("high", row.Interval.High).
			Msg("computed interval")
		rows = append(rows, row)
	}

	return report.Render(a.cfg.Out, rows, report.Options{
		Digits:     a.cfg.Digits,
		Unit:       a.cfg.Unit,
		Confidence: a.cfg.Confidence,
	})
}

func (a *App) observations(items []string) ([]domain.Observation, error) {
	if !a.cfg.SkipInvalid {
		obs, err := parse.Observations(items)
		if err != nil {
			return nil, err
		}
		if len(obs) == 0 {
			return nil, ErrNoObservations
		}
		return obs, nil
	}

	obs := make([]domain.Observation, 0, len(items))
	for _, s := range items {
		o, err := parse.Observation(s)
		if err != nil {
			a.logger.Warn().Err(err).Str("item", s).Msg("skipping malformed item")
			continue
		}
		obs = append(obs, o)
	}
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	return obs, nil
}
