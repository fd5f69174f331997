package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wilsonci/internal/app"
	"wilsonci/internal/config"
	"wilsonci/internal/domain"
	"wilsonci/internal/parse"
)

// ExitError carries the process exit status for err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error { return &ExitError{Code: 2, Err: err} }

type rootOptions struct {
	conf        float64
	digits      int
	asPercent   bool
	asProp      bool
	skipInvalid bool
	logLevel    string
	envFiles    []string

	cfg    config.Config
	logger zerolog.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wilsonci [flags] <Label=k/n>... | -",
		Short: "Wilson score confidence intervals for binomial proportions",
		Long: `Compute Wilson score confidence intervals for labelled proportions.

Each item has the form "Label=k/n", e.g. "Smartphone apps=28/42".
Pass "-" to read items from standard input, one per line.`,
		Example: `  wilsonci --conf 0.95 "Smartphone apps=28/42" "No tech use=10/42"
  wilsonci --digits 1 --as-prop "Satisfied=18/32" "Dissatisfied=6/32"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			boot := newLogger(cmd.ErrOrStderr(), config.DefaultLogLevel)
			cfg, err := config.Load(boot, opts.envFiles...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				if _, err := zerolog.ParseLevel(opts.logLevel); err != nil {
					return usageError(fmt.Errorf("invalid --log-level %q", opts.logLevel))
				}
				cfg.LogLevel = opts.logLevel
			}
			opts.cfg = cfg
			opts.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, opts, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error); env WILSONCI_LOG_LEVEL")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.Flags().Float64Var(&opts.conf, "conf", config.DefaultConfidence, "confidence level in (0,1); env WILSONCI_CONF")
	root.Flags().IntVar(&opts.digits, "digits", config.DefaultDigits, "decimal digits for proportions and bounds; env WILSONCI_DIGITS")
	root.Flags().BoolVar(&opts.asPercent, "as-percent", false, "print proportion and interval as percentages (default)")
	root.Flags().BoolVar(&opts.asProp, "as-prop", false, "print proportion and interval as proportions in [0,1]")
	root.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip malformed items instead of failing")

	root.AddCommand(quantileCmd(opts))
	return root
}

func runTable(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if opts.asPercent && opts.asProp {
		return usageError(errors.New("choose only one of --as-percent or --as-prop"))
	}

	cfg := opts.cfg
	if cmd.Flags().Changed("conf") {
		cfg.Confidence = opts.conf
	}
	if cmd.Flags().Changed("digits") {
		if opts.digits < 0 {
			return usageError(fmt.Errorf("--digits must be >= 0 (got %d)", opts.digits))
		}
		cfg.Digits = opts.digits
	}
	switch {
	case opts.asProp:
		cfg.Unit = domain.UnitProportion
	case opts.asPercent:
		cfg.Unit = domain.UnitPercent
	}

	items := args
	if len(args) == 1 && args[0] == "-" {
		var err error
		if items, err = parse.Lines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	opts.logger.Debug().
		Float64("conf", cfg.Confidence).
		Int("digits", cfg.Digits).
		Stringer("unit", cfg.Unit).
		Int("items", len(items)).
		Msg("starting run")

	a, err := app.New(app.Config{
		Confidence:  cfg.Confidence,
		Digits:      cfg.Digits,
		Unit:        cfg.Unit,
		SkipInvalid: opts.skipInvalid,
		Out:         cmd.OutOrStdout(),
		Logger:      opts.logger,
	})
	if err != nil {
		return err
	}
	return a.Run(items)
}

// newLogger returns a console logger on w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
