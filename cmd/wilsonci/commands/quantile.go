package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wilsonci/internal/stats"
)

// quantile <p>...: print the standard normal quantile of each probability.
func quantileCmd(root *rootOptions) *cobra.Command {
	var (
		twoSided bool
		digits   int
	)
	cmd := &cobra.Command{
		Use:   "quantile <p>...",
		Short: "Print standard normal quantiles (inverse CDF)",
		Example: `  wilsonci quantile 0.975
  wilsonci quantile --two-sided 0.90 0.95 0.99`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if digits < 0 {
				return usageError(fmt.Errorf("--digits must be >= 0 (got %d)", digits))
			}
			out := cmd.OutOrStdout()
			for _, s := range args {
				p, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid probability %q", s)
				}

				var z float64
				if twoSided {
					z, err = stats.CriticalValue(p)
				} else {
					z, err = stats.Quantile(p)
				}
				if err != nil {
					return err
				}
				root.logger.Debug().Float64("p", p).Float64("z", z).Bool("two_sided", twoSided).Msg("quantile")
				fmt.Fprintf(out, "%s  %s\n", s, strconv.FormatFloat(z, 'f', digits, 64))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&twoSided, "two-sided", false, "treat each argument as a confidence level and print the two-sided critical value")
	cmd.Flags().IntVarP(&digits, "digits", "d", 9, "decimal digits")
	return cmd
}
