package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultPrecision = 10

type rootOpts struct {
	logLevel  string
	precision int
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "quadra",
		Short:         "Numerical integration with classical quadrature rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			if opts.precision < 1 || opts.precision > 17 {
				return fmt.Errorf("--precision must be in [1,17], got %d", opts.precision)
			}

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&opts.precision, "precision", defaultPrecision, "digits after the decimal point in results")

	cmd.AddCommand(
		newIntegrateCommand(opts),
		newRunCommand(opts),
		newHomeworkCommand(opts),
		newListCommand(),
	)

	return cmd
}
