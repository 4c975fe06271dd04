package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/quadra/problems"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type runOpts struct {
	config string
}

func newRunCommand(root *rootOpts) *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every problem in a YAML problem-set file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.WithField("config", opts.config).Info("loading problem set")
			set, err := problems.LoadSetFile(opts.config)
			if err != nil {
				return err
			}
			logrus.Infof("loaded %d problems", len(set))

			return evaluateSet(cmd.OutOrStdout(), set, root.precision)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "path to the problem-set YAML file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// evaluateSet evaluates every problem, printing the ones that succeed.
// Failures are logged and counted; any failure makes the command fail
// after the table is written.
func evaluateSet(w io.Writer, set []problems.Problem, precision int) error {
	results := make([]problems.Result, 0, len(set))
	failed := 0
	for _, p := range set {
		res, err := problems.Evaluate(p)
		if err != nil {
			failed++
			logrus.WithError(err).WithField("problem", p.Name).Error("evaluation failed")

			continue
		}
		logrus.WithFields(logrus.Fields{
			"problem":  p.Name,
			"absError": res.AbsError,
		}).Debug("evaluated")
		results = append(results, res)
	}
	if err := printResults(w, results, precision); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(set))
	}

	return nil
}
