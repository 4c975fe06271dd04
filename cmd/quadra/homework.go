package main

import (
	"os"

	"github.com/katalvlaran/quadra/problems"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type homeworkOpts struct {
	export string
}

func newHomeworkCommand(root *rootOpts) *cobra.Command {
	opts := homeworkOpts{}

	cmd := &cobra.Command{
		Use:   "homework",
		Short: "Evaluate the built-in four-part exercise set",
		Long: `Evaluate the built-in exercise set: composite rules on e^x sin 4x,
Gauss-Legendre on x ln x, a double integral over sin x <= y <= cos x, and two
improper integrals handled by substitution.

With --export the set is written as a YAML problem-set file instead, ready
to be edited and fed back through 'quadra run'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := problems.Homework()
			if opts.export != "" {
				logrus.WithField("path", opts.export).Info("exporting problem set")
				f, err := os.Create(opts.export)
				if err != nil {
					return err
				}
				if err := problems.WriteSet(f, set); err != nil {
					f.Close()
					return err
				}

				return f.Close()
			}

			return evaluateSet(cmd.OutOrStdout(), set, root.precision)
		},
	}
	cmd.Flags().StringVar(&opts.export, "export", "", "write the set as YAML to this path instead of evaluating it")

	return cmd
}
