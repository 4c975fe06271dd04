package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quadra/problems"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the integrand catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "1D: %s\n", strings.Join(problems.Names(), ", ")); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "2D: %s\n", strings.Join(problems.Names2(), ", "))

			return err
		},
	}
}
