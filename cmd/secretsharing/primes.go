package main

import (
	"github.com/spf13/cobra"
	"github.com/vitalvas/secretsharing/shamir"
)

func newPrimesCmd(a *app) *cobra.Command {
	var withValues bool

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List the prime fields available for secrets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printer(cmd).PrintPrimes(shamir.Primes(), withValues)
		},
	}

	cmd.Flags().BoolVar(&withValues, "values", false, "print the prime values")

	return cmd
}
