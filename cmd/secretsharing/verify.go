package main

import (
	"github.com/spf13/cobra"
	"github.com/vitalvas/secretsharing/shamir"
)

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [share...]",
		Short: "Check that shares belong to the same secret",
		Long: `Check that all shares lie on one polynomial of degree threshold-1.
At least threshold+1 shares are needed for the check to mean anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPoints(cmd, args)
			if err != nil {
				return err
			}

			if err := shamir.VerifyPoints(points, a.config.Threshold); err != nil {
				a.logger.Warn("share verification failed", "shares", len(points), "error", err)
				return err
			}

			return a.printer(cmd).PrintVerified(len(points))
		},
	}

	addThresholdFlag(cmd)

	return cmd
}
