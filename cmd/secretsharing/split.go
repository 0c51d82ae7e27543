package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/vitalvas/secretsharing/shamir"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [secret]",
		Short: "Split a secret into shares",
		Long: `Split a secret into --shares shares, any --threshold of which reconstruct it.
The secret is read from the argument or, if omitted, from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd, args)
			if err != nil {
				return err
			}

			codec, err := a.config.codec()
			if err != nil {
				return err
			}

			threshold, total := a.config.Threshold, a.config.Shares

			var points []shamir.Point
			if codec == nil {
				secretInt, ok := new(big.Int).SetString(secret, 10)
				if !ok {
					return fmt.Errorf("secret must be a decimal integer unless --charset or --alphabet is set")
				}
				points, err = shamir.Split(secretInt, threshold, total)
			} else {
				points, err = shamir.SplitString(secret, codec, threshold, total)
			}
			if err != nil {
				return err
			}

			a.logger.Info("secret split", "threshold", threshold, "shares", len(points))

			return a.printer(cmd).PrintShares(threshold, points)
		},
	}

	addThresholdFlag(cmd)
	cmd.Flags().IntP("shares", "n", 0, "number of shares to create")
	addCodecFlags(cmd)

	return cmd
}
