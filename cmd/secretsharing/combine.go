package main

import (
	"github.com/spf13/cobra"
	"github.com/vitalvas/secretsharing/shamir"
)

func newCombineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine [share...]",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct a secret from at least threshold shares.
Shares are read from the arguments or, if omitted, from stdin.
Fewer shares than the threshold produce an unrelated value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPoints(cmd, args)
			if err != nil {
				return err
			}

			codec, err := a.config.codec()
			if err != nil {
				return err
			}

			a.logger.Debug("combining shares", "shares", len(points))

			var secret string
			if codec == nil {
				secretInt, err := shamir.Reconstruct(points)
				if err != nil {
					return err
				}
				secret = secretInt.String()
			} else {
				secret, err = shamir.ReconstructString(points, codec)
				if err != nil {
					return err
				}
			}

			return a.printer(cmd).PrintSecret(secret)
		},
	}

	addCodecFlags(cmd)

	return cmd
}
