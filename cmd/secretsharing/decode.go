package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [integer]",
		Short: "Decode a combined integer into text",
		Long: `Decode an integer printed by combine without a charset into the text it encodes.
The integer is read from the argument or, if omitted, from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := readSecret(cmd, args)
			if err != nil {
				return err
			}

			cs, err := a.config.charset()
			if err != nil {
				return err
			}
			if cs == nil {
				return fmt.Errorf("decode requires --charset or --alphabet")
			}

			secret, err := cs.DecodeString(value)
			if err != nil {
				return err
			}

			return a.printer(cmd).PrintSecret(secret)
		},
	}

	addCodecFlags(cmd)

	return cmd
}
