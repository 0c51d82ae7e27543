package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/secretsharing/shamir"
	"github.com/vitalvas/secretsharing/xlogger"
)

type app struct {
	configFile string
	config     Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "secretsharing",
		Short: "Split secrets into shares with Shamir's Secret Sharing",
		Long: `secretsharing splits a secret into n shares so that any k of them
reconstruct it and fewer than k reveal nothing about it.

Secrets are decimal integers by default. Use --charset (hex, printable) or
--alphabet to share text; the same charset must be given when combining.

Shares are printed as "<x>-<y in hex>".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (YAML or JSON)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json, discard)")
	flags.StringP("output", "o", "", "output format (text, json, yaml)")

	cmd.AddCommand(
		newSplitCmd(a),
		newCombineCmd(a),
		newVerifyCmd(a),
		newDecodeCmd(a),
		newPrimesCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	cfg.Logger.Output = cmd.ErrOrStderr()

	a.config = cfg
	a.logger = xlogger.New(cfg.Logger)

	return nil
}

func (a *app) printer(cmd *cobra.Command) *Printer {
	return NewPrinter(a.config.Output, cmd.OutOrStdout())
}

func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().String("charset", "", "predefined charset for text secrets (hex, printable)")
	cmd.Flags().String("alphabet", "", "custom alphabet for text secrets")
}

func addThresholdFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("threshold", "k", 0, "shares required to reconstruct")
}

// readSecret takes the secret from the first argument or, failing that, stdin.
func readSecret(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	secret := strings.TrimRight(string(data), "\r\n")
	if secret == "" {
		return "", fmt.Errorf("no secret given")
	}

	return secret, nil
}

// readPoints parses shares from the arguments or, failing that, whitespace separated stdin.
func readPoints(cmd *cobra.Command, args []string) ([]shamir.Point, error) {
	if len(args) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			args = append(args, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read shares: %w", err)
		}
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no shares given")
	}

	points := make([]shamir.Point, len(args))
	for i, arg := range args {
		point, err := shamir.ParsePoint(arg)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		points[i] = point
	}

	return points, nil
}
