package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"github.com/vitalvas/secretsharing/charset"
	"github.com/vitalvas/secretsharing/shamir"
	"github.com/vitalvas/secretsharing/xconfig"
	"github.com/vitalvas/secretsharing/xlogger"
)

const (
	envPrefix = "SECRETSHARING"

	// secretLogKey is always redacted from log output.
	secretLogKey = "secret"
)

// Config is loaded from defaults, the --config file and SECRETSHARING_* variables.
// Flags set on the command line win over all of them.
type Config struct {
	Logger    xlogger.Config `yaml:"logger" json:"logger"`
	Output    string         `yaml:"output" json:"output" default:"text"`
	Threshold int            `yaml:"threshold" json:"threshold" default:"3"`
	Shares    int            `yaml:"shares" json:"shares" default:"5"`
	Charset   string         `yaml:"charset" json:"charset"`
	Alphabet  string         `yaml:"alphabet" json:"alphabet"`
}

func loadConfig(filename string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			return cfg, fmt.Errorf("config file: %w", err)
		}
	}

	if err := xconfig.Load(&cfg, xconfig.WithFiles(filename), xconfig.WithEnv(envPrefix), xconfig.WithStrict()); err != nil {
		return cfg, err
	}

	overrideString(flags, "log-level", &cfg.Logger.Level)
	overrideString(flags, "log-format", &cfg.Logger.LogType)
	overrideString(flags, "output", &cfg.Output)
	overrideString(flags, "charset", &cfg.Charset)
	overrideString(flags, "alphabet", &cfg.Alphabet)
	overrideInt(flags, "threshold", &cfg.Threshold)
	overrideInt(flags, "shares", &cfg.Shares)

	if !slices.Contains(cfg.Logger.Redact, secretLogKey) {
		cfg.Logger.Redact = append(cfg.Logger.Redact, secretLogKey)
	}

	return cfg, nil
}

func overrideString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return
	}
	if value, err := flags.GetString(name); err == nil {
		*dst = value
	}
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return
	}
	if value, err := flags.GetInt(name); err == nil {
		*dst = value
	}
}

// charset returns nil when secrets are plain decimal integers.
func (c Config) charset() (*charset.Charset, error) {
	switch {
	case c.Alphabet != "":
		return charset.New(c.Alphabet)

	case c.Charset != "":
		return charset.Lookup(c.Charset)

	default:
		return nil, nil
	}
}

// codec returns nil when secrets are plain decimal integers.
func (c Config) codec() (shamir.Codec, error) {
	cs, err := c.charset()
	if err != nil || cs == nil {
		return nil, err
	}
	return cs, nil
}
