package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const redactedValue = "[REDACTED]"

type Config struct {
	Level      string   `yaml:"level" json:"level" default:"info"`
	LogType    string   `yaml:"type" json:"type" default:"text"`
	AddSource  bool     `yaml:"add_source" json:"add_source"`
	SourcePath string   `yaml:"source_path" json:"source_path"`
	Redact     []string `yaml:"redact" json:"redact"`

	// Output defaults to os.Stderr so that command output on stdout stays clean.
	Output io.Writer `yaml:"-" json:"-"`
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	output := conf.Output
	if output == nil {
		output = os.Stderr
	}

	return slog.New(getHandler(conf.LogType, output, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, output io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(output, opts)

	case "discard", "none":
		return slog.NewTextHandler(io.Discard, opts)

	default:
		return slog.NewTextHandler(output, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if slices.Contains(conf.Redact, attr.Key) {
			return slog.String(attr.Key, redactedValue)
		}

		if attr.Key == slog.SourceKey {
			if source, ok := attr.Value.Any().(*slog.Source); ok && source != nil {
				return slog.String(slog.SourceKey, trimSource(source, conf.SourcePath))
			}
		}

		return attr
	}
}

func trimSource(source *slog.Source, sourcePath string) string {
	file := source.File

	if len(sourcePath) > 0 {
		if strings.HasPrefix(file, sourcePath) {
			file = strings.TrimPrefix(file, sourcePath)
		} else if index := strings.Index(file, sourcePath); index > 0 {
			file = file[index+len(sourcePath):]
		}
	}

	return fmt.Sprintf("%s:%d", file, source.Line)
}
