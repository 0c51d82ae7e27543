// Package xconfig loads configuration structs from default tags, YAML/JSON
// files and environment variables, in that order of precedence (lowest first).
package xconfig

import (
	"fmt"
	"reflect"
)

type Options struct {
	files     []string
	envPrefix string
	strict    bool
}

type Option func(*Options)

// WithFiles loads the named files in order. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		for _, name := range filenames {
			if name != "" {
				o.files = append(o.files, name)
			}
		}
	}
}

// WithEnv reads PREFIX_FIELD environment variables after files are loaded.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// WithStrict rejects unknown keys in configuration files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func Load(config interface{}, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTagsRecursive(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	for _, filename := range opts.files {
		if err := loadFromFile(config, filename, opts.strict); err != nil {
			return fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configElem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validateConfigPointer(config interface{}) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	configElem := configValue.Elem()
	if configElem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must point to a struct, got %s", configElem.Kind())
	}

	return configElem, nil
}
