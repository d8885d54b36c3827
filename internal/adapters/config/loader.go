// Package config provides the configuration loader for todo.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the config file at path and merges it over domain.DefaultConfig.
// A missing file or an empty path yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	return apply(cfg, file)
}

func parse(data []byte) (File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	return file, nil
}

func apply(cfg domain.Config, file File) (domain.Config, error) {
	if file.DataFile != "" {
		cfg.DataFile = domain.ExpandHome(file.DataFile)
	}

	if file.DefaultFilter != "" {
		f, err := domain.ParseFilter(file.DefaultFilter)
		if err != nil {
			return cfg, zerr.With(err, "key", "default_filter")
		}
		cfg.DefaultFilter = f
	}

	if file.LogFormat != "" {
		format, err := ParseLogFormat(file.LogFormat)
		if err != nil {
			return cfg, zerr.With(err, "key", "log_format")
		}
		cfg.LogFormat = format
	}

	return cfg, nil
}

// ParseLogFormat validates a log format name.
func ParseLogFormat(s string) (string, error) {
	switch s {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return s, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "unknown log format"), "log_format", s)
	}
}
