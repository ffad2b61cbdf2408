package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultMaxEdges = 10
	DefaultRadius   = 1.0
	DefaultOutput   = OutputText
)

// ErrUnknownOutput indicates an output format other than text or yaml.
var ErrUnknownOutput = errors.New("polygons: unknown output format")

// Config holds the settings shared by all subcommands.
type Config struct {
	MaxEdges int     `yaml:"max_edges"`
	Radius   float64 `yaml:"radius"`
	Output   string  `yaml:"output"`
}

// DefaultConfig returns max_edges=10, radius=1, output=text.
func DefaultConfig() Config {
	return Config{
		MaxEdges: DefaultMaxEdges,
		Radius:   DefaultRadius,
		Output:   DefaultOutput,
	}
}

// loadConfig reads a YAML file on top of DefaultConfig. Keys absent from
// the file keep their defaults; unknown keys are an error. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks fields the library does not check itself.
func (c Config) validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownOutput, c.Output, OutputText, OutputYAML)
	}
}
