package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	errMissingGraph  = errors.New("subiso: pattern and target are required")
	errUnknownFormat = errors.New("subiso: unknown output format")
)

// matchConfig is the YAML shape of --config and the flag-resolved settings.
type matchConfig struct {
	Pattern        string `yaml:"pattern"`
	Target         string `yaml:"target"`
	Kind           string `yaml:"kind"`
	MaxMatches     int    `yaml:"max_matches"`
	Workers        int    `yaml:"workers"`
	Representation string `yaml:"representation"`
	Semantic       bool   `yaml:"semantic"`
	Format         string `yaml:"format"`
}

func defaultMatchConfig() matchConfig {
	return matchConfig{
		Kind:           subiso.Induced.String(),
		Representation: subiso.AutoRepresentation.String(),
		Format:         formatText,
	}
}

// loadMatchConfig reads path over the defaults; an empty path keeps them.
func loadMatchConfig(path string) (matchConfig, error) {
	cfg := defaultMatchConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// overrideFrom copies every flag the user set explicitly onto cfg.
func (cfg *matchConfig) overrideFrom(flags *pflag.FlagSet, set matchConfig) {
	if flags.Changed("pattern") {
		cfg.Pattern = set.Pattern
	}
	if flags.Changed("target") {
		cfg.Target = set.Target
	}
	if flags.Changed("kind") {
		cfg.Kind = set.Kind
	}
	if flags.Changed("max-matches") {
		cfg.MaxMatches = set.MaxMatches
	}
	if flags.Changed("workers") {
		cfg.Workers = set.Workers
	}
	if flags.Changed("representation") {
		cfg.Representation = set.Representation
	}
	if flags.Changed("semantic") {
		cfg.Semantic = set.Semantic
	}
	if flags.Changed("format") {
		cfg.Format = set.Format
	}
}

// options converts cfg into validated search options.
func (cfg matchConfig) options() (subiso.Options, error) {
	o := subiso.DefaultOptions()
	if cfg.Pattern == "" || cfg.Target == "" {
		return o, errMissingGraph
	}
	if cfg.Format != formatText && cfg.Format != formatYAML {
		return o, fmt.Errorf("%q: %w", cfg.Format, errUnknownFormat)
	}
	kind, err := subiso.ParseKind(cfg.Kind)
	if err != nil {
		return o, err
	}
	rep, err := subiso.ParseRepresentation(cfg.Representation)
	if err != nil {
		return o, err
	}
	o.Kind = kind
	o.Representation = rep
	o.MaxMatchCount = cfg.MaxMatches
	o.Workers = cfg.Workers
	o.SemanticMatch = cfg.Semantic

	return o, o.Validate()
}
