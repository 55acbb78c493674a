package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// config holds option defaults loaded from a YAML file. Flags given on the
// command line take precedence.
type config struct {
	Format     string `yaml:"fmt,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Lines      bool   `yaml:"lines,omitempty"`
	Echo       bool   `yaml:"echo,omitempty"`
	SpacesOnly bool   `yaml:"spaces-only,omitempty"`
	NoColor    bool   `yaml:"no-color,omitempty"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

func loadConfig(name string) (*config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	return &cfg, nil
}

// apply copies settings into opts for each flag that was not set explicitly.
func (cfg *config) apply(flags *pflag.FlagSet, opts *options) {
	str := func(name, v string, dst *string) {
		if v != "" && !flags.Changed(name) {
			*dst = v
		}
	}
	flag := func(name string, v bool, dst *bool) {
		if v && !flags.Changed(name) {
			*dst = true
		}
	}
	str("fmt", cfg.Format, &opts.verb)
	str("output", cfg.Output, &opts.output)
	flag("lines", cfg.Lines, &opts.lines)
	flag("echo", cfg.Echo, &opts.echo)
	flag("spaces-only", cfg.SpacesOnly, &opts.spacesOnly)
	flag("no-color", cfg.NoColor, &opts.noColor)
	flag("verbose", cfg.Verbose, &opts.verbose)
}
