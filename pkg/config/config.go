// Package config loads iconforge's optional TOML configuration.
//
// Without a config file the tool uses the conventional layout: source
// at icons/icon.svg, outputs next to it, and the standard extension
// target table. A config file can override any of the three:
//
//	source = "branding/logo.svg"
//	output = "extension/icons"
//
//	[[targets]]
//	size = 16
//	filename = "icon16.png"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/icongen"
)

// Conventional locations, relative to the working directory.
const (
	DefaultSource = "icons/icon.svg"
	DefaultOutput = "icons"
)

// Config holds the generation inputs: source SVG path, output
// directory, and the ordered target table.
type Config struct {
	Source  string           `toml:"source"`
	Output  string           `toml:"output"`
	Targets []icongen.Target `toml:"targets"`
}

// Default returns the built-in configuration matching the conventional
// extension layout.
func Default() Config {
	return Config{
		Source:  DefaultSource,
		Output:  DefaultOutput,
		Targets: icongen.DefaultTargets(),
	}
}

// Load reads and validates a TOML config file. Fields left unset in the
// file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Config{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	def := Default()
	if cfg.Source == "" {
		cfg.Source = def.Source
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = def.Targets
	}

	for _, tgt := range cfg.Targets {
		if err := tgt.Validate(); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid target in %s", path)
		}
	}
	return cfg, nil
}

// LoadOrDefault returns Load(path) when path is set and the built-in
// defaults otherwise.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
