// Package config loads the optional hwlower TOML configuration file with
// github.com/BurntSushi/toml, grounded in vovakirdan-surge/internal/project's
// surge.toml handling. Every field has a workable zero value: the tool runs
// with defaults if no config file is given at all.
package config

import (
	"github.com/BurntSushi/toml"
)

// Emit controls output rendering.
type Emit struct {
	LineWidth int  `toml:"line_width"`
	Color     bool `toml:"color"`
}

// Pass controls pass behavior; see spec.md §4.3.2's legality target for
// KeepUnreferencedLTL.
type Pass struct {
	KeepUnreferencedLTL bool `toml:"keep_unreferenced_ltl"`
}

// Config is the full hwlower.toml schema (SPEC_FULL.md "Configuration").
type Config struct {
	Emit Emit `toml:"emit"`
	Pass Pass `toml:"pass"`
}

// Default returns the configuration used when no file is given or a field
// is left unset by the file present.
func Default() Config {
	return Config{
		Emit: Emit{LineWidth: 100, Color: true},
		Pass: Pass{KeepUnreferencedLTL: true},
	}
}

// Load reads and decodes path, starting from Default so an omitted section
// keeps its default rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
