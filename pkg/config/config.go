// Package config loads assembler-wide settings from an optional hasm.toml
// file: the load base, the image size limit, the max source line length,
// and diagnostic formatting knobs. These are legitimately configuration
// rather than per-invocation flags, since they rarely change between runs
// of the same project. The pipeline reads LoadBase and SizeLimit only;
// MaxLineLength, ShowColumn and MaxErrors are loaded and saved but have no
// effect on assembly or diagnostic output.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every assembler-wide knob. Zero value is meaningless; use
// DefaultConfig or Load.
type Config struct {
	LoadBase      int  `toml:"load_base"`
	SizeLimit     int  `toml:"size_limit"`
	MaxLineLength int  `toml:"max_line_length"`
	ShowColumn    bool `toml:"show_column"`
	MaxErrors     int  `toml:"max_errors"`
}

// DefaultConfig returns the settings used when no hasm.toml is present.
func DefaultConfig() Config {
	return Config{
		LoadBase:      100,
		SizeLimit:     4096,
		MaxLineLength: 80,
		ShowColumn:    true,
		MaxErrors:     0, // 0 means unbounded
	}
}

// Load reads path and decodes it as TOML, falling back to DefaultConfig
// unchanged when the file does not exist. Any other read or decode error is
// returned to the caller.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating or truncating the file.
func Save(cfg Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
