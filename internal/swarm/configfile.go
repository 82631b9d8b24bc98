package swarm

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type configFile struct {
	// Preset names a base preset the remaining keys are applied on top of.
	Preset string `toml:"preset"`
	Config
}

// LoadConfig reads a TOML config file. Keys in the file override base, or
// the named preset when the file sets `preset`.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(string(data), base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML text over base and validates the result.
func ParseConfig(data string, base Config) (Config, error) {
	var head struct {
		Preset string `toml:"preset"`
	}
	if _, err := toml.Decode(data, &head); err != nil {
		return base, &ConfigurationError{Field: "file", Value: "toml", Reason: "cannot parse", Err: err}
	}
	if head.Preset != "" {
		p, ok := LookupPreset(head.Preset)
		if !ok {
			return base, configErr("preset", head.Preset, "unknown preset")
		}
		base = p.Config
	}

	f := configFile{Config: base}
	md, err := toml.Decode(data, &f)
	if err != nil {
		return base, &ConfigurationError{Field: "file", Value: "toml", Reason: "cannot decode", Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, configErr(undecoded[0].String(), "?", "unknown parameter")
	}
	if err := f.Config.Validate(); err != nil {
		return base, err
	}
	return f.Config, nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
