package inspect

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config controls which files the scan skips.
//
// Loaded from a YAML file:
//
//	ignore:
//	  - "gen/*"
//	  - "legacy_boot.go"
//
// Patterns are path.Match globs, applied to both the slash-separated path
// relative to the module root and to the file's base name.
type Config struct {
	Ignore []string `yaml:"ignore"`
}

// LoadConfig reads a config file. An empty path yields an empty config.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", file, err)
	}
	for _, pat := range cfg.Ignore {
		if _, err := path.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("config %s: bad ignore pattern %q: %w", file, pat, err)
		}
	}
	return &cfg, nil
}

// Ignored reports whether the relative slash path matches an ignore pattern.
func (c *Config) Ignored(rel string) bool {
	base := path.Base(rel)
	for _, pat := range c.Ignore {
		// Patterns were validated in LoadConfig; Match cannot fail here.
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}
