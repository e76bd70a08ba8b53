package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/eadegbola/profiler/internal/publications"
)

// EnvPrefix is the prefix for environment overrides. Nested keys are
// separated by a double underscore: PROFILER_SERVER__PORT -> server.port.
const EnvPrefix = "PROFILER_"

var validate = validator.New()

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PROFILER_*). Each layer replaces lists from
// the layer below as a whole.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	defaults, err := defaultsMap()
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(defaults, ""), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// defaultsMap returns DefaultConfig as the nested map koanf merges layers on.
func defaultsMap() (map[string]interface{}, error) {
	data, err := yamlv3.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshalling defaults: %w", err)
	}
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing defaults: %w", err)
	}
	return m, nil
}

// envKey maps PROFILER_PUBLICATIONS__YEAR_COLUMN to publications.year_column.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLayouts = map[Layout]bool{
	LayoutWide:     true,
	LayoutCentered: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Page.Layout != "" && !validLayouts[c.Page.Layout] {
		return fmt.Errorf("invalid page.layout %q: must be one of wide, centered", c.Page.Layout)
	}

	if c.Publications.Encoding != "" {
		if _, err := publications.LookupEncoding(c.Publications.Encoding); err != nil {
			return fmt.Errorf("invalid publications.encoding: %w", err)
		}
	}

	total := 0.0
	for _, s := range c.Profile.Research.Stages {
		total += s.Focus
	}
	if total > 100.0001 {
		return fmt.Errorf("research focus adds up to %.1f%%, more than 100%%", total)
	}

	return nil
}
