package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/hellojson/internal/errors"
	"github.com/mcncl/hellojson/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yml
var defaultsYAML []byte

// Config represents the complete configuration for hellojson
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Naming   NamingConfig   `yaml:"naming"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig describes the object built at startup
type DocumentConfig struct {
	Fields []Field `yaml:"fields"`
	// Print is the key whose value is written to stdout
	Print string `yaml:"print"`
}

// Field is a single key/value association of the document
type Field struct {
	Key   string           `yaml:"key"`
	Value models.JSONValue `yaml:"value"`
}

// NamingConfig controls key normalization
type NamingConfig struct {
	SnakeCaseKeys bool `yaml:"snake_case_keys"`
}

// OutputConfig controls serialization
type OutputConfig struct {
	EscapeHTML bool `yaml:"escape_html"`
}

// Default returns the configuration embedded in the binary
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a YAML configuration.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config: %v", err), errors.ErrInvalidConfig)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// KeyFor returns the document key for a configured name, applying naming rules
func (c *Config) KeyFor(name string) string {
	if c.Naming.SnakeCaseKeys {
		return strcase.ToSnake(name)
	}
	return name
}

// PrintKey returns the normalized key whose value is printed
func (c *Config) PrintKey() string {
	return c.KeyFor(c.Document.Print)
}

func (c *Config) validate() error {
	if len(c.Document.Fields) == 0 {
		return errors.NewConfigError("document has no fields", errors.ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Document.Fields))
	for i, f := range c.Document.Fields {
		if f.Key == "" {
			return errors.NewConfigError(fmt.Sprintf("field %d has an empty key", i), errors.ErrInvalidConfig)
		}
		key := c.KeyFor(f.Key)
		if seen[key] {
			return errors.NewConfigError(fmt.Sprintf("duplicate key '%s'", key), errors.ErrInvalidConfig)
		}
		seen[key] = true
	}

	if c.Document.Print == "" {
		return errors.NewConfigError("no key selected for printing", errors.ErrInvalidConfig)
	}
	if !seen[c.PrintKey()] {
		return errors.NewConfigError(fmt.Sprintf("print key '%s' is not a document field", c.PrintKey()), errors.ErrInvalidConfig)
	}
	return nil
}
