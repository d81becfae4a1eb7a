package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/infra/bulletin"
	"github.com/kilianp07/boater/infra/coefficients"
	"github.com/kilianp07/boater/infra/mqtt"
)

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore, e.g. BOATER_BULLETIN__REGION.
const EnvPrefix = "BOATER_"

type Config struct {
	Bulletin     bulletin.Config     `json:"bulletin"`
	Coefficients coefficients.Layout `json:"coefficients"`
	Curves       CurvesConfig        `json:"curves"`
	Metrics      metrics.Config      `json:"metrics"`
	MQTT         mqtt.Config         `json:"mqtt"`
	Logging      LoggingConfig       `json:"logging"`
}

// Load reads the configuration file at path, applies environment overrides
// and defaults, then validates every section. An empty path loads defaults
// and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	prefix := strings.ToLower(EnvPrefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), prefix)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every section.
func (c *Config) SetDefaults() {
	c.Bulletin.SetDefaults()
	c.Coefficients.SetDefaults()
	c.Curves.SetDefaults()
	c.Metrics.SetDefaults()
	c.MQTT.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section. Curve engine types are normalized in place.
func (c *Config) Validate() error {
	if err := c.Bulletin.Validate(); err != nil {
		return err
	}
	if err := c.Curves.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
