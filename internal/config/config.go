// Package config loads personread settings from defaults, an optional TOML
// file, PERSONREAD_* environment variables and command-line flags.
package config

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/hatsunemiku3939/personread/pkg/jsonschema"
)

// EnvPrefix is prepended to every environment variable, e.g. PERSONREAD_PATH.
const EnvPrefix = "PERSONREAD"

// DefaultPath is the resource read when nothing else is configured.
const DefaultPath = "person.txt"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Path       string    `mapstructure:"path" json:"path"`
	ExitPolicy string    `mapstructure:"exit_policy" json:"exit_policy"`
	Log        LogConfig `mapstructure:"log" json:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
	JSON  bool   `mapstructure:"json" json:"json"`
}

var schema = jsonschema.MustCompile(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "path": { "type": "string", "minLength": 1 },
    "exit_policy": { "type": "string", "enum": ["strict", "legacy"] },
    "log": {
      "type": "object",
      "properties": {
        "level": { "type": "string", "enum": ["debug", "info", "warn", "error"] },
        "json": { "type": "boolean" }
      },
      "required": ["level", "json"]
    }
  },
  "required": ["path", "exit_policy", "log"]
}`)

// SetDefaults configures default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("path", DefaultPath)
	v.SetDefault("exit_policy", "strict")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// New returns a Viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load resolves the configuration from v. When file is non-empty it is read
// as TOML first; values from the environment and bound flags still take precedence.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings against the configuration schema.
func (c *Config) Validate() error {
	doc, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := schema.Validate(doc); err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrap(err, ErrInvalidConfig.Error()), ErrInvalidConfig),
			"exit_policy is strict or legacy; log.level is debug, info, warn or error",
		)
	}
	return nil
}
