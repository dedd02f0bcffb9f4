package config

import (
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/jurimetrics/fjcnorm/pkg/errors"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "FJC"

// newViper builds a pre-configured Viper instance: YAML file type, FJC_ env
// prefix, automatic env binding, and a key replacer that maps "." to "_" so
// that nested keys like "log.level" resolve to "FJC_LOG_LEVEL". Every key is
// registered with its default up front; viper only surfaces env-only values
// to Unmarshal for keys it already knows about.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("normalize.as_of_year", 0)
	return v
}

// Load reads the YAML file at configPath, merges FJC_* environment variable
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.CodeConfigInvalid, "read config file %q", configPath)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from FJC_* environment variables and defaults
// alone, no config file required. This is the path taken when the user does
// not pass --config.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid, "unmarshal configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid, "validation failed")
	}

	return cfg, nil
}
