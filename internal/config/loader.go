// Package config provides centralized configuration management for
// PokeKnower using a layered pattern: built-in defaults, then an optional
// config file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// POKEKNOWER_SERVER_PORT maps to server.port.
const EnvPrefix = "POKEKNOWER"

// Load reads configuration. cfgFile may be empty, in which case the standard
// config paths are searched and a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$XDG_CONFIG_HOME/pokeknower")
		v.AddConfigPath("$HOME/.config/pokeknower")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_upload_bytes", 10<<20)

	v.SetDefault("store.driver", "libsql")
	v.SetDefault("store.path", "data/pokeknower.db")

	v.SetDefault("model.enabled", false)
	v.SetDefault("model.path", "models/pokemon_classifier.onnx")
	v.SetDefault("model.metadata_path", "models/pokemon_classifier.json")

	v.SetDefault("search.default_page_size", 24)
	v.SetDefault("search.max_page_size", 100)

	v.SetDefault("logging.level", "info")
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", cfg.Server.Port)
	}
	if cfg.Search.DefaultPageSize < 1 {
		return fmt.Errorf("search.default_page_size must be positive")
	}
	if cfg.Search.MaxPageSize < cfg.Search.DefaultPageSize {
		return fmt.Errorf("search.max_page_size must be >= search.default_page_size")
	}
	if cfg.Server.MaxUploadBytes < 1 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	return nil
}
