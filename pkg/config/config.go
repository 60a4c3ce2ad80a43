// Package config provides a reusable loader for runtime configuration
// files and environment variables. It is versioned so that embedders can
// depend on a stable API contract.
//
// Version: v0.1.0
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config represents the unified configuration for an embedding of this
// runtime. It mirrors the structure of the YAML files Load reads from
// cmd/config or config; no such file ships with this module, and
// setDefaults supplies every field.
type Config struct {
	Allocator struct {
		PageSize     int `mapstructure:"page_size" json:"page_size"`
		InitialPages int `mapstructure:"initial_pages" json:"initial_pages"`
	} `mapstructure:"allocator" json:"allocator"`

	Containers struct {
		HashTableInitialRange int `mapstructure:"hash_table_initial_range" json:"hash_table_initial_range"`
		MaxNestingDepth        int `mapstructure:"max_nesting_depth" json:"max_nesting_depth"`
	} `mapstructure:"containers" json:"containers"`

	Codec struct {
		SSZMaxListLength int `mapstructure:"ssz_max_list_length" json:"ssz_max_list_length"`
	} `mapstructure:"codec" json:"codec"`

	Coverage struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Topic   string `mapstructure:"topic" json:"topic"`
	} `mapstructure:"coverage" json:"coverage"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
		File  string `mapstructure:"file" json:"file"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and returned.
//
// The function uses the provided environment name to merge additional config
// files. If env is empty, only the default configuration is loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, utils.Wrap(err, "load config")
		}
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.AutomaticEnv() // consult process environment variables on lookup

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the IR_ENV environment variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("IR_ENV", ""))
}

func setDefaults() {
	viper.SetDefault("allocator.page_size", 65536)
	viper.SetDefault("allocator.initial_pages", 1)
	viper.SetDefault("containers.hash_table_initial_range", 100)
	viper.SetDefault("containers.max_nesting_depth", 64)
	viper.SetDefault("codec.ssz_max_list_length", 1<<20)
	viper.SetDefault("coverage.enabled", false)
	viper.SetDefault("coverage.topic", "MyCoverage") // matches original_source/mycov.c's event name
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
