// Package config loads the settings of the demo front ends. Values
// come from built-in defaults, optionally overridden by a YAML file;
// command-line flags override both at the call sites.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
)

// Config holds all configuration for the command-line and HTTP front ends.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Query      QueryConfig      `mapstructure:"query"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
}

// ServerConfig holds settings for the HTTP lookup service.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// QueryConfig holds settings for interactive and HTTP queries.
type QueryConfig struct {
	SuggestionLimit int `mapstructure:"suggestion_limit"`
}

// DictionaryConfig holds settings for building dictionaries from files.
type DictionaryConfig struct {
	Alphabet      string `mapstructure:"alphabet"`
	WordKey       string `mapstructure:"word_key"`
	DefinitionKey string `mapstructure:"definition_key"`
}

// Load returns the configuration, reading the YAML file at path when
// path is non-empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("query.suggestion_limit", 10)
	v.SetDefault("dictionary.alphabet", dictionary.LowercaseLatin)
	v.SetDefault("dictionary.word_key", "word")
	v.SetDefault("dictionary.definition_key", "definition")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
