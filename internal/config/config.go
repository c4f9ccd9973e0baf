package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const envPrefix = "DFSUMMARY"

type Config struct {
	Rows     int    `mapstructure:"rows"`
	LogLevel string `mapstructure:"log_level"`
	SeqURL   string `mapstructure:"seq_url"`
}

// Load resolves the configuration from v. Flags bound to v win over
// DFSUMMARY_* environment variables, which win over the config file.
// file may be empty, in which case dfsummary.{yaml,json,toml} is looked up in
// the working directory and in $HOME/.config/dfsummary; a missing file is fine.
func Load(v *viper.Viper, file string) (*Config, error) {
	setDefault(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("dfsummary")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dfsummary"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}

func setDefault(v *viper.Viper) {
	v.SetDefault("rows", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("seq_url", "")
}
