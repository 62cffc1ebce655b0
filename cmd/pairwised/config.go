package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PAIRWISE"

// Config the application's configuration structure
type Config struct {
	RedisListenPort    int
	Backend            string
	StaticDiscovery    string
	SessionExpiration  time.Duration
	ValidateCandidates bool
	MaxCandidates      int
	LogLevel           string
	Profiling          bool
}

// LoadConfig loads the config from a file if specified, otherwise from the environment
func LoadConfig(cmd *cobra.Command, envPrefix string) (*Config, error) {
	// Setting defaults for this application
	viper.SetDefault("redisListenPort", 6380)
	viper.SetDefault("backend", "memory")
	viper.SetDefault("staticDiscovery", "")
	viper.SetDefault("sessionExpiration", 0)
	viper.SetDefault("validateCandidates", true)
	viper.SetDefault("maxCandidates", 0)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("profiling", false)

	// Read Config from ENV
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Read Config from Flags
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// Read Config from file
	if configFile, err := cmd.Flags().GetString("config-file"); err == nil && configFile != "" {
		viper.SetConfigFile(configFile)

		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config

	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
