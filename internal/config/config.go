// Package config loads the CLI configuration from an optional YAML file
// and LEXLINK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration keys and their environment bindings
const (
	apiURLKey  = "api_url"
	dataDirKey = "data_dir"
	timeoutKey = "timeout"
	envKey     = "env"
)

// Config holds everything the CLI needs to reach the backend and persist
// local state.
type Config struct {
	APIURL  string        `mapstructure:"api_url" validate:"required,url"`
	DataDir string        `mapstructure:"data_dir" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Env     string        `mapstructure:"env" validate:"required,oneof=dev prod test"`
}

func envBindings() map[string]string {
	return map[string]string{
		apiURLKey:  "LEXLINK_API_URL",
		dataDirKey: "LEXLINK_DATA_DIR",
		timeoutKey: "LEXLINK_TIMEOUT",
		envKey:     "LEXLINK_ENV",
	}
}

// DefaultDataDir returns ~/.lexlink, falling back to a relative directory
// when the home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lexlink"
	}
	return filepath.Join(home, ".lexlink")
}

// Load reads the configuration from <dataDir>/config.yaml (when present)
// and the environment, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault(apiURLKey, "http://localhost:4848/api")
	v.SetDefault(dataDirKey, DefaultDataDir())
	v.SetDefault(timeoutKey, 30*time.Second)
	v.SetDefault(envKey, "prod")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultDataDir())
	if configFile := os.Getenv("LEXLINK_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	}
	v.AutomaticEnv()

	for configKey, envVar := range envBindings() {
		if err := v.BindEnv(configKey, envVar); err != nil {
			return nil, fmt.Errorf("binding environment variable %s: %w", envVar, err)
		}
	}

	// A missing config file is fine; env vars and defaults cover it.
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &config, nil
}
