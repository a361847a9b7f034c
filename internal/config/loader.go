package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load assembles the analyzer configuration from a YAML file and the
// environment, with ENV values overriding file values and env-default tags
// filling whatever remains. CONFIG_PATH names the file; when it is unset the
// loader tries ./config.yaml and, if that is absent too, proceeds on ENV and
// defaults alone. A CONFIG_PATH that points nowhere is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	fromEnv := path != ""
	if !fromEnv {
		path = "./config.yaml"
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	case fromEnv:
		return nil, fmt.Errorf("config file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
