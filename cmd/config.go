package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by acr.
const EnvPrefix = "ACR"

// Config holds the defaults of the command line flags, read from the environment.
type Config struct {
	DB           string `envconfig:"DB"`
	Output       string `envconfig:"OUTPUT" default:"csv"`
	Verbose      bool   `envconfig:"VERBOSE"`
	InclusiveEnd bool   `envconfig:"INCLUSIVE_END"`
	IgnoreLock   bool   `envconfig:"IGNORE_LOCK"`
}

// LoadConfig reads the configuration from environment variables.
//
// Variables are first loaded from the given .env files, or from ./.env when
// none is given. A missing ./.env is not an error. Variables already set in the
// environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
