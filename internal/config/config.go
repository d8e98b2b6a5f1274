package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/skybi/hashmaps/internal/hashfunc"
	"strings"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"dev"`

	Capacity     int    `default:"11"`
	HashFunction string `default:"sum" split_words:"true"`

	RandomWords      int   `default:"0" split_words:"true"`
	RandomWordLength int   `default:"2" split_words:"true"`
	RandomSeed       int64 `default:"1" split_words:"true"`

	DumpTables bool `default:"false" split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("hm", config); err != nil {
		return nil, err
	}
	if config.Capacity < 1 {
		return nil, fmt.Errorf("capacity has to be positive, got %d", config.Capacity)
	}
	if config.RandomWords > 0 && config.RandomWordLength < 1 {
		return nil, fmt.Errorf("random word length has to be positive, got %d", config.RandomWordLength)
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "prod"
}

// Hash resolves the configured hash function
func (config *Config) Hash() (hashfunc.Func, error) {
	return hashfunc.ByName(config.HashFunction)
}
