package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"karma/internal/util"
)

// Config provides configuration for a game of Karma
type Config struct {
	loaded    bool
	Players   int   `yaml:"players" envconfig:"players"`
	Jokers    int   `yaml:"jokers" envconfig:"jokers"`
	TurnLimit int   `yaml:"turnLimit" envconfig:"turn_limit"`
	WhoStarts int   `yaml:"whoStarts" envconfig:"who_starts"`
	Seed      int64 `yaml:"seed" envconfig:"seed"`
	// Humans is the number of players (starting at seat 0) controlled from the console
	Humans int `yaml:"humans" envconfig:"humans"`
	Bot    struct {
		Delay time.Duration `yaml:"delay" envconfig:"delay"`
	} `yaml:"bot" envconfig:"bot"`
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	PromptsFile string `yaml:"promptsFile" envconfig:"prompts_file"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		Players:   4,
		Jokers:    1,
		TurnLimit: 1000,
		Humans:    1,
	}

	cfg.Bot.Delay = 500 * time.Millisecond
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file and the .env file are both optional
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("KARMA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && err != io.EOF {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := godotenv.Load(util.Getenv("KARMA_ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("karma", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
