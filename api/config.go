package api

import (
	"errors"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v2"
)

// Config holds the server configuration. Values come from config.yml
// (written with defaults on first boot) and may be overridden from the
// environment.
type Config struct {
	Addr        string `yaml:"addr" env:"FARM_ADDR"`
	DBPath      string `yaml:"db" env:"FARM_DB"`
	JWTSecret   string `yaml:"jwtSecret" env:"FARM_JWT_SECRET"`
	LogLevel    string `yaml:"logLevel" env:"FARM_LOG_LEVEL"`
	CORSOrigins string `yaml:"corsOrigins" env:"FARM_CORS_ORIGINS"`
}

// DefaultConfig is what a fresh installation starts with. The JWT
// secret has no default and must be configured.
var DefaultConfig = Config{
	Addr:        ":8080",
	DBPath:      "db.sqlite",
	LogLevel:    "info",
	CORSOrigins: "*",
}

// LoadConfig reads the configuration file, creating it with defaults
// if it does not exist yet, and then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return Config{}, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Config{}, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	return cfg, nil
}
