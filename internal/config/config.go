package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Driver selects the key-value store backend: sqlite, postgres or memory.
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		// Path is the database file location for the sqlite driver.
		Path string `yaml:"path" env:"STORAGE_PATH"`
		// DSN is the connection string for the postgres driver.
		DSN string `yaml:"dsn" env:"STORAGE_DSN"`
	} `yaml:"storage"`

	Auth struct {
		// Password is the single shared gate credential: a bcrypt hash or a
		// plaintext value.
		Password    string `yaml:"password" env:"AUTH_PASSWORD"`
		TokenSecret string `yaml:"token_secret" env:"AUTH_TOKEN_SECRET"`
		TokenIssuer string `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory is honored; the file and every setting
// in it are optional except the gate credentials.
func LoadConfig(configPath string) (*Config, error) {
	// .env is a convenience for development, ignore when absent
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = "sqlite"
	config.Storage.Path = "academy.db"

	config.Auth.TokenIssuer = "academy-manager"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case "sqlite":
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the sqlite driver")
		}
	case "postgres":
		if config.Storage.DSN == "" {
			return fmt.Errorf("storage dsn is required for the postgres driver")
		}
	case "memory":
		// nothing to validate
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Auth.Password == "" {
		return fmt.Errorf("auth password is required")
	}
	if config.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret is required")
	}

	return nil
}
