// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// MongoConfig holds MongoDB connection details.
type MongoConfig struct {
	URI                   string `mapstructure:"URI" yaml:"uri"`
	Database              string `mapstructure:"DATABASE" yaml:"database"`
	ConnectTimeoutSeconds int    `mapstructure:"CONNECT_TIMEOUT_SECONDS" yaml:"connect_timeout_seconds"`
	MaxPoolSize           uint64 `mapstructure:"MAX_POOL_SIZE" yaml:"max_pool_size"`
	MinPoolSize           uint64 `mapstructure:"MIN_POOL_SIZE" yaml:"min_pool_size"`
}

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Mongo    MongoConfig  `mapstructure:"MONGO" yaml:"mongo"`
	LogLevel string       `mapstructure:"LOG_LEVEL" yaml:"log_level"`
}

// LoadConfig reads configuration from environment variables with sane
// defaults for local development.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("MONGO.URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO.DATABASE", "fitfinder_dev")
	v.SetDefault("MONGO.CONNECT_TIMEOUT_SECONDS", 10)
	v.SetDefault("MONGO.MAX_POOL_SIZE", 100)
	v.SetDefault("MONGO.MIN_POOL_SIZE", 1)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"MONGO.URI", "MONGO_URI"},
		{"MONGO.DATABASE", "MONGO_DATABASE"},
		{"MONGO.CONNECT_TIMEOUT_SECONDS", "MONGO_CONNECT_TIMEOUT_SECONDS"},
		{"MONGO.MAX_POOL_SIZE", "MONGO_MAX_POOL_SIZE"},
		{"MONGO.MIN_POOL_SIZE", "MONGO_MIN_POOL_SIZE"},
		{"LOG_LEVEL", "LOG_LEVEL"},
	}
	for _, binding := range envBindings {
		if err := v.BindEnv(binding[0], binding[1]); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", binding[1], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"mongoURI", logger.MaskConnectionString(cfg.Mongo.URI),
		"mongoDatabase", cfg.Mongo.Database,
	)

	return &cfg, nil
}

// Validate checks the configuration for obviously broken values.
func (c *Config) Validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", c.Server.Environment)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo URI must not be empty")
	}
	if !strings.HasPrefix(c.Mongo.URI, "mongodb://") && !strings.HasPrefix(c.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf("mongo URI must start with mongodb:// or mongodb+srv://")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name must not be empty")
	}
	if c.Mongo.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("mongo connect timeout must be positive")
	}
	return nil
}
