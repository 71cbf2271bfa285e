package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port     string
		Env      string
		LogLevel string
		SeedDemo bool
	}
	Session struct {
		Secret string
		MaxAge int
	}
	Chat struct {
		RatePerSec float64
		Burst      int
	}
}

// Load reads configuration from an optional .env file, an optional
// config.yaml, and the environment, in increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.loglevel", "info")
	viper.SetDefault("server.seeddemo", true)
	viper.SetDefault("session.secret", "default-secret-key-change-in-production")
	viper.SetDefault("session.maxage", 86400*7)
	viper.SetDefault("chat.ratepersec", 1.0)
	viper.SetDefault("chat.burst", 3)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Debug("No config file found, using defaults and environment")
	}

	expandEnvInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// an unresolved ${SESSION_SECRET} in the config file expands to "",
	// which overrides the viper default
	if cfg.Session.Secret == "" {
		log.Warn("Session secret is empty, falling back to the insecure default")
		cfg.Session.Secret = "default-secret-key-change-in-production"
	}
	return &cfg, nil
}

// expandEnvInConfig substitutes ${VAR} references in config file values
// with the corresponding environment variables.
func expandEnvInConfig() {
	for _, key := range viper.AllKeys() {
		value := viper.GetString(key)
		if strings.Contains(value, "${") {
			viper.Set(key, os.Expand(value, os.Getenv))
		}
	}
}
