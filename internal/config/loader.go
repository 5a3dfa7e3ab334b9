package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultBotName    = "wabot"
	DefaultBotVersion = "1.2.0"
	DefaultBotPrefix  = "!"

	DefaultHTTPPort = 3000

	DefaultSessionDBPath = "session.db"

	DefaultReconnectMaxAttempts    = 5
	DefaultReconnectInitialBackoff = 5 * time.Second
)

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file (optional)
// 3. BOT_* environment variables
func Load(path string) (*Config, error) {
	setDefaults()

	if err := readConfig(path); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// readConfig initializes and loads the configuration using viper.
// A missing config file is not an error; defaults and environment apply.
func readConfig(path string) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.json", DefaultLogJSON)

	viper.SetDefault("bot.name", DefaultBotName)
	viper.SetDefault("bot.version", DefaultBotVersion)
	viper.SetDefault("bot.prefix", DefaultBotPrefix)
	viper.SetDefault("bot.ping_edit", false)

	viper.SetDefault("owner.name", "")
	viper.SetDefault("owner.number", "")

	viper.SetDefault("http.port", DefaultHTTPPort)

	viper.SetDefault("session.db_path", DefaultSessionDBPath)

	viper.SetDefault("reconnect.enabled", true)
	viper.SetDefault("reconnect.max_attempts", DefaultReconnectMaxAttempts)
	viper.SetDefault("reconnect.initial_backoff", DefaultReconnectInitialBackoff)

	viper.SetDefault("scheduler.tasks.status_report.enabled", true)
	viper.SetDefault("scheduler.tasks.status_report.schedule", "0 * * * *")
	viper.SetDefault("scheduler.tasks.presence_keepalive.enabled", true)
	viper.SetDefault("scheduler.tasks.presence_keepalive.schedule", "*/10 * * * *")
}
