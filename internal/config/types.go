// Package config manages application configuration from environment variables,
// config files, and default values.
package config

import (
	"time"
)

// Config defines the application configuration. Values can be set via environment
// variables prefixed with BOT_ (e.g., BOT_BOT_PREFIX) or through config.yaml.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Bot       BotConfig       `mapstructure:"bot"`
	Owner     OwnerConfig     `mapstructure:"owner"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Session   SessionConfig   `mapstructure:"session"`
	Reconnect ReconnectConfig `mapstructure:"reconnect"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// BotConfig holds command handling settings.
type BotConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
	Prefix  string `mapstructure:"prefix"  validate:"required"`

	// PingEdit makes the ping handler edit its placeholder message in place
	// instead of sending a second message. Only honored when the transport
	// reports edit support.
	PingEdit bool `mapstructure:"ping_edit"`
}

// OwnerConfig identifies the bot owner for the owner command.
type OwnerConfig struct {
	Name   string `mapstructure:"name"`
	Number string `mapstructure:"number" validate:"omitempty,numeric"`
}

// HTTPConfig holds the status API listener settings.
type HTTPConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// SessionConfig locates the session store owned by the WhatsApp client.
type SessionConfig struct {
	DBPath string `mapstructure:"db_path" validate:"required"`
}

// ReconnectConfig is the retry policy applied when the WhatsApp connection
// cannot be established or drops.
type ReconnectConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	MaxAttempts    int           `mapstructure:"max_attempts"    validate:"min=1"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" validate:"min=1s"`
}

// SchedulerConfig maps task names to their schedule settings.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a registered scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
