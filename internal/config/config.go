package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig    `mapstructure:"app"`
	S3       S3Config     `mapstructure:"s3"`
	Notify   NotifyConfig `mapstructure:"notify"`
	Schedule string       `mapstructure:"schedule"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type NotifyConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// Default returns the configuration used when no config file is given; every
// field can still be overridden by CLI flags.
func Default() *Config {
	var cfg Config
	if err := defaults().Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return &cfg
}

func Load(path string) (*Config, error) {
	v := defaults()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func defaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("app.name", "s3sweep")
	v.SetDefault("app.log_level", "info")
	return v
}

func (c *Config) Validate() error {
	if c.Notify.Telegram.Enabled {
		if c.Notify.Telegram.BotToken == "" {
			return fmt.Errorf("notify.telegram: bot_token is required when enabled")
		}
		if c.Notify.Telegram.ChatID == "" {
			return fmt.Errorf("notify.telegram: chat_id is required when enabled")
		}
		if _, err := strconv.ParseInt(c.Notify.Telegram.ChatID, 10, 64); err != nil {
			return fmt.Errorf("notify.telegram: chat_id must be numeric, got %q", c.Notify.Telegram.ChatID)
		}
	}
	return nil
}
