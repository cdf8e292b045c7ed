package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/tomsquest/wordref/pkg/validator"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token"`
	Dict     DictConfig    `mapstructure:"dict" validate:"required"`
	Suggest  SuggestConfig `mapstructure:"suggest" validate:"required"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	// Trigger is the host query prefix prepended to input hints ("w" gives
	// "wenfr hello").
	Trigger string `mapstructure:"trigger"`
}

type DictConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type SuggestConfig struct {
	Limit    int      `mapstructure:"limit" validate:"min=1,max=50"`
	Denylist []string `mapstructure:"denylist"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	v.SetDefault("app.trigger", "w")
	v.SetDefault("dict.timeout", 10*time.Second)
	v.SetDefault("suggest.limit", 8)
	v.SetDefault("suggest.denylist", []string{"esca", "ruen"})
	v.SetDefault("env", "development")

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("dict.base_url", "DICT_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DICT_BASE_URL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
