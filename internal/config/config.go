package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application settings, loaded from environment
// variables with an optional .env file for local use.
type Config struct {
	DBPath           string `mapstructure:"NEDARIM_DB_PATH"`
	LogLevel         string `mapstructure:"NEDARIM_LOG_LEVEL"`
	BackupEndpoint   string `mapstructure:"NEDARIM_BACKUP_ENDPOINT"`
	BackupBucket     string `mapstructure:"NEDARIM_BACKUP_BUCKET"`
	BackupRegion     string `mapstructure:"NEDARIM_BACKUP_REGION"`
	BackupAccessKey  string `mapstructure:"NEDARIM_BACKUP_ACCESS_KEY"`
	BackupSecretKey  string `mapstructure:"NEDARIM_BACKUP_SECRET_KEY"`
	BackupPassphrase string `mapstructure:"NEDARIM_BACKUP_PASSPHRASE"`
}

// Load reads configuration from the environment, consulting a .env file
// in the given path when one exists.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("NEDARIM_DB_PATH", "nedarim.db")
	v.SetDefault("NEDARIM_LOG_LEVEL", "info")
	v.SetDefault("NEDARIM_BACKUP_ENDPOINT", "")
	v.SetDefault("NEDARIM_BACKUP_BUCKET", "")
	v.SetDefault("NEDARIM_BACKUP_REGION", "auto")
	v.SetDefault("NEDARIM_BACKUP_ACCESS_KEY", "")
	v.SetDefault("NEDARIM_BACKUP_SECRET_KEY", "")
	v.SetDefault("NEDARIM_BACKUP_PASSPHRASE", "")

	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
