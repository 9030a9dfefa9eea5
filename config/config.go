package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Destination struct {
		Path string
	}
	Scanner struct {
		ExcludeTerms  []string `mapstructure:"exclude_terms"`
		VerifyContent bool     `mapstructure:"verify_content"`
	}
	Rename struct {
		ByDate bool `mapstructure:"by_date"`
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

// Load 从配置文件和默认值加载配置
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.image-organizer")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/image-organizer")

	viper.SetDefault("destination.path", defaultDestination())
	viper.SetDefault("scanner.exclude_terms", []string{})
	viper.SetDefault("scanner.verify_content", false)
	viper.SetDefault("rename.by_date", false)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultDestination 默认目标目录：桌面下的 Photos to Clean
func defaultDestination() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "Photos to Clean")
	}
	return filepath.Join(home, "Desktop", "Photos to Clean")
}
