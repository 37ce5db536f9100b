package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StratScan/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo" or "mock"
	} `yaml:"data_source"`
	Scanner struct {
		TradingStyle string   `yaml:"trading_style"`
		Symbols      []string `yaml:"symbols"` // overrides the stored watchlist
	} `yaml:"scanner"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("TRADING_STYLE"); v != "" {
		cfg.Scanner.TradingStyle = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Scanner.Symbols = nil
		for _, sym := range strings.Split(v, ",") {
			if sym = strings.TrimSpace(sym); sym != "" {
				cfg.Scanner.Symbols = append(cfg.Scanner.Symbols, sym)
			}
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Scanner.TradingStyle == "" {
		cfg.Scanner.TradingStyle = string(model.DefaultStyle)
	}
	if cfg.Schedule.ScanCron == "" {
		// Every weekday on the half hour during and around US market hours (UTC).
		cfg.Schedule.ScanCron = "0 30 13-21 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stratscan.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if _, err := model.StyleTimeframes(model.TradingStyle(c.Scanner.TradingStyle)); err != nil {
		return err
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	default:
		return fmt.Errorf("data_source.provider must be \"yahoo\" or \"mock\", got %q", c.DataSource.Provider)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
