package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Instrument maps a logical name to a provider ticker symbol.
type Instrument struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken            string `yaml:"bot_token"`
		ChatID              string `yaml:"chat_id"`
		MessageDelaySeconds int    `yaml:"message_delay_seconds"`
	} `yaml:"telegram"`
	Analysis struct {
		Instruments         []Instrument `yaml:"instruments"`
		BarInterval         string       `yaml:"bar_interval"`
		LookbackDays        int          `yaml:"lookback_days"`
		SummaryLookbackDays int          `yaml:"summary_lookback_days"`
	} `yaml:"analysis"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
		DailyCron    string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env-only setups
// are supported.
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
	if v := os.Getenv("TELEGRAM_CHANNEL_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("MESSAGE_DELAY_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Telegram.MessageDelaySeconds = n
		}
	}

	// Defaults
	if len(cfg.Analysis.Instruments) == 0 {
		cfg.Analysis.Instruments = []Instrument{
			{Name: "gold", Symbol: "GC=F"},
			{Name: "silver", Symbol: "SI=F"},
		}
	}
	if cfg.Analysis.BarInterval == "" {
		cfg.Analysis.BarInterval = "15m"
	}
	if cfg.Analysis.LookbackDays == 0 {
		cfg.Analysis.LookbackDays = 5
	}
	if cfg.Analysis.SummaryLookbackDays == 0 {
		cfg.Analysis.SummaryLookbackDays = 30
	}
	if cfg.Schedule.AnalysisCron == "" {
		// Every 4 hours starting 05:00
		cfg.Schedule.AnalysisCron = "0 0 5,9,13,17,21 * * *"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 4 * * *"
	}
	if cfg.Telegram.MessageDelaySeconds == 0 {
		cfg.Telegram.MessageDelaySeconds = 10
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Analysis.Instruments) == 0 {
		return fmt.Errorf("analysis.instruments must not be empty")
	}
	for _, ins := range c.Analysis.Instruments {
		if ins.Name == "" || ins.Symbol == "" {
			return fmt.Errorf("instrument entries need both name and symbol")
		}
	}
	return nil
}
