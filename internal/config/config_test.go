package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(cfg.Analysis.Instruments) != 2 {
		t.Fatalf("default instruments = %d, want 2", len(cfg.Analysis.Instruments))
	}
	if cfg.Analysis.Instruments[0].Name != "gold" || cfg.Analysis.Instruments[0].Symbol != "GC=F" {
		t.Errorf("unexpected first instrument: %+v", cfg.Analysis.Instruments[0])
	}
	if cfg.Analysis.BarInterval != "15m" {
		t.Errorf("bar interval = %q, want 15m", cfg.Analysis.BarInterval)
	}
	if cfg.Analysis.LookbackDays != 5 || cfg.Analysis.SummaryLookbackDays != 30 {
		t.Errorf("lookbacks = %d/%d, want 5/30", cfg.Analysis.LookbackDays, cfg.Analysis.SummaryLookbackDays)
	}
	if cfg.Schedule.AnalysisCron == "" || cfg.Schedule.DailyCron == "" {
		t.Error("default crons not applied")
	}
	if cfg.Telegram.MessageDelaySeconds != 10 {
		t.Errorf("message delay = %d, want 10", cfg.Telegram.MessageDelaySeconds)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
telegram:
  bot_token: file-token
  chat_id: "@metals"
analysis:
  instruments:
    - name: gold
      symbol: GC=F
  lookback_days: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("bot token = %q, env should win", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.ChatID != "@metals" {
		t.Errorf("chat id = %q", cfg.Telegram.ChatID)
	}
	if cfg.Analysis.LookbackDays != 7 {
		t.Errorf("lookback = %d, want 7 from file", cfg.Analysis.LookbackDays)
	}
	if len(cfg.Analysis.Instruments) != 1 {
		t.Errorf("instruments = %d, want 1 from file", len(cfg.Analysis.Instruments))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without telegram credentials")
	}
}
