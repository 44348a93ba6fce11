package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if len(cfg.Highlights.Channels) == 0 {
		t.Error("expected highlight channels to be populated")
	}

	if !cfg.Providers.FotMob.Enabled || !cfg.Providers.SofaScore.Enabled {
		t.Error("expected fotmob and sofascore to be enabled by default")
	}

	if cfg.Providers.Transfermarkt.Enabled {
		t.Error("expected transfermarkt to be disabled by default")
	}

	if cfg.Fetch.FixtureDelay != 300*time.Millisecond {
		t.Errorf("expected fixture delay 300ms, got %v", cfg.Fetch.FixtureDelay)
	}

	if cfg.Synthesis.ThreadStyle != "scaled" {
		t.Errorf("expected thread style 'scaled', got %q", cfg.Synthesis.ThreadStyle)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
data:
  dir: /tmp/site-data
synthesis:
  thread_style: panel
fetch:
  player_delay: 2s
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Data.Dir != "/tmp/site-data" {
		t.Errorf("expected data dir '/tmp/site-data', got %q", cfg.Data.Dir)
	}
	if cfg.Synthesis.ThreadStyle != "panel" {
		t.Errorf("expected thread style 'panel', got %q", cfg.Synthesis.ThreadStyle)
	}
	if cfg.Fetch.PlayerDelay != 2*time.Second {
		t.Errorf("expected player delay 2s, got %v", cfg.Fetch.PlayerDelay)
	}
	// Defaults should still be set for unspecified fields
	if cfg.Providers.SofaScore.MaxEvents != 30 {
		t.Errorf("expected default max_events 30, got %d", cfg.Providers.SofaScore.MaxEvents)
	}
	if cfg.Fetch.UserAgent == "" {
		t.Error("expected default user agent")
	}
}

func TestParseRejectsUnknownThreadStyle(t *testing.T) {
	_, err := parse([]byte("synthesis:\n  thread_style: random\n"))
	if err == nil {
		t.Error("expected error for unknown thread style")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Schedule.Cron != "0 6 * * *" {
		t.Errorf("expected cron '0 6 * * *', got %q", cfg.Schedule.Cron)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("KAIGAIGUMI_DATA_DIR", "/env/data")
	t.Setenv("KAIGAIGUMI_LEDGER", "/env/ledger.db")

	cfg := &Config{Data: Data{Dir: "src/data"}}
	cfg.ApplyEnv()

	if cfg.Data.Dir != "/env/data" {
		t.Errorf("expected '/env/data', got %q", cfg.Data.Dir)
	}
	if cfg.GetLedgerPath() != "/env/ledger.db" {
		t.Errorf("expected '/env/ledger.db', got %q", cfg.GetLedgerPath())
	}
}

func TestGetLedgerPath(t *testing.T) {
	cfg := &Config{}
	if cfg.GetLedgerPath() == "" {
		t.Error("expected non-empty default ledger path")
	}

	cfg.Data.Ledger = "/custom/runs.db"
	if cfg.GetLedgerPath() != "/custom/runs.db" {
		t.Errorf("expected '/custom/runs.db', got %q", cfg.GetLedgerPath())
	}
}
