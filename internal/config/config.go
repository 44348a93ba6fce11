package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Data       Data       `yaml:"data"`
	Fetch      Fetch      `yaml:"fetch"`
	Providers  Providers  `yaml:"providers"`
	Synthesis  Synthesis  `yaml:"synthesis"`
	Highlights Highlights `yaml:"highlights"`
	Schedule   Schedule   `yaml:"schedule"`
	Logging    Logging    `yaml:"logging"`
}

type Data struct {
	Dir    string `yaml:"dir"`
	Ledger string `yaml:"ledger"`
}

type Fetch struct {
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	PlayerDelay       time.Duration `yaml:"player_delay"`
	FixtureDelay      time.Duration `yaml:"fixture_delay"`
}

type Providers struct {
	FotMob        FotMob        `yaml:"fotmob"`
	SofaScore     SofaScore     `yaml:"sofascore"`
	Transfermarkt Transfermarkt `yaml:"transfermarkt"`
}

type FotMob struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

type SofaScore struct {
	Enabled     bool   `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	SeasonStart string `yaml:"season_start"`
	MaxEvents   int    `yaml:"max_events"`
}

type Transfermarkt struct {
	Enabled     bool   `yaml:"enabled"`
	URLTemplate string `yaml:"url_template"`
}

type Synthesis struct {
	ThreadStyle string `yaml:"thread_style"`
	Seed        int64  `yaml:"seed"`
}

type Highlights struct {
	Channels   []Channel `yaml:"channels"`
	WindowDays int       `yaml:"window_days"`
}

type Channel struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Schedule struct {
	Cron     string `yaml:"cron"`
	Timezone string `yaml:"timezone"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for kaigaigumi.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "kaigaigumi")
}

// DataDir returns the XDG data directory for kaigaigumi.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "kaigaigumi")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/kaigaigumi/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'kaigaigumi init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Data: Data{Dir: "src/data"},
		Fetch: Fetch{
			UserAgent:         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Timeout:           20 * time.Second,
			RequestsPerMinute: 120,
			PlayerDelay:       time.Second,
			FixtureDelay:      300 * time.Millisecond,
		},
		Providers: Providers{
			FotMob: FotMob{
				Enabled: true,
				BaseURL: "https://www.fotmob.com/api",
			},
			SofaScore: SofaScore{
				Enabled:     true,
				BaseURL:     "https://api.sofascore.com/api/v1",
				SeasonStart: "2025-07-01",
				MaxEvents:   30,
			},
			Transfermarkt: Transfermarkt{
				URLTemplate: "https://www.transfermarkt.com/-/leistungsdaten/spieler/{id}",
			},
		},
		Synthesis:  Synthesis{ThreadStyle: "scaled"},
		Highlights: Highlights{WindowDays: 3},
		Schedule: Schedule{
			Cron:     "0 6 * * *",
			Timezone: "Asia/Tokyo",
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Synthesis.ThreadStyle {
	case "scaled", "panel":
	default:
		return nil, fmt.Errorf("parsing config: unknown thread_style %q", cfg.Synthesis.ThreadStyle)
	}

	return cfg, nil
}

// ApplyEnv overrides file settings with KAIGAIGUMI_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("KAIGAIGUMI_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("KAIGAIGUMI_LEDGER"); v != "" {
		c.Data.Ledger = v
	}
}

// GetLedgerPath returns the run ledger database path from config or the XDG default.
func (c *Config) GetLedgerPath() string {
	if c.Data.Ledger != "" {
		return c.Data.Ledger
	}
	return filepath.Join(DataDir(), "kaigaigumi.db")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
