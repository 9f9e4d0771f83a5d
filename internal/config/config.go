package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/rates"
	"github.com/ImJustSebas/University-budget-manager/internal/theme"

	"github.com/BurntSushi/toml"
)

// DefaultOutputFile is where the summary is written unless configured otherwise.
const DefaultOutputFile = "budget_summary.txt"

// ErrInvalid wraps validation failures in a loaded config.
var ErrInvalid = errors.New("invalid config")

// Config holds all stipend configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rates      RatesConfig      `toml:"rates"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds planning defaults.
type GeneralConfig struct {
	BaseCurrency    string `toml:"base_currency"`
	DisplayCurrency string `toml:"display_currency,omitempty"`
	OutputFile      string `toml:"output_file"`
	DaysPerWeek     int    `toml:"days_per_week,omitempty"`
}

// RatesConfig holds exchange rate lookup settings.
type RatesConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	Offline bool   `toml:"offline"`
}

// AppearanceConfig holds theme and terminal settings.
type AppearanceConfig struct {
	Theme      string `toml:"theme"`
	Locale     string `toml:"locale"`
	Accessible bool   `toml:"accessible"`
	AltScreen  bool   `toml:"alt_screen"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			BaseCurrency: string(currency.CRC),
			OutputFile:   DefaultOutputFile,
		},
		Rates: RatesConfig{
			BaseURL: rates.DefaultBaseURL,
		},
		Appearance: AppearanceConfig{
			Theme:  theme.FlexokiDark.Name,
			Locale: currency.DefaultLocale,
		},
	}
}

// Validate checks the values that later steps rely on.
func (c Config) Validate() error {
	if _, err := currency.Parse(c.General.BaseCurrency); err != nil {
		return fmt.Errorf("%w: general.base_currency: %w", ErrInvalid, err)
	}
	if c.General.DisplayCurrency != "" {
		if _, err := currency.Parse(c.General.DisplayCurrency); err != nil {
			return fmt.Errorf("%w: general.display_currency: %w", ErrInvalid, err)
		}
	}
	if d := c.General.DaysPerWeek; d < 0 || d > 7 {
		return fmt.Errorf("%w: general.days_per_week must be 0 (ask) or 1-7, got %d", ErrInvalid, d)
	}
	if c.General.OutputFile == "" {
		return fmt.Errorf("%w: general.output_file is empty", ErrInvalid)
	}
	return nil
}

// Base returns the configured scholarship currency, CRC when unset or invalid.
func (c Config) Base() currency.Code {
	code, err := currency.Parse(c.General.BaseCurrency)
	if err != nil {
		return currency.CRC
	}
	return code
}

// Display returns the configured display currency, or "" to follow the
// scholarship currency.
func (c Config) Display() currency.Code {
	code, err := currency.Parse(c.General.DisplayCurrency)
	if err != nil {
		return ""
	}
	return code
}

var dirOverride string

// SetDir makes ConfigDir return dir. An empty dir restores the default.
func SetDir(dir string) {
	dirOverride = dir
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if dirOverride != "" {
		return dirOverride
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stipend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stipend")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
