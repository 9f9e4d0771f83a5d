package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/rates"
)

func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	SetDir("")
	return filepath.Join(dir, "stipend")
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	useTempDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Base() != currency.CRC {
		t.Errorf("base = %s, want CRC", cfg.Base())
	}
	if cfg.General.OutputFile != DefaultOutputFile {
		t.Errorf("output = %q", cfg.General.OutputFile)
	}
	if cfg.Rates.BaseURL != rates.DefaultBaseURL {
		t.Errorf("base url = %q", cfg.Rates.BaseURL)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := useTempDir(t)

	cfg := DefaultConfig()
	cfg.General.BaseCurrency = "USD"
	cfg.General.DisplayCurrency = "EUR"
	cfg.General.DaysPerWeek = 5
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := useTempDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "[general]\nbase_currency = \"EUR\"\noutput_file = \"out.txt\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Base() != currency.EUR || cfg.General.OutputFile != "out.txt" {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Appearance.Locale != currency.DefaultLocale {
		t.Errorf("locale = %q, want default", cfg.Appearance.Locale)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"currency": "[general]\nbase_currency = \"JPY\"\noutput_file = \"x\"\n",
		"days":     "[general]\nbase_currency = \"CRC\"\ndays_per_week = 8\noutput_file = \"x\"\n",
		"output":   "[general]\nbase_currency = \"CRC\"\noutput_file = \"\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := useTempDir(t)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSetDir(t *testing.T) {
	dir := t.TempDir()
	SetDir(dir)
	t.Cleanup(func() { SetDir("") })

	if got := ConfigPath(); got != filepath.Join(dir, "config.toml") {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rates.Offline = false

	t.Setenv(EnvRatesURL, "http://localhost:9/latest/")
	t.Setenv(EnvOutput, "/tmp/summary.txt")
	t.Setenv(EnvOffline, "true")

	if got := GetRatesURL(cfg); got != "http://localhost:9/latest/" {
		t.Errorf("GetRatesURL = %q", got)
	}
	if got := GetOutputFile(cfg); got != "/tmp/summary.txt" {
		t.Errorf("GetOutputFile = %q", got)
	}
	if !IsOffline(cfg) {
		t.Error("IsOffline = false with env true")
	}

	t.Setenv(EnvOffline, "perhaps")
	cfg.Rates.Offline = true
	if !IsOffline(cfg) {
		t.Error("unparsable env should fall back to config")
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv(EnvRatesURL, "")
	t.Setenv(EnvOutput, "")
	cfg := DefaultConfig()
	cfg.General.OutputFile = ""

	if got := GetRatesURL(cfg); got != rates.DefaultBaseURL {
		t.Errorf("GetRatesURL = %q", got)
	}
	if got := GetOutputFile(cfg); got != DefaultOutputFile {
		t.Errorf("GetOutputFile = %q", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvOutput+"=from-dotenv.txt\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvOutput, "")
	os.Unsetenv(EnvOutput)
	if err := LoadEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(EnvOutput); got != "from-dotenv.txt" {
		t.Errorf("%s = %q", EnvOutput, got)
	}
}
