package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvRatesURL = "STIPEND_RATES_URL"
	EnvOutput   = "STIPEND_OUTPUT"
	EnvOffline  = "STIPEND_OFFLINE"
)

// LoadEnv reads a .env file from the working directory, if there is one.
// Variables already set in the environment win.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// GetRatesURL returns the rate endpoint from env var or config, in that order.
func GetRatesURL(cfg Config) string {
	if u := os.Getenv(EnvRatesURL); u != "" {
		return u
	}
	return cfg.Rates.BaseURL
}

// GetOutputFile returns the summary path from env var or config, in that order.
func GetOutputFile(cfg Config) string {
	if p := os.Getenv(EnvOutput); p != "" {
		return p
	}
	if cfg.General.OutputFile == "" {
		return DefaultOutputFile
	}
	return cfg.General.OutputFile
}

// IsOffline reports whether rate lookups are disabled. A set but
// unparsable env value is ignored.
func IsOffline(cfg Config) bool {
	if v := os.Getenv(EnvOffline); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return cfg.Rates.Offline
}
