// Package config loads application configuration from environment
// variables.  Every value has a sensible default so the program runs
// with no environment at all; a .env file, when present, is loaded
// by main before this package is consulted.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	DataDir          string // directory holding the data files
	CustomersFile    string // customers file name inside DataDir
	ResourcesFile    string // resources file name inside DataDir
	ReservationsFile string // reservations file name inside DataDir
	ReportFile       string // PDF report file name inside DataDir
}

// Load reads configuration values from environment variables,
// falling back to defaults for anything unset.
func Load() Config {
	return Config{
		Env:              getenv("APP_ENV", "dev"),
		DataDir:          getenv("DATA_DIR", "data"),
		CustomersFile:    getenv("CUSTOMERS_FILE", "customers.csv"),
		ResourcesFile:    getenv("RESOURCES_FILE", "resources.csv"),
		ReservationsFile: getenv("RESERVATIONS_FILE", "reservations.csv"),
		ReportFile:       getenv("REPORT_FILE", "booking-report.pdf"),
	}
}

// getenv retrieves an environment variable, returning fallback when
// the variable is unset or empty.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// CustomersPath returns the full path of the customers file.
func (c Config) CustomersPath() string { return filepath.Join(c.DataDir, c.CustomersFile) }

// ResourcesPath returns the full path of the resources file.
func (c Config) ResourcesPath() string { return filepath.Join(c.DataDir, c.ResourcesFile) }

// ReservationsPath returns the full path of the reservations file.
func (c Config) ReservationsPath() string { return filepath.Join(c.DataDir, c.ReservationsFile) }

// ReportPath returns the full path of the PDF report file.
func (c Config) ReportPath() string { return filepath.Join(c.DataDir, c.ReportFile) }
