// Package config loads application settings from a YAML file, a .env file and
// BOARD_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// NormalizeDriver maps common driver spellings (sqlite3, mariadb, postgresql,
// pg) onto the supported driver names. Unknown names are returned lowercased.
func NormalizeDriver(driver string) string {
	d := strings.ToLower(strings.TrimSpace(driver))
	switch d {
	case "", "sqlite3":
		return DriverSQLite
	case "mariadb":
		return DriverMySQL
	case "postgresql", "pg":
		return DriverPostgres
	}
	return d
}

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database" envPrefix:"BOARD_DB_"`
	Log         LogConfig      `yaml:"log" envPrefix:"BOARD_LOG_"`
	Export      ExportConfig   `yaml:"export" envPrefix:"BOARD_EXPORT_"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig describes how to reach the relational database.
// DSN, when set, wins over the individual connection fields.
type DatabaseConfig struct {
	Driver       string `yaml:"driver" env:"DRIVER"`
	DSN          string `yaml:"dsn" env:"DSN"`
	Path         string `yaml:"path" env:"PATH"` // sqlite only
	Host         string `yaml:"host" env:"HOST"`
	Port         int    `yaml:"port" env:"PORT"`
	User         string `yaml:"user" env:"USER"`
	Password     string `yaml:"password" env:"PASSWORD"`
	Name         string `yaml:"name" env:"NAME"`
	SSLMode      string `yaml:"sslmode" env:"SSLMODE"` // postgres only
	MaxOpenConns int    `yaml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
}

// LogConfig controls where and how verbosely the application logs
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// ExportConfig holds the S3-compatible bucket used by board exports
type ExportConfig struct {
	Endpoint     string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region       string `yaml:"region" env:"S3_REGION"`
	Bucket       string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey    string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey    string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	UsePathStyle bool   `yaml:"use_path_style" env:"S3_USE_PATH_STYLE"`
}

// Options selects the files Load reads. Empty values use the defaults.
type Options struct {
	ConfigPath string
	EnvFile    string
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Region: "us-east-1",
		},
		ColorScheme: DefaultColorScheme(),
	}
	return cfg
}

// Load builds the configuration: defaults, then the YAML file, then the .env
// file, then BOARD_* environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	configPath := opts.ConfigPath
	explicit := configPath != ""
	if !explicit {
		path, err := getConfigPath()
		if err == nil {
			configPath = path
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// no config file, keep defaults
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	loadThemeFile(cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads variables from a dotenv file without overriding the
// process environment. The default ./.env is optional.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// loadThemeFile merges the theme from BOARD_THEME_FILE, if set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv("BOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		cfg.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Validate reports configuration that cannot possibly work
func (c *Config) Validate() error {
	db := c.Database
	switch db.Driver {
	case DriverSQLite:
		return nil
	case DriverMySQL, DriverPostgres:
		if db.DSN != "" {
			return nil
		}
		var missing []string
		if db.Host == "" {
			missing = append(missing, "host")
		}
		if db.User == "" {
			missing = append(missing, "user")
		}
		if db.Name == "" {
			missing = append(missing, "name")
		}
		if len(missing) > 0 {
			return fmt.Errorf("database %s requires dsn or %s", db.Driver, strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q (must be: sqlite, mysql, postgres)", db.Driver)
	}
}

// DataDir returns ~/.board, where the default database and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".board"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "board", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "board", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Database.Driver = NormalizeDriver(c.Database.Driver)
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case DriverMySQL:
			c.Database.Port = 3306
		case DriverPostgres:
			c.Database.Port = 5432
		}
	}
	if c.Database.Driver == DriverPostgres && c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
