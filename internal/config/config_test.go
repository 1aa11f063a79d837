package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup Load performs at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("BOARD_THEME_FILE", "")
	t.Chdir(tempDir)
	return tempDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "#874BFD", cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)

	writeFile(t, filepath.Join(tempDir, "board", "config.yaml"), `database:
  driver: mysql
  host: db.internal
  user: board
  password: secret
  name: board
log:
  level: debug
theme:
  accent: "#FFFFFF"
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port, "port should default for mysql")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
	// Unspecified values should use defaults
	assert.Equal(t, "#D75FD7", cfg.ColorScheme.Title)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	tempDir := isolate(t)

	_, err := Load(Options{ConfigPath: filepath.Join(tempDir, "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tempDir := isolate(t)

	writeFile(t, filepath.Join(tempDir, "board", "config.yaml"), `database:
  driver: sqlite
  path: /tmp/from-file.db
`)
	t.Setenv("BOARD_DB_PATH", "/tmp/from-env.db")
	t.Setenv("BOARD_LOG_LEVEL", "warn")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	tempDir := isolate(t)

	envPath := filepath.Join(tempDir, "board.env")
	writeFile(t, envPath, "BOARD_DB_DRIVER=postgres\nBOARD_DB_DSN=postgres://u:p@localhost/board\n")
	// godotenv never overrides variables that are already set
	t.Setenv("BOARD_DB_DRIVER", "")
	os.Unsetenv("BOARD_DB_DRIVER")
	t.Setenv("BOARD_DB_DSN", "")
	os.Unsetenv("BOARD_DB_DSN")

	cfg, err := Load(Options{EnvFile: envPath})
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost/board", cfg.Database.DSN)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		wantErr bool
	}{
		{"sqlite needs nothing", DatabaseConfig{Driver: DriverSQLite}, false},
		{"mysql with dsn", DatabaseConfig{Driver: DriverMySQL, DSN: "u:p@tcp(h)/d"}, false},
		{"mysql with fields", DatabaseConfig{Driver: DriverMySQL, Host: "h", User: "u", Name: "d"}, false},
		{"mysql missing host", DatabaseConfig{Driver: DriverMySQL, User: "u", Name: "d"}, true},
		{"postgres missing everything", DatabaseConfig{Driver: DriverPostgres}, true},
		{"unknown driver", DatabaseConfig{Driver: "oracle"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.db}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadNormalizesDriverAliases(t *testing.T) {
	tests := []struct {
		driver   string
		want     string
		wantPort int
	}{
		{"mariadb", DriverMySQL, 3306},
		{"MariaDB", DriverMySQL, 3306},
		{"postgresql", DriverPostgres, 5432},
		{"pg", DriverPostgres, 5432},
		{"sqlite3", DriverSQLite, 0},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			tempDir := isolate(t)
			writeFile(t, filepath.Join(tempDir, "board", "config.yaml"),
				"database:\n  driver: "+tt.driver+"\n  dsn: placeholder\n")

			cfg, err := Load(Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Database.Driver)
			assert.Equal(t, tt.wantPort, cfg.Database.Port)
		})
	}
}

func TestThemeFileMerge(t *testing.T) {
	tempDir := isolate(t)

	themePath := filepath.Join(tempDir, "theme.yaml")
	writeFile(t, themePath, "theme:\n  accent: \"#123456\"\n")
	t.Setenv("BOARD_THEME_FILE", themePath)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#585858", cfg.ColorScheme.Subtle)
}

func TestColorSchemePresets(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()
	assert.Equal(t, "#FFFFFF", scheme.Accent)

	def := DefaultColorScheme()
	mono := MonochromeColorScheme()
	assert.NotEqual(t, def.Accent, mono.Accent)
}
