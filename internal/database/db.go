// Package database opens the board database and provides the repositories
// for boards, columns, cards and blocks on top of it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/board/internal/config"
)

// Open connects to the database described by cfg and verifies the connection.
// The schema is not touched; run the migrations separately.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", err
	}

	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, "", err
	}

	if dialect == DialectSQLite && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := configure(ctx, db, dialect, cfg, dsn); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, "", err
	}

	slog.Info("database opened", "driver", dialect)
	return db, dialect, nil
}

func configure(ctx context.Context, db *sql.DB, dialect Dialect, cfg config.DatabaseConfig, dsn string) error {
	if dialect == DialectSQLite {
		// SQLite benefits from a single writer connection, and an in-memory
		// database only exists on the connection that created it.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		pragmas := []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA busy_timeout = 5000",
		}
		if dsn != ":memory:" {
			pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
		}
		for _, p := range pragmas {
			if _, err := db.ExecContext(ctx, p); err != nil {
				return fmt.Errorf("failed to run %q: %w", p, err)
			}
		}
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// BuildDSN returns the driver specific data source name for cfg.
func BuildDSN(cfg config.DatabaseConfig) (string, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return "", err
	}

	switch dialect {
	case DialectSQLite:
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		if cfg.Path != "" {
			return cfg.Path, nil
		}
		dir, err := config.DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "board.db"), nil

	case DialectMySQL:
		mc := mysql.NewConfig()
		if cfg.DSN != "" {
			parsed, err := mysql.ParseDSN(cfg.DSN)
			if err != nil {
				return "", fmt.Errorf("invalid mysql dsn: %w", err)
			}
			mc = parsed
		} else {
			mc.User = cfg.User
			mc.Passwd = cfg.Password
			mc.Net = "tcp"
			mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
			mc.DBName = cfg.Name
		}
		// Timestamps are scanned into time.Time and stored in UTC. Updates
		// report matched rows so an unchanged value is not mistaken for a
		// missing one.
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.ClientFoundRows = true
		return mc.FormatDSN(), nil

	case DialectPostgres:
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pqQuote(cfg.Host), cfg.Port, pqQuote(cfg.User), pqQuote(cfg.Password),
			pqQuote(cfg.Name), pqQuote(sslMode)), nil
	}

	return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// pqQuote quotes a keyword/value connection parameter when it needs it.
func pqQuote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
