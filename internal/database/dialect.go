package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/board/internal/config"
)

// Dialect identifies the SQL flavour spoken by the underlying database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect maps a configured driver name onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch config.NormalizeDriver(s) {
	case config.DriverSQLite:
		return DialectSQLite, nil
	case config.DriverMySQL:
		return DialectMySQL, nil
	case config.DriverPostgres:
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

// DriverName returns the name the database/sql driver registered itself under.
func (d Dialect) DriverName() string {
	return string(d)
}

func (d Dialect) String() string {
	return string(d)
}

// Rebind rewrites '?' placeholders into the form the dialect expects.
// Question marks inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// supportsLastInsertID reports whether sql.Result.LastInsertId works for the dialect.
// lib/pq does not implement it, so inserts use RETURNING instead.
func (d Dialect) supportsLastInsertID() bool {
	return d != DialectPostgres
}
