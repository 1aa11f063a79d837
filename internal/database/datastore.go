package database

import (
	"context"
	"database/sql"
)

// DataStore defines the unified interface for all data operations needed by
// the services. It is composed of smaller, domain-specific interfaces so
// consumers can depend on only what they use.
type DataStore interface {
	BoardRepository
	ColumnRepository
	CardRepository
	BlockRepository

	// InTx runs fn inside one transaction. Inside fn only the Queries passed
	// in may be used: SQLite runs on a single connection and any query on
	// the outer store would wait for the transaction forever.
	InTx(ctx context.Context, fn func(q *Queries) error) error
}

// Store is the DataStore backed by a *sql.DB.
type Store struct {
	*Queries
	db *sql.DB
}

var _ DataStore = (*Store)(nil)

// NewStore wraps an open database connection.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		Queries: New(db, dialect),
		db:      db,
	}
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the SQL dialect of the underlying database.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) InTx(ctx context.Context, fn func(q *Queries) error) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(s.Queries.WithTx(tx))
	})
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
