// Package migrate applies the versioned change-sets that define the board
// schema and records them in the schema_changelog table.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/database/migrations"
)

const changelogTable = "schema_changelog"

// Record is a row of the changelog table.
type Record struct {
	ID            string
	Author        string
	Filename      string
	Checksum      string
	AppliedAt     time.Time
	OrderExecuted int
}

func (r Record) key() string {
	return r.Filename + "::" + r.Author + ":" + r.ID
}

// StatusEntry describes one change-set as seen by Status.
// Orphaned entries are recorded in the changelog but missing from the files.
type StatusEntry struct {
	ID        string
	Author    string
	Filename  string
	Applied   bool
	AppliedAt *time.Time
	Orphaned  bool
	Modified  bool
}

// Runner applies change-sets to one database.
type Runner struct {
	db         *sql.DB
	dialect    database.Dialect
	changeSets []ChangeSet
	logger     *slog.Logger
}

// New returns a Runner for the change-sets embedded for the given dialect.
func New(db *sql.DB, dialect database.Dialect) (*Runner, error) {
	sub, err := fs.Sub(migrations.FS, string(dialect))
	if err != nil {
		return nil, fmt.Errorf("no change-sets for dialect %s: %w", dialect, err)
	}
	return NewFromFS(db, dialect, sub)
}

// NewFromFS returns a Runner for the change-set files at the root of fsys.
func NewFromFS(db *sql.DB, dialect database.Dialect, fsys fs.FS) (*Runner, error) {
	if db == nil {
		return nil, errors.New("sql db is required")
	}
	sets, err := LoadChangeSets(fsys)
	if err != nil {
		return nil, err
	}
	return &Runner{
		db:         db,
		dialect:    dialect,
		changeSets: sets,
		logger:     slog.Default(),
	}, nil
}

// ChangeSets returns the parsed change-sets in execution order.
func (r *Runner) ChangeSets() []ChangeSet {
	return r.changeSets
}

// Up applies every pending change-set, each in its own transaction, and
// returns the ones it applied. Nothing is applied if a recorded change-set
// was modified.
func (r *Runner) Up(ctx context.Context) ([]ChangeSet, error) {
	if err := r.ensureChangelog(ctx); err != nil {
		return nil, err
	}

	records, err := r.records(ctx)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]Record, len(records))
	order := 0
	for _, rec := range records {
		applied[rec.key()] = rec
		order = max(order, rec.OrderExecuted)
	}

	var pending []ChangeSet
	for _, cs := range r.changeSets {
		rec, ok := applied[cs.Key()]
		if !ok {
			pending = append(pending, cs)
			continue
		}
		if rec.Checksum != cs.Checksum {
			return nil, fmt.Errorf("%w: %s (recorded %s, found %s)",
				ErrChecksumMismatch, cs, short(rec.Checksum), short(cs.Checksum))
		}
	}

	done := make([]ChangeSet, 0, len(pending))
	for _, cs := range pending {
		order++
		if err := r.apply(ctx, cs, order); err != nil {
			return done, err
		}
		r.logger.Info("applied change-set", "file", cs.Filename, "id", cs.ID, "author", cs.Author)
		done = append(done, cs)
	}
	return done, nil
}

// Status reports every change-set and whether it has been applied.
func (r *Runner) Status(ctx context.Context) ([]StatusEntry, error) {
	if err := r.ensureChangelog(ctx); err != nil {
		return nil, err
	}
	records, err := r.records(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]Record, len(records))
	for _, rec := range records {
		byKey[rec.key()] = rec
	}

	entries := make([]StatusEntry, 0, len(r.changeSets))
	known := make(map[string]bool, len(r.changeSets))
	for _, cs := range r.changeSets {
		known[cs.Key()] = true
		entry := StatusEntry{ID: cs.ID, Author: cs.Author, Filename: cs.Filename}
		if rec, ok := byKey[cs.Key()]; ok {
			at := rec.AppliedAt
			entry.Applied = true
			entry.AppliedAt = &at
			entry.Modified = rec.Checksum != cs.Checksum
		}
		entries = append(entries, entry)
	}
	for _, rec := range records {
		if known[rec.key()] {
			continue
		}
		at := rec.AppliedAt
		entries = append(entries, StatusEntry{
			ID:        rec.ID,
			Author:    rec.Author,
			Filename:  rec.Filename,
			Applied:   true,
			AppliedAt: &at,
			Orphaned:  true,
		})
	}
	return entries, nil
}

// Pending returns the number of change-sets not yet applied.
func (r *Runner) Pending(ctx context.Context) (int, error) {
	entries, err := r.Status(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if !e.Applied {
			n++
		}
	}
	return n, nil
}

// Rollback undoes the last count applied change-sets, newest first, and
// returns the ones it rolled back. Every selected change-set must have
// rollback SQL, otherwise nothing is rolled back.
func (r *Runner) Rollback(ctx context.Context, count int) ([]ChangeSet, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if err := r.ensureChangelog(ctx); err != nil {
		return nil, err
	}
	records, err := r.records(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]ChangeSet, len(r.changeSets))
	for _, cs := range r.changeSets {
		byKey[cs.Key()] = cs
	}

	var targets []ChangeSet
	for i := len(records) - 1; i >= 0 && len(targets) < count; i-- {
		rec := records[i]
		cs, ok := byKey[rec.key()]
		if !ok {
			return nil, fmt.Errorf("%w: %s (%s:%s)", ErrUnknownChangeSet, rec.Filename, rec.Author, rec.ID)
		}
		if len(cs.Rollback) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRollback, cs)
		}
		targets = append(targets, cs)
	}

	done := make([]ChangeSet, 0, len(targets))
	for _, cs := range targets {
		if err := r.revert(ctx, cs); err != nil {
			return done, err
		}
		r.logger.Info("rolled back change-set", "file", cs.Filename, "id", cs.ID, "author", cs.Author)
		done = append(done, cs)
	}
	return done, nil
}

func (r *Runner) apply(ctx context.Context, cs ChangeSet, order int) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for i, stmt := range cs.Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply %s statement %d: %w", cs, i+1, err)
			}
		}
		_, err := tx.ExecContext(ctx, r.dialect.Rebind(
			`INSERT INTO `+changelogTable+` (id, author, filename, checksum, applied_at, order_executed)
			VALUES (?, ?, ?, ?, ?, ?)`),
			cs.ID, cs.Author, cs.Filename, cs.Checksum, time.Now().UTC(), order)
		if err != nil {
			return fmt.Errorf("record %s: %w", cs, err)
		}
		return nil
	})
}

func (r *Runner) revert(ctx context.Context, cs ChangeSet) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for i, stmt := range cs.Rollback {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("roll back %s statement %d: %w", cs, i+1, err)
			}
		}
		_, err := tx.ExecContext(ctx, r.dialect.Rebind(
			`DELETE FROM `+changelogTable+` WHERE id = ? AND author = ? AND filename = ?`),
			cs.ID, cs.Author, cs.Filename)
		if err != nil {
			return fmt.Errorf("unrecord %s: %w", cs, err)
		}
		return nil
	})
}

// inTx runs fn in a transaction. MySQL commits DDL implicitly, so there a
// failed change-set may be partially applied; SQLite and Postgres roll back.
func (r *Runner) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			r.logger.Error("failed to rollback migration transaction", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration transaction: %w", err)
	}
	return nil
}

func (r *Runner) ensureChangelog(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, changelogDDL(r.dialect)); err != nil {
		return fmt.Errorf("ensure %s table: %w", changelogTable, err)
	}
	return nil
}

// records returns the changelog in execution order.
func (r *Runner) records(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author, filename, checksum, applied_at, order_executed
		FROM `+changelogTable+` ORDER BY order_executed`)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", changelogTable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Author, &rec.Filename, &rec.Checksum,
			&rec.AppliedAt, &rec.OrderExecuted); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", changelogTable, err)
		}
		rec.AppliedAt = rec.AppliedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", changelogTable, err)
	}
	return records, nil
}

func changelogDDL(d database.Dialect) string {
	switch d {
	case database.DialectMySQL:
		return `CREATE TABLE IF NOT EXISTS ` + changelogTable + ` (
			id VARCHAR(191) NOT NULL,
			author VARCHAR(191) NOT NULL,
			filename VARCHAR(191) NOT NULL,
			checksum CHAR(64) NOT NULL,
			applied_at DATETIME(6) NOT NULL,
			order_executed INT NOT NULL,
			PRIMARY KEY (id, author, filename)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	case database.DialectPostgres:
		return `CREATE TABLE IF NOT EXISTS ` + changelogTable + ` (
			id TEXT NOT NULL,
			author TEXT NOT NULL,
			filename TEXT NOT NULL,
			checksum CHAR(64) NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL,
			order_executed INTEGER NOT NULL,
			PRIMARY KEY (id, author, filename)
		)`
	default:
		return `CREATE TABLE IF NOT EXISTS ` + changelogTable + ` (
			id TEXT NOT NULL,
			author TEXT NOT NULL,
			filename TEXT NOT NULL,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL,
			order_executed INTEGER NOT NULL,
			PRIMARY KEY (id, author, filename)
		)`
	}
}

func short(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
