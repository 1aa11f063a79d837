package migrate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const (
	formattedHeader = "-- liquibase formatted sql"
	changeSetPrefix = "-- changeset "
	rollbackPrefix  = "-- rollback "
	defaultAuthor   = "system"
)

// ChangeSet is one unit of schema change, identified by file, author and id.
type ChangeSet struct {
	ID         string
	Author     string
	Filename   string
	Statements []string
	Rollback   []string
	Checksum   string
}

// Key uniquely identifies the change-set in the changelog.
func (c ChangeSet) Key() string {
	return c.Filename + "::" + c.Author + ":" + c.ID
}

func (c ChangeSet) String() string {
	return fmt.Sprintf("%s (%s:%s)", c.Filename, c.Author, c.ID)
}

// LoadChangeSets parses every .sql file at the root of fsys in name order.
func LoadChangeSets(fsys fs.FS) ([]ChangeSet, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read change-set dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var all []ChangeSet
	seen := make(map[string]string)
	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read change-set file %s: %w", name, err)
		}
		sets, err := ParseFile(name, string(content))
		if err != nil {
			return nil, err
		}
		for _, cs := range sets {
			id := cs.Author + ":" + cs.ID
			if prev, ok := seen[id]; ok {
				return nil, fmt.Errorf("%w: %s: change-set %s already defined in %s",
					ErrInvalidChangeSet, name, id, prev)
			}
			seen[id] = name
		}
		all = append(all, sets...)
	}
	return all, nil
}

// ParseFile parses a Liquibase formatted SQL file. A file without the
// formatted header is treated as a single change-set named after the file.
func ParseFile(name, content string) ([]ChangeSet, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	if !isFormatted(lines) {
		cs := ChangeSet{
			ID:         strings.TrimSuffix(path.Base(name), ".sql"),
			Author:     defaultAuthor,
			Filename:   name,
			Statements: splitStatements(lines),
		}
		if len(cs.Statements) == 0 {
			return nil, fmt.Errorf("%w: %s: no statements", ErrInvalidChangeSet, name)
		}
		cs.Checksum = checksum(cs.Statements)
		return []ChangeSet{cs}, nil
	}

	var (
		sets     []ChangeSet
		current  *ChangeSet
		body     []string
		rollback []string
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		current.Statements = splitStatements(body)
		current.Rollback = splitStatements(rollback)
		if len(current.Statements) == 0 {
			return fmt.Errorf("%w: %s: change-set %s:%s has no statements",
				ErrInvalidChangeSet, name, current.Author, current.ID)
		}
		current.Checksum = checksum(current.Statements)
		sets = append(sets, *current)
		current, body, rollback = nil, nil, nil
		return nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		switch {
		case strings.EqualFold(trimmed, formattedHeader):
			continue

		case strings.HasPrefix(strings.ToLower(trimmed), changeSetPrefix):
			if err := flush(); err != nil {
				return nil, err
			}
			author, id, err := parseChangeSetLine(trimmed[len(changeSetPrefix):])
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: %v", ErrInvalidChangeSet, name, lineNo, err)
			}
			for _, cs := range sets {
				if cs.Author == author && cs.ID == id {
					return nil, fmt.Errorf("%w: %s:%d: duplicate change-set %s:%s",
						ErrInvalidChangeSet, name, lineNo, author, id)
				}
			}
			current = &ChangeSet{ID: id, Author: author, Filename: name}

		case strings.HasPrefix(strings.ToLower(trimmed), rollbackPrefix):
			if current == nil {
				return nil, fmt.Errorf("%w: %s:%d: rollback outside of a change-set",
					ErrInvalidChangeSet, name, lineNo)
			}
			rollback = append(rollback, strings.TrimSpace(trimmed[len(rollbackPrefix):]))

		case trimmed == "" || strings.HasPrefix(trimmed, "--"):
			continue

		default:
			if current == nil {
				return nil, fmt.Errorf("%w: %s:%d: statement outside of a change-set",
					ErrInvalidChangeSet, name, lineNo)
			}
			body = append(body, line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: %s: no change-sets", ErrInvalidChangeSet, name)
	}
	return sets, nil
}

func isFormatted(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.EqualFold(trimmed, formattedHeader)
	}
	return false
}

// parseChangeSetLine reads "author:id" plus optional attributes, which are ignored.
func parseChangeSetLine(rest string) (author, id string, err error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", "", fmt.Errorf("changeset line needs author:id")
	}
	author, id, ok := strings.Cut(fields[0], ":")
	if !ok || author == "" || id == "" {
		return "", "", fmt.Errorf("malformed changeset %q, want author:id", fields[0])
	}
	return author, id, nil
}

// splitStatements groups lines into statements ending with ';' at end of
// line. Comment lines are dropped; a trailing unterminated statement is kept.
func splitStatements(lines []string) []string {
	var (
		stmts []string
		cur   []string
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur = append(cur, trimmed)
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(strings.TrimSuffix(strings.Join(cur, "\n"), ";"))
			if stmt != "" {
				stmts = append(stmts, stmt)
			}
			cur = nil
		}
	}
	if len(cur) > 0 {
		stmts = append(stmts, strings.Join(cur, "\n"))
	}
	return stmts
}

// checksum hashes the normalized statements, so indentation changes do
// not count as a modification.
func checksum(stmts []string) string {
	sum := sha256.Sum256([]byte(strings.Join(stmts, "\n;\n")))
	return hex.EncodeToString(sum[:])
}
