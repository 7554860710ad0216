// Package store is the SQLite persistence layer for the scan index: every
// definition found across a repository, queryable by language, kind, and
// name. The index is a reporting surface only; locate operations always
// re-match fresh source text.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite data access layer for the scan index.
type Store struct {
	db *sql.DB
}

// New opens a SQLite database at dbPath with WAL mode enabled.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS files (
  id              INTEGER PRIMARY KEY,
  path            TEXT NOT NULL UNIQUE,
  language        TEXT NOT NULL,
  hash            TEXT,
  last_scanned    TIMESTAMP
);

CREATE TABLE IF NOT EXISTS definitions (
  id              INTEGER PRIMARY KEY,
  file_id         INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
  kind            TEXT NOT NULL,
  name            TEXT NOT NULL,
  enclosing_class TEXT NOT NULL DEFAULT '',
  start_line      INTEGER NOT NULL,
  start_col       INTEGER NOT NULL,
  end_line        INTEGER NOT NULL,
  end_col         INTEGER NOT NULL,
  body_start_line INTEGER NOT NULL,
  body_start_col  INTEGER NOT NULL,
  body_end_line   INTEGER NOT NULL,
  body_end_col    INTEGER NOT NULL,
  has_docstring   BOOLEAN NOT NULL DEFAULT FALSE,
  decorator_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_definitions_name ON definitions(name);
CREATE INDEX IF NOT EXISTS idx_definitions_file ON definitions(file_id);
CREATE INDEX IF NOT EXISTS idx_files_language ON files(language);
`

// FileByPath returns the file record for a path, or nil if absent.
func (s *Store) FileByPath(path string) (*File, error) {
	f := &File{}
	err := s.db.QueryRow(
		"SELECT id, path, language, hash, last_scanned FROM files WHERE path = ?", path,
	).Scan(&f.ID, &f.Path, &f.Language, &f.Hash, &f.LastScanned)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file by path: %w", err)
	}
	return f, nil
}

// ReplaceFile deletes any prior record for f.Path and inserts the file with
// its definitions in one transaction.
func (s *Store) ReplaceFile(f *File, defs []Definition) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace file: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM files WHERE path = ?", f.Path); err != nil {
		return fmt.Errorf("replace file: delete old: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO files (path, language, hash, last_scanned) VALUES (?, ?, ?, ?)",
		f.Path, f.Language, f.Hash, f.LastScanned,
	)
	if err != nil {
		return fmt.Errorf("replace file: insert: %w", err)
	}
	fileID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("replace file: last id: %w", err)
	}
	f.ID = fileID

	stmt, err := tx.Prepare(`INSERT INTO definitions
		(file_id, kind, name, enclosing_class,
		 start_line, start_col, end_line, end_col,
		 body_start_line, body_start_col, body_end_line, body_end_col,
		 has_docstring, decorator_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("replace file: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range defs {
		d := &defs[i]
		if _, err := stmt.Exec(
			fileID, d.Kind, d.Name, d.EnclosingClass,
			d.StartLine, d.StartCol, d.EndLine, d.EndCol,
			d.BodyStartLine, d.BodyStartCol, d.BodyEndLine, d.BodyEndCol,
			d.HasDocstring, d.DecoratorCount,
		); err != nil {
			return fmt.Errorf("replace file: insert definition %q: %w", d.Name, err)
		}
	}

	return tx.Commit()
}

// Filter narrows List results. Zero-value fields are no restriction.
type Filter struct {
	Language string
	Kind     string
	Name     string
}

// List returns definitions matching the filter, ordered by file path and
// source position.
func (s *Store) List(f Filter) ([]Definition, error) {
	query := `SELECT d.id, d.file_id, files.path, files.language,
		d.kind, d.name, d.enclosing_class,
		d.start_line, d.start_col, d.end_line, d.end_col,
		d.body_start_line, d.body_start_col, d.body_end_line, d.body_end_col,
		d.has_docstring, d.decorator_count
		FROM definitions d JOIN files ON files.id = d.file_id`
	var conds []string
	var args []any
	if f.Language != "" {
		conds = append(conds, "files.language = ?")
		args = append(args, f.Language)
	}
	if f.Kind != "" {
		conds = append(conds, "d.kind = ?")
		args = append(args, f.Kind)
	}
	if f.Name != "" {
		conds = append(conds, "d.name = ?")
		args = append(args, f.Name)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY files.path, d.start_line, d.start_col"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var d Definition
		if err := rows.Scan(
			&d.ID, &d.FileID, &d.Path, &d.Language,
			&d.Kind, &d.Name, &d.EnclosingClass,
			&d.StartLine, &d.StartCol, &d.EndLine, &d.EndCol,
			&d.BodyStartLine, &d.BodyStartCol, &d.BodyEndLine, &d.BodyEndCol,
			&d.HasDocstring, &d.DecoratorCount,
		); err != nil {
			return nil, fmt.Errorf("list definitions: scan: %w", err)
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

// CountByLanguage returns how many definitions the index holds per language.
func (s *Store) CountByLanguage() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT files.language, COUNT(*) FROM definitions
		 JOIN files ON files.id = definitions.file_id GROUP BY files.language`)
	if err != nil {
		return nil, fmt.Errorf("count by language: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var lang string
		var n int
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, fmt.Errorf("count by language: scan: %w", err)
		}
		counts[lang] = n
	}
	return counts, rows.Err()
}
