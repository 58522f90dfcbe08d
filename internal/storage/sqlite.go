// Package storage caches the fetched program catalog in SQLite so the
// CLI works offline between refreshes.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/openabit/advisor/internal/common"
	"github.com/openabit/advisor/internal/model"
)

// SQLiteStorage persists catalogs in a local SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens (and if needed creates) the catalog database.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS programs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			institute TEXT NOT NULL DEFAULT '',
			form TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			cost TEXT NOT NULL DEFAULT '',
			duration INTEGER NOT NULL DEFAULT 4,
			dormitory INTEGER NOT NULL DEFAULT 0,
			military_center INTEGER NOT NULL DEFAULT 0,
			accreditation INTEGER NOT NULL DEFAULT 0,
			fetched_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			program_id INTEGER NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			credits INTEGER NOT NULL,
			semester INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_program ON courses(program_id, position)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// SaveCatalog replaces the cached catalog atomically.
func (s *SQLiteStorage) SaveCatalog(ctx context.Context, programs []model.Program) error {
	if len(programs) == 0 {
		return common.ErrEmptyCatalog
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("failed to clear courses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM programs`); err != nil {
		return fmt.Errorf("failed to clear programs: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range programs {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO programs (name, url, description, institute, form, language, cost,
				duration, dormitory, military_center, accreditation, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.URL, p.Description, p.Institute, p.Form, p.Language, p.Cost,
			p.Duration, p.Dormitory, p.MilitaryCenter, p.Accreditation, now)
		if err != nil {
			return fmt.Errorf("failed to insert program %q: %w", p.Name, err)
		}

		programID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get program id: %w", err)
		}

		for i, c := range p.Courses {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO courses (program_id, position, name, description, category, credits, semester)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				programID, i, c.Name, c.Description, string(c.Category), c.Credits, c.Semester); err != nil {
				return fmt.Errorf("failed to insert course %q: %w", c.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// LoadCatalog returns the cached catalog in insertion order. An empty
// cache returns ErrEmptyCatalog.
func (s *SQLiteStorage) LoadCatalog(ctx context.Context) ([]model.Program, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, description, institute, form, language, cost,
			duration, dormitory, military_center, accreditation
		FROM programs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var programs []model.Program
	var ids []int64

	for rows.Next() {
		var p model.Program
		var id int64
		if err := rows.Scan(&id, &p.Name, &p.URL, &p.Description, &p.Institute,
			&p.Form, &p.Language, &p.Cost, &p.Duration,
			&p.Dormitory, &p.MilitaryCenter, &p.Accreditation); err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, p)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate programs: %w", err)
	}

	if len(programs) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	for i, id := range ids {
		courses, err := s.loadCourses(ctx, id)
		if err != nil {
			return nil, err
		}
		programs[i].Courses = courses
	}

	return programs, nil
}

func (s *SQLiteStorage) loadCourses(ctx context.Context, programID int64) ([]model.Course, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description, category, credits, semester
		FROM courses WHERE program_id = ? ORDER BY position`, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		var category string
		if err := rows.Scan(&c.Name, &c.Description, &category, &c.Credits, &c.Semester); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		c.Category = model.CourseCategory(category)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

// FetchedAt returns when the cached catalog was saved. sql.ErrNoRows
// maps to ErrEmptyCatalog.
func (s *SQLiteStorage) FetchedAt(ctx context.Context) (time.Time, error) {
	var ts time.Time
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at FROM programs ORDER BY id LIMIT 1`).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, common.ErrEmptyCatalog
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query fetch time: %w", err)
	}
	return ts, nil
}
