package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the local SQLite database holding the settings record,
// the conversation history and the prediction bookkeeping
type DB struct {
	db   *sql.DB
	path string
}

// New creates a new database instance for the given file path
func New(path string) *DB {
	return &DB{path: path}
}

// Connect opens the SQLite database and ensures the schema exists
func (d *DB) Connect(ctx context.Context) error {
	dbPath := d.path

	if dbPath != ":memory:" {
		// Expand the path (handle ~ and relative paths)
		if strings.HasPrefix(dbPath, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		} else if !filepath.IsAbs(dbPath) {
			absPath, err := filepath.Abs(dbPath)
			if err != nil {
				return fmt.Errorf("failed to resolve absolute path: %w", err)
			}
			dbPath = absPath
		}

		// Ensure the directory exists
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database at path '%s': %w", dbPath, err)
	}

	// Every pooled connection to :memory: opens a separate database
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping SQLite database at path '%s': %w", dbPath, err)
	}

	d.db = db

	if err := d.createTables(ctx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks the database connection
func (d *DB) Ping(ctx context.Context) error {
	if d.db == nil {
		return fmt.Errorf("not connected to database")
	}
	return d.db.PingContext(ctx)
}

// Handle exposes the underlying *sql.DB for the migration runner
func (d *DB) Handle() *sql.DB {
	return d.db
}

// createTables creates necessary tables
func (d *DB) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS conversations (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			conversation_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			domain TEXT,
			confidence REAL,
			result_json TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (conversation_id) REFERENCES conversations(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_conversation
			ON messages(conversation_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}
