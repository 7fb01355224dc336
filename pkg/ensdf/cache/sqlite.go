package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteBackend implements Backend with a SQLite database, giving a cache
// that survives restarts. It is suitable for single-instance deployments.
type SQLiteBackend struct {
	db *sql.DB

	getStmt     *sql.Stmt
	putStmt     *sql.Stmt
	deleteStmt  *sql.Stmt
	invalStmt   *sql.Stmt
	cleanupStmt *sql.Stmt
}

// SQLiteBackendConfig configures the SQLite backend.
type SQLiteBackendConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS datasets (
	mass      INTEGER NOT NULL,
	protons   INTEGER NOT NULL,
	name      TEXT    NOT NULL,
	body      TEXT    NOT NULL,
	stored_at INTEGER NOT NULL,
	PRIMARY KEY (mass, protons, name)
);
CREATE INDEX IF NOT EXISTS idx_datasets_stored_at ON datasets(stored_at);
`

// NewSQLiteBackend creates a SQLite backend with default settings.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	return NewSQLiteBackendWithConfig(SQLiteBackendConfig{Path: path})
}

// NewSQLiteBackendWithConfig creates a SQLite backend with custom settings.
func NewSQLiteBackendWithConfig(cfg SQLiteBackendConfig) (*SQLiteBackend, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite cache path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite cache schema: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.prepare(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) prepare() error {
	var err error
	if b.getStmt, err = b.db.Prepare(
		`SELECT body FROM datasets WHERE mass = ? AND protons = ? AND name = ?`); err != nil {
		return fmt.Errorf("prepare get: %w", err)
	}
	if b.putStmt, err = b.db.Prepare(
		`INSERT INTO datasets (mass, protons, name, body, stored_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (mass, protons, name) DO UPDATE SET body = excluded.body, stored_at = excluded.stored_at`); err != nil {
		return fmt.Errorf("prepare put: %w", err)
	}
	if b.deleteStmt, err = b.db.Prepare(
		`DELETE FROM datasets WHERE mass = ? AND protons = ? AND name = ?`); err != nil {
		return fmt.Errorf("prepare delete: %w", err)
	}
	if b.invalStmt, err = b.db.Prepare(
		`DELETE FROM datasets WHERE mass = ?`); err != nil {
		return fmt.Errorf("prepare invalidate: %w", err)
	}
	if b.cleanupStmt, err = b.db.Prepare(
		`DELETE FROM datasets WHERE stored_at < ?`); err != nil {
		return fmt.Errorf("prepare cleanup: %w", err)
	}
	return nil
}

// Get implements Backend.
func (b *SQLiteBackend) Get(ctx context.Context, key Key) (string, bool, error) {
	var body string
	err := b.getStmt.QueryRowContext(ctx, key.Mass, key.Protons, key.Name).Scan(&body)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite cache get: %w", err)
	}
	return body, true, nil
}

// Put implements Backend.
func (b *SQLiteBackend) Put(ctx context.Context, key Key, text string) error {
	_, err := b.putStmt.ExecContext(ctx, key.Mass, key.Protons, key.Name, text, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("sqlite cache put: %w", err)
	}
	return nil
}

// Delete implements Backend.
func (b *SQLiteBackend) Delete(ctx context.Context, key Key) error {
	if _, err := b.deleteStmt.ExecContext(ctx, key.Mass, key.Protons, key.Name); err != nil {
		return fmt.Errorf("sqlite cache delete: %w", err)
	}
	return nil
}

// InvalidateMass implements Backend.
func (b *SQLiteBackend) InvalidateMass(ctx context.Context, mass int) error {
	if _, err := b.invalStmt.ExecContext(ctx, mass); err != nil {
		return fmt.Errorf("sqlite cache invalidate: %w", err)
	}
	return nil
}

// Cleanup implements Backend.
func (b *SQLiteBackend) Cleanup(ctx context.Context, olderThan time.Time) (int, error) {
	res, err := b.cleanupStmt.ExecContext(ctx, olderThan.Unix())
	if err != nil {
		return 0, fmt.Errorf("sqlite cache cleanup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite cache cleanup: %w", err)
	}
	return int(n), nil
}

// Close implements Backend.
func (b *SQLiteBackend) Close() error {
	for _, stmt := range []*sql.Stmt{b.getStmt, b.putStmt, b.deleteStmt, b.invalStmt, b.cleanupStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return b.db.Close()
}
