package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-viewer/internal/errors"
	"task-viewer/internal/logging"
	"task-viewer/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options tunes how long individual statements may run
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository is a key-value store backed by a SQLite database
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

// New creates a new SQLite repository instance without statement timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository instance
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened sqlite store %s\n", dbPath)
	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetEntry retrieves a kv entry by key
func (r *SQLiteRepository) GetEntry(ctx context.Context, key string) (*Entry, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM kv WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "key", key, key)
}

// Get returns the value stored for key
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := r.GetEntry(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set inserts or replaces the value stored for key
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if err := ExecuteWithRowsAffected(ctx, r.db, query, "key", key, key, value, FormatTimeForDB(r.now())); err != nil {
		return err
	}
	logging.Debugf("stored %s (%d bytes)\n", key, len(value))
	return nil
}
