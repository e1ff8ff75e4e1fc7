package config

import (
	"fmt"
	"os"

	"task-viewer/internal/repository"
	"task-viewer/internal/repository/file"
	"task-viewer/internal/repository/sqlite"
)

// CreateStore creates the configured key-value store, creating its directory if needed
func CreateStore(config *Config) (repository.Store, error) {
	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := config.GetStorePath()
	switch config.Storage.Backend {
	case BackendFile:
		return file.New(path), nil
	case BackendSQLite:
		repo, err := sqlite.NewWithOptions(path, sqlite.Options{
			QueryTimeout: config.Storage.QueryTimeout,
			WriteTimeout: config.Storage.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", config.Storage.Backend)}
	}
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (repository.Store, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
