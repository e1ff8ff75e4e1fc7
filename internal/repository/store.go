// Package repository holds the local key-value store used to persist user
// state between runs: the task override map and the theme.
package repository

import "context"

// Keys stored by the application.
const (
	KeyTaskOverrides = "taskOverrides"
	KeyTheme         = "theme"
)

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value for key, replacing any previous value. The write is
	// durable when Set returns.
	Set(ctx context.Context, key, value string) error
	Close() error
}
