package sqlite

import "time"

// Entry represents one row of the kv table
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
