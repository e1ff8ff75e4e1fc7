package remote

import (
	"context"
	"sync"
	"time"

	"task-viewer/internal/domain"
	"task-viewer/internal/logging"
)

// Source is anything that can produce the remote task list
type Source interface {
	FetchTasks(ctx context.Context) ([]domain.Task, error)
	FetchTask(ctx context.Context, id int64) (domain.Task, error)
}

// CachedSource keeps the last successful task list for ttl so that page
// navigation re-runs the merge against data already fetched. A zero ttl
// disables caching. Failed fetches are never cached.
type CachedSource struct {
	src Source
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	tasks []domain.Task
	exp   time.Time
}

// NewCachedSource wraps src with a snapshot cache
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, ttl: ttl, now: time.Now}
}

// FetchTasks returns the cached snapshot while it is fresh, otherwise fetches a new one
func (c *CachedSource) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	if tasks, ok := c.snapshot(); ok {
		logging.Debugf("task list served from cache (%d tasks)\n", len(tasks))
		return tasks, nil
	}

	tasks, err := c.src.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.tasks = append([]domain.Task(nil), tasks...)
		c.exp = c.now().Add(c.ttl)
		c.mu.Unlock()
	}
	return tasks, nil
}

// FetchTask serves id from a fresh snapshot when it is there and asks the source otherwise
func (c *CachedSource) FetchTask(ctx context.Context, id int64) (domain.Task, error) {
	if tasks, ok := c.snapshot(); ok {
		for _, t := range tasks {
			if t.ID == id {
				logging.Debugf("task %d served from cache\n", id)
				return t, nil
			}
		}
	}
	return c.src.FetchTask(ctx, id)
}

// Invalidate drops the snapshot
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = nil
	c.exp = time.Time{}
}

// snapshot returns a copy of the cached list so callers cannot mutate it
func (c *CachedSource) snapshot() ([]domain.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tasks == nil || !c.now().Before(c.exp) {
		return nil, false
	}
	return append([]domain.Task(nil), c.tasks...), true
}
