package services

import (
	"context"
	"fmt"
	"testing"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/repository"
	"task-viewer/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

// fakeSource serves a fixed task list the way the remote API would
type fakeSource struct {
	tasks     []domain.Task
	err       error
	listCalls int
}

func (f *fakeSource) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Task(nil), f.tasks...), nil
}

func (f *fakeSource) FetchTask(ctx context.Context, id int64) (domain.Task, error) {
	if f.err != nil {
		return domain.Task{}, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", fmt.Sprint(id))
}

// generateTasks returns tasks 1..n; every third one is completed remotely
func generateTasks(n int) []domain.Task {
	tasks := make([]domain.Task, 0, n)
	for i := 1; i <= n; i++ {
		tasks = append(tasks, domain.Task{
			ID:        int64(i),
			Title:     fmt.Sprintf("task number %d", i),
			UserID:    int64((i-1)/20 + 1),
			Completed: i%3 == 0,
		})
	}
	return tasks
}

func taskIDs(tasks []domain.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func setupStore(t *testing.T) repository.Store {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupTaskService(t *testing.T, tasks []domain.Task) (TaskService, OverrideService, *fakeSource) {
	source := &fakeSource{tasks: tasks}
	overrides := NewOverrideService(setupStore(t))
	return NewTaskService(source, overrides, 7), overrides, source
}
