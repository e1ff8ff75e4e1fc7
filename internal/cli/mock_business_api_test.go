package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"testing"

	"task-viewer/internal/api"
	"task-viewer/internal/config"
	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/services"
)

// mockBusinessAPI implements the BusinessAPI interface for testing over an
// in-memory task list
type mockBusinessAPI struct {
	tasks     []domain.Task
	overrides domain.Overrides
	theme     domain.Theme
	pageSize  int
	listErr   error
	pages     []int // every page requested from ListTasks
}

// newMockBusinessAPI creates n tasks titled "todo N"; task 2 is completed
func newMockBusinessAPI(n, pageSize int) *mockBusinessAPI {
	m := &mockBusinessAPI{
		overrides: domain.Overrides{},
		theme:     domain.DefaultTheme,
		pageSize:  pageSize,
	}
	for i := 1; i <= n; i++ {
		m.tasks = append(m.tasks, domain.Task{
			ID:        int64(i),
			Title:     fmt.Sprintf("todo %d", i),
			UserID:    int64(i%3 + 1),
			Completed: i == 2,
		})
	}
	return m
}

var _ api.BusinessAPI = (*mockBusinessAPI)(nil)

func (m *mockBusinessAPI) ListTasks(ctx context.Context, search string, page int) (*api.TaskList, error) {
	m.pages = append(m.pages, page)
	if m.listErr != nil {
		return nil, m.listErr
	}

	filtered := services.FilterByTitle(services.MergeOverrides(m.tasks, m.overrides), search)
	result, err := services.Paginate(filtered, page, m.pageSize)
	if err != nil {
		return nil, err
	}
	result.Links = services.PageLinks(result.Number, result.TotalPages, 7)

	return &api.TaskList{
		Search:   search,
		Page:     result,
		Previous: services.PreviousPage(result.Number),
		Next:     services.NextPage(result.Number, result.TotalPages),
	}, nil
}

func (m *mockBusinessAPI) GetTask(ctx context.Context, rawID string) (*domain.Task, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id < 1 {
		return nil, errors.NewNotFoundError("task", rawID)
	}
	for _, t := range m.tasks {
		if t.ID == id {
			task := m.overrides.Apply(t)
			return &task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", rawID)
}

func (m *mockBusinessAPI) ToggleTask(ctx context.Context, rawID string) (*domain.Task, error) {
	task, err := m.GetTask(ctx, rawID)
	if err != nil {
		return nil, err
	}
	m.overrides[task.ID] = !task.Completed
	toggled := task.WithCompleted(!task.Completed)
	return &toggled, nil
}

func (m *mockBusinessAPI) GetTheme(ctx context.Context) (domain.Theme, error) {
	return m.theme, nil
}

func (m *mockBusinessAPI) SetTheme(ctx context.Context, name string) (domain.Theme, error) {
	theme, ok := domain.ParseTheme(name)
	if !ok {
		return "", errors.NewInvalidInputError("theme", name, "must be light or dark")
	}
	m.theme = theme
	return theme, nil
}

func (m *mockBusinessAPI) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	m.theme = m.theme.Toggle()
	return m.theme, nil
}

// setupTestApp returns an App over twelve mock tasks, five per page, writing to a buffer
func setupTestApp(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockBusinessAPI(12, 5)
	out := &bytes.Buffer{}
	return NewApp(mock, config.NewConfig(), out), mock, out
}
