package services

import (
	"context"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	source         TaskSource
	overrides      OverrideService
	pageWindow     int
	taskValidator  *validation.TaskValidator
	queryValidator *validation.QueryValidator
}

// NewTaskService creates a new TaskService. pageWindow is the largest page
// count for which every page number is listed.
func NewTaskService(source TaskSource, overrides OverrideService, pageWindow int) TaskService {
	return &taskServiceImpl{
		source:         source,
		overrides:      overrides,
		pageWindow:     pageWindow,
		taskValidator:  validation.NewTaskValidator(),
		queryValidator: validation.NewQueryValidator(),
	}
}

// ListTasks fetches, merges, filters and paginates the task list
func (t *taskServiceImpl) ListTasks(ctx context.Context, query domain.ListQuery) (*domain.Page, error) {
	if err := t.queryValidator.ValidateListQuery(query); err != nil {
		return nil, errors.NewValidationError("invalid list query", err)
	}

	tasks, err := t.source.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := t.overrides.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterByTitle(MergeOverrides(tasks, overrides), query.Search)
	page, err := Paginate(filtered, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	page.Links = PageLinks(page.Number, page.TotalPages, t.pageWindow)
	return &page, nil
}

// GetTask retrieves a task with its override applied
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	task, err := t.source.FetchTask(ctx, id)
	if err != nil {
		return nil, err
	}
	overrides, err := t.overrides.Load(ctx)
	if err != nil {
		return nil, err
	}

	merged := overrides.Apply(task)
	return &merged, nil
}

// ToggleTask stores the negation of the task's effective completion
func (t *taskServiceImpl) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	task, err := t.source.FetchTask(ctx, id)
	if err != nil {
		return nil, err
	}
	overrides, err := t.overrides.Load(ctx)
	if err != nil {
		return nil, err
	}

	completed := !overrides.Effective(task)
	if _, err := t.overrides.Set(ctx, id, completed); err != nil {
		return nil, err
	}

	toggled := task.WithCompleted(completed)
	return &toggled, nil
}
