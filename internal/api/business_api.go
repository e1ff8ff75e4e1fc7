package api

import (
	"context"

	"task-viewer/internal/domain"
	"task-viewer/internal/services"
	"task-viewer/internal/validation"
)

// TaskList is one rendered page of the task list together with the targets
// of its navigation controls.
type TaskList struct {
	Search   string
	Page     domain.Page
	Previous int // page the Previous control leads to; equals Page.Number on the first page
	Next     int // page the Next control leads to; equals Page.Number on the last page
}

// BusinessAPI defines the operations shared by the command line and web front-ends
type BusinessAPI interface {
	// ========== Task Views ==========

	// ListTasks returns one page of tasks whose title contains search, ignoring case
	ListTasks(ctx context.Context, search string, page int) (*TaskList, error)

	// GetTask returns the task named by rawID with its local override applied.
	// A malformed or non-positive rawID is reported as not found.
	GetTask(ctx context.Context, rawID string) (*domain.Task, error)

	// ========== Task Status ==========

	// ToggleTask flips the effective completion of the task and persists it
	ToggleTask(ctx context.Context, rawID string) (*domain.Task, error)

	// ========== Theme ==========

	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, name string) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	tasks         services.TaskService
	themes        services.ThemeService
	pageSize      int
	taskValidator *validation.TaskValidator
}

// NewBusinessAPI creates a new BusinessAPI instance listing pageSize tasks per page
func NewBusinessAPI(container *services.ServiceContainer, pageSize int) BusinessAPI {
	return &businessAPIImpl{
		tasks:         container.TaskService,
		themes:        container.ThemeService,
		pageSize:      pageSize,
		taskValidator: validation.NewTaskValidator(),
	}
}

// ========== Task Views ==========

func (b *businessAPIImpl) ListTasks(ctx context.Context, search string, page int) (*TaskList, error) {
	result, err := b.tasks.ListTasks(ctx, domain.ListQuery{
		Search:   search,
		Page:     page,
		PageSize: b.pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &TaskList{
		Search:   search,
		Page:     *result,
		Previous: services.PreviousPage(result.Number),
		Next:     services.NextPage(result.Number, result.TotalPages),
	}, nil
}

func (b *businessAPIImpl) GetTask(ctx context.Context, rawID string) (*domain.Task, error) {
	id, err := b.taskValidator.ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}
	return b.tasks.GetTask(ctx, id)
}

// ========== Task Status ==========

func (b *businessAPIImpl) ToggleTask(ctx context.Context, rawID string) (*domain.Task, error) {
	id, err := b.taskValidator.ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}
	return b.tasks.ToggleTask(ctx, id)
}

// ========== Theme ==========

func (b *businessAPIImpl) GetTheme(ctx context.Context) (domain.Theme, error) {
	return b.themes.GetTheme(ctx)
}

func (b *businessAPIImpl) SetTheme(ctx context.Context, name string) (domain.Theme, error) {
	return b.themes.SetTheme(ctx, name)
}

func (b *businessAPIImpl) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	return b.themes.ToggleTheme(ctx)
}
