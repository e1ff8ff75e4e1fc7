package services

import (
	"context"

	"task-viewer/internal/domain"
	"task-viewer/internal/repository"
)

// TaskSource provides the remote task records
type TaskSource interface {
	FetchTasks(ctx context.Context) ([]domain.Task, error)
	FetchTask(ctx context.Context, id int64) (domain.Task, error)
}

// OverrideService handles the locally persisted completion overrides
type OverrideService interface {
	// Load reads the override map; malformed stored content reads as empty
	Load(ctx context.Context) (domain.Overrides, error)
	// Set records one override and writes the whole map back before returning
	Set(ctx context.Context, id int64, completed bool) (domain.Overrides, error)
}

// TaskService handles listing, viewing and toggling tasks
type TaskService interface {
	// Task views
	ListTasks(ctx context.Context, query domain.ListQuery) (*domain.Page, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// Task status
	ToggleTask(ctx context.Context, id int64) (*domain.Task, error)
}

// ThemeService handles the persisted light/dark theme
type ThemeService interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, name string) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	OverrideService OverrideService
	TaskService     TaskService
	ThemeService    ThemeService
}

// NewServiceContainer wires the services over one store and one task source
func NewServiceContainer(store repository.Store, source TaskSource, pageWindow int) *ServiceContainer {
	overrides := NewOverrideService(store)
	return &ServiceContainer{
		OverrideService: overrides,
		TaskService:     NewTaskService(source, overrides, pageWindow),
		ThemeService:    NewThemeService(store),
	}
}
