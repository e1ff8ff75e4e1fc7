package services

import (
	"context"
	"sync"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/repository"
)

// themeServiceImpl implements the ThemeService interface
type themeServiceImpl struct {
	store  repository.Store
	mapper *domain.Mapper
	mu     sync.Mutex
}

// NewThemeService creates a new ThemeService backed by store
func NewThemeService(store repository.Store) ThemeService {
	return &themeServiceImpl{
		store:  store,
		mapper: domain.NewMapper(),
	}
}

// GetTheme returns the stored theme, or the default when none is stored
func (s *themeServiceImpl) GetTheme(ctx context.Context) (domain.Theme, error) {
	stored, ok, err := s.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.DefaultTheme, nil
	}
	return s.mapper.Theme.FromStorage(stored), nil
}

// SetTheme stores the named theme
func (s *themeServiceImpl) SetTheme(ctx context.Context, name string) (domain.Theme, error) {
	theme, ok := domain.ParseTheme(name)
	if !ok {
		return "", errors.NewInvalidInputError("theme", name, "must be light or dark")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, theme); err != nil {
		return "", err
	}
	return theme, nil
}

// ToggleTheme switches between light and dark
func (s *themeServiceImpl) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetTheme(ctx)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.save(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *themeServiceImpl) save(ctx context.Context, theme domain.Theme) error {
	return s.store.Set(ctx, repository.KeyTheme, s.mapper.Theme.ToStorage(theme))
}
