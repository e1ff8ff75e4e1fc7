package services

import (
	"context"
	"testing"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService(t *testing.T) {
	store := setupStore(t)
	service := NewThemeService(store)
	ctx := context.Background()

	theme, err := service.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme, "light by default")

	theme, err = service.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	theme, err = NewThemeService(store).GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme, "persisted")

	theme, err = service.SetTheme(ctx, " LIGHT ")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	_, err = service.SetTheme(ctx, "solarized")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestThemeService_UnknownStoredValue(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "neon"))

	theme, err := NewThemeService(store).GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
