package cli

import (
	"context"
	"fmt"
	"strings"

	"task-viewer/internal/domain"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the current theme, or changes it when an argument is given:
// "light", "dark" or "toggle".
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	var (
		theme domain.Theme
		err   error
	)

	switch {
	case len(args) == 0:
		theme, err = c.app.businessAPI.GetTheme(ctx)
	case len(args) > 1:
		return fmt.Errorf("theme accepts at most one argument")
	case strings.EqualFold(strings.TrimSpace(args[0]), "toggle"):
		theme, err = c.app.businessAPI.ToggleTheme(ctx)
	default:
		theme, err = c.app.businessAPI.SetTheme(ctx, args[0])
	}
	if err != nil {
		return c.errorHandler.Handle("change theme", err)
	}

	fmt.Fprint(c.app.out, NewRenderer(c.app.out, theme).Theme(theme))
	return nil
}
