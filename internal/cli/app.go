package cli

import (
	"context"
	"io"
	"os"
	"time"

	"task-viewer/internal/api"
	"task-viewer/internal/config"
	"task-viewer/internal/domain"
	"task-viewer/internal/logging"
)

// App holds what every command handler needs: the business API, the
// effective configuration and the writer output goes to.
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	out         io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         out,
	}
}

// timeout returns the configured per-command timeout
func (a *App) timeout() time.Duration {
	if a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 60 * time.Second
}

// renderer returns a renderer for the persisted theme. A theme that cannot be
// read falls back to the default rather than failing the command.
func (a *App) renderer(ctx context.Context) *Renderer {
	theme, err := a.businessAPI.GetTheme(ctx)
	if err != nil {
		logging.Debugf("reading theme failed, using %s: %v\n", domain.DefaultTheme, err)
		theme = domain.DefaultTheme
	}
	return NewRenderer(a.out, theme)
}
