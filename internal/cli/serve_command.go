package cli

import (
	"context"
	"fmt"

	"task-viewer/internal/web"
)

// ServeCommand runs the web front-end until ctx is cancelled
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute starts the HTTP server on the configured address
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	server, err := web.NewServer(c.app.businessAPI)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	addr := c.app.config.Server.Addr
	fmt.Fprintf(c.app.out, "Serving tasks on http://%s\n", displayAddr(addr))
	return server.ListenAndServe(ctx, addr)
}

// displayAddr turns a listen address such as ":8080" into one a browser can open
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
