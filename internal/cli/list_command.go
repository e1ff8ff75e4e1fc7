package cli

import (
	"context"
	"fmt"
	"strings"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints one page of tasks. All arguments together form the search term.
func (c *ListCommand) Execute(ctx context.Context, args []string, page int) error {
	search := strings.Join(args, " ")

	list, err := c.app.businessAPI.ListTasks(ctx, search, page)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	fmt.Fprint(c.app.out, c.app.renderer(ctx).TaskList(list))
	return nil
}
