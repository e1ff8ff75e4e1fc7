package cli

import (
	"context"
	"fmt"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the details of the task named by args[0]. Unknown and
// malformed ids print the not-found view.
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show requires exactly one task id")
	}

	r := c.app.renderer(ctx)
	task, err := c.app.businessAPI.GetTask(ctx, args[0])
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprint(c.app.out, r.NotFound())
			return nil
		}
		return c.errorHandler.Handle("show task", err)
	}

	fmt.Fprint(c.app.out, r.TaskDetail(task))
	return nil
}
