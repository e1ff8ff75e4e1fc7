package cli

import (
	"context"
	"fmt"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute flips the completion status of the task named by args[0] and
// prints the new status.
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("toggle requires exactly one task id")
	}

	r := c.app.renderer(ctx)
	task, err := c.app.businessAPI.ToggleTask(ctx, args[0])
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprint(c.app.out, r.NotFound())
			return nil
		}
		return c.errorHandler.Handle("toggle task", err)
	}

	fmt.Fprint(c.app.out, r.Toggled(task))
	return nil
}
