package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"task-viewer/internal/api"
	"task-viewer/internal/logging"
	"task-viewer/internal/services"
)

const browseHelp = `Commands:
  n, next          next page
  p, prev          previous page
  g N              go to page N
  / TERM           search titles (empty TERM clears the search)
  s ID, show ID    show task details
  t ID, toggle ID  toggle task status
  theme            switch between light and dark
  help, ?          show this help
  q, quit          leave
`

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// historyPrompter is a liner prompt that persists its history to a file
type historyPrompter struct {
	*liner.State
	path string
}

// newLinerPrompter opens a line editor and loads history from path, if any
func newLinerPrompter(path string) Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completeBrowse)

	if f, err := os.Open(path); err == nil {
		_, _ = state.ReadHistory(f)
		f.Close()
	}
	return &historyPrompter{State: state, path: path}
}

func (p *historyPrompter) Close() error {
	if f, err := os.Create(p.path); err == nil {
		if _, err := p.State.WriteHistory(f); err != nil {
			logging.Debugf("writing history failed: %v\n", err)
		}
		f.Close()
	}
	return p.State.Close()
}

func completeBrowse(line string) []string {
	var out []string
	for _, c := range []string{"next", "prev", "show ", "toggle ", "theme", "help", "quit"} {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}
	return out
}

// BrowseCommand runs an interactive pager over the task list
type BrowseCommand struct {
	app          *App
	prompter     Prompter
	errorHandler *ErrorHandler

	search string
	page   int
	last   *api.TaskList
}

// NewBrowseCommand creates a browse session reading commands from prompter
func NewBrowseCommand(app *App, prompter Prompter) *BrowseCommand {
	return &BrowseCommand{
		app:          app,
		prompter:     prompter,
		errorHandler: NewErrorHandler(),
		page:         1,
	}
}

// historyPath returns where browse keeps its line history
func historyPath(app *App) string {
	return filepath.Join(app.config.Storage.Dir, "browse_history")
}

// Execute shows the first page for the search term in args and then reads
// commands until the user quits or input ends.
func (c *BrowseCommand) Execute(ctx context.Context, args []string) error {
	defer c.prompter.Close()

	c.search = strings.Join(args, " ")
	c.page = 1
	c.refresh(ctx)

	for {
		line, err := c.prompter.Prompt("tv> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(c.app.out)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.prompter.AppendHistory(line)

		if quit := c.dispatch(ctx, line); quit {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the session should end
func (c *BrowseCommand) dispatch(ctx context.Context, line string) bool {
	if strings.HasPrefix(line, "/") {
		c.search = strings.TrimSpace(strings.TrimPrefix(line, "/"))
		c.page = 1
		c.refresh(ctx)
		return false
	}

	fields := strings.Fields(line)
	cmd, rest := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "q", "quit", "exit":
		return true

	case "help", "?":
		fmt.Fprint(c.app.out, browseHelp)

	case "n", "next":
		if c.last != nil {
			c.page = services.NextPage(c.page, c.last.Page.TotalPages)
		}
		c.refresh(ctx)

	case "p", "prev", "previous":
		c.page = services.PreviousPage(c.page)
		c.refresh(ctx)

	case "g", "go":
		if len(rest) != 1 {
			fmt.Fprintln(c.app.out, "usage: g N")
			return false
		}
		page, err := strconv.Atoi(rest[0])
		if err != nil || page < 1 {
			fmt.Fprint(c.app.out, c.renderer(ctx).Error(fmt.Sprintf("invalid page number %q", rest[0])))
			return false
		}
		c.page = page
		c.refresh(ctx)

	case "s", "show":
		if len(rest) != 1 {
			fmt.Fprintln(c.app.out, "usage: s ID")
			return false
		}
		c.run(ctx, func(stepCtx context.Context) error {
			return NewShowCommand(c.app).Execute(stepCtx, rest)
		})

	case "t", "toggle":
		if len(rest) != 1 {
			fmt.Fprintln(c.app.out, "usage: t ID")
			return false
		}
		c.run(ctx, func(stepCtx context.Context) error {
			return NewToggleCommand(c.app).Execute(stepCtx, rest)
		})
		c.refresh(ctx)

	case "theme":
		c.run(ctx, func(stepCtx context.Context) error {
			return NewThemeCommand(c.app).Execute(stepCtx, []string{"toggle"})
		})
		c.refresh(ctx)

	default:
		fmt.Fprintf(c.app.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

// refresh renders the current page. Errors are shown inline so the session
// survives a failed fetch.
func (c *BrowseCommand) refresh(ctx context.Context) {
	stepCtx, cancel := context.WithTimeout(ctx, c.app.timeout())
	defer cancel()

	r := c.app.renderer(stepCtx)
	list, err := c.app.businessAPI.ListTasks(stepCtx, c.search, c.page)
	if err != nil {
		fmt.Fprint(c.app.out, r.Error(c.errorHandler.Handle("list tasks", err).Error()))
		return
	}
	c.last = list
	fmt.Fprint(c.app.out, r.TaskList(list))
}

// run executes one step under the command timeout and prints its error, if any
func (c *BrowseCommand) run(ctx context.Context, step func(context.Context) error) {
	stepCtx, cancel := context.WithTimeout(ctx, c.app.timeout())
	defer cancel()

	if err := step(stepCtx); err != nil {
		fmt.Fprint(c.app.out, c.renderer(stepCtx).Error(err.Error()))
	}
}

func (c *BrowseCommand) renderer(ctx context.Context) *Renderer {
	return c.app.renderer(ctx)
}
