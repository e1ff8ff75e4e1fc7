package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-viewer/internal/api"
	"task-viewer/internal/config"
	"task-viewer/internal/logging"
)

// APIFactory builds the business API for the effective configuration. The
// returned close function releases whatever the API holds open.
type APIFactory func(cfg *config.Config) (api.BusinessAPI, func() error, error)

// PrompterFactory opens the line editor used by browse
type PrompterFactory func(app *App) Prompter

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd         *cobra.Command
	config      *config.Config
	factory     APIFactory
	newPrompter PrompterFactory
	out         io.Writer

	app     *App
	closeFn func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
		newPrompter: func(app *App) Prompter {
			return newLinerPrompter(historyPath(app))
		},
		out: os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "tv",
		Short: "Browse, search and complete tasks from the command line",
		Long: `Task Viewer (tv) lists tasks from a remote todo service, lets you search
and page through them, and keeps your completed/incomplete choices locally.

EXAMPLES:
  tv list                                 # First page of all tasks
  tv list delectus --page 2               # Second page of tasks matching "delectus"
  tv show 5                               # Details of task 5
  tv toggle 5                             # Mark task 5 complete (or incomplete)
  tv theme dark                           # Switch to the dark theme
  tv browse                               # Interactive pager
  tv serve --addr :8080                   # Web front-end

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file:
    TV_CONFIG                              JSON (comments allowed) config file
                                           (default: ~/.tv/config.json)
  Storage Configuration:
    TV_STORE_BACKEND                       sqlite or file (default: sqlite)
    TV_STORE_DIR                           Storage directory (default: ~/.tv)
  Remote Configuration:
    TV_REMOTE_BASE_URL                     Task service URL
    TV_REMOTE_LIMIT                        Tasks fetched per list (default: 200)
    TV_REMOTE_TIMEOUT                      Request timeout (default: 10s)
    TV_REMOTE_CACHE_TTL                    Reuse fetched tasks for (default: 5m)
  Display Configuration:
    TV_DISPLAY_PAGE_SIZE                   Tasks per page (default: 20)
    TV_DISPLAY_PAGE_WINDOW                 Pages listed before eliding (default: 7)
  Application Configuration:
    TV_SERVER_ADDR                         Web listen address (default: 127.0.0.1:8080)
    TV_APP_TIMEOUT                         Command timeout (default: 60s)
    TV_APP_VERBOSE, TV_DEBUG               Debug output on stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags(cmd.Flags())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetOutput redirects command output, mainly for tests
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// SetArgs overrides os.Args[1:]
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetPrompterFactory replaces the line editor used by browse
func (r *RootCommand) SetPrompterFactory(f PrompterFactory) {
	r.newPrompter = f
}

// Execute runs the root command and releases the business API afterwards
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.closeFn != nil {
		if closeErr := r.closeFn(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close store: %w", closeErr)
		}
		r.closeFn = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("store-backend", "", "Override store backend: sqlite or file (overrides TV_STORE_BACKEND)")
	flags.String("store-dir", "", "Storage directory (overrides TV_STORE_DIR)")

	flags.String("remote-url", "", "Task service base URL (overrides TV_REMOTE_BASE_URL)")
	flags.Int("remote-limit", 0, "Tasks fetched per list (overrides TV_REMOTE_LIMIT)")
	flags.Duration("remote-timeout", 0, "Task service request timeout (overrides TV_REMOTE_TIMEOUT)")

	flags.Int("page-size", 0, "Tasks per page (overrides TV_DISPLAY_PAGE_SIZE)")
	flags.Int("page-window", 0, "Pages listed before eliding (overrides TV_DISPLAY_PAGE_WINDOW)")

	flags.Duration("app-timeout", 0, "Command timeout (overrides TV_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug output (overrides TV_APP_VERBOSE)")
}

// applyFlags copies every flag the user set into the configuration and
// validates the result
func (r *RootCommand) applyFlags(flags *pflag.FlagSet) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	overrides := &config.ConfigOverrides{}
	if flags.Changed("store-backend") {
		v, _ := flags.GetString("store-backend")
		overrides.StoreBackend = &v
	}
	if flags.Changed("store-dir") {
		v, _ := flags.GetString("store-dir")
		overrides.StoreDir = &v
	}
	if flags.Changed("remote-url") {
		v, _ := flags.GetString("remote-url")
		overrides.RemoteBaseURL = &v
	}
	if flags.Changed("remote-limit") {
		v, _ := flags.GetInt("remote-limit")
		overrides.RemoteLimit = &v
	}
	if flags.Changed("remote-timeout") {
		v, _ := flags.GetDuration("remote-timeout")
		overrides.RemoteTimeout = &v
	}
	if flags.Changed("page-size") {
		v, _ := flags.GetInt("page-size")
		overrides.PageSize = &v
	}
	if flags.Changed("page-window") {
		v, _ := flags.GetInt("page-window")
		overrides.PageWindow = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("addr") {
		v, _ := flags.GetString("addr")
		overrides.ServerAddr = &v
	}

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	logging.SetVerbose(r.config.Application.Verbose)
	return nil
}

// getApp builds the App on first use so that help and flag errors never
// touch the store or the network
func (r *RootCommand) getApp() (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	businessAPI, closeFn, err := r.factory(r.config)
	if err != nil {
		return nil, err
	}
	r.app = NewApp(businessAPI, r.config, r.out)
	r.closeFn = closeFn
	return r.app, nil
}

// withTimeout runs fn with the configured command timeout
func (r *RootCommand) withTimeout(fn func(ctx context.Context, app *App) error) error {
	app, err := r.getApp()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), app.timeout())
	defer cancel()
	return fn(ctx, app)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list [search...]",
		Short: "List tasks",
		Long: `List one page of tasks. Any arguments form a case-insensitive title search.

Examples:
  tv list                    # First page of all tasks
  tv list --page 3           # Third page
  tv list "qui ut"           # Tasks whose title contains "qui ut"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			return r.withTimeout(func(ctx context.Context, app *App) error {
				return NewListCommand(app).Execute(ctx, args, page)
			})
		},
	}
	listCmd.Flags().Int("page", 1, "Page number to show")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withTimeout(func(ctx context.Context, app *App) error {
				return NewShowCommand(app).Execute(ctx, args)
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task complete or incomplete",
		Long:  "Flip the completion status of a task. The choice is stored locally and survives restarts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withTimeout(func(ctx context.Context, app *App) error {
				return NewToggleCommand(app).Execute(ctx, args)
			})
		},
	}

	themeCmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withTimeout(func(ctx context.Context, app *App) error {
				return NewThemeCommand(app).Execute(ctx, args)
			})
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse [search...]",
		Short: "Page through tasks interactively",
		Long:  "Open an interactive pager over the task list. Type 'help' inside for commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.getApp()
			if err != nil {
				return err
			}
			return NewBrowseCommand(app, r.newPrompter(app)).Execute(context.Background(), args)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.getApp()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return NewServeCommand(app).Execute(ctx, args)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TV_SERVER_ADDR)")

	r.cmd.AddCommand(
		listCmd,
		showCmd,
		toggleCmd,
		themeCmd,
		browseCmd,
		serveCmd,
	)
}
