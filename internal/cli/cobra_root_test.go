package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"task-viewer/internal/api"
	"task-viewer/internal/config"
	"task-viewer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootFixture struct {
	root     *RootCommand
	cfg      *config.Config
	mock     *mockBusinessAPI
	out      *bytes.Buffer
	built    int
	closed   int
	buildErr error
}

func newRootFixture(t *testing.T, args ...string) *rootFixture {
	t.Helper()
	t.Cleanup(func() { logging.SetVerbose(false) })

	f := &rootFixture{
		cfg:  config.NewConfig(),
		mock: newMockBusinessAPI(12, 5),
		out:  &bytes.Buffer{},
	}
	f.root = NewRootCommand(f.cfg, func(cfg *config.Config) (api.BusinessAPI, func() error, error) {
		if f.buildErr != nil {
			return nil, nil, f.buildErr
		}
		f.built++
		return f.mock, func() error { f.closed++; return nil }, nil
	})
	f.root.SetOutput(f.out)
	f.root.SetArgs(args)
	return f
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	f := newRootFixture(t,
		"--page-size", "5",
		"--page-window", "9",
		"--remote-limit", "50",
		"--remote-timeout", "3s",
		"--store-backend", "file",
		"--verbose",
		"theme", "dark",
	)

	require.NoError(t, f.root.Execute())

	assert.Equal(t, 5, f.cfg.Display.PageSize)
	assert.Equal(t, 9, f.cfg.Display.PageWindow)
	assert.Equal(t, 50, f.cfg.Remote.Limit)
	assert.Equal(t, 3*time.Second, f.cfg.Remote.Timeout)
	assert.Equal(t, config.BackendFile, f.cfg.Storage.Backend)
	assert.True(t, f.cfg.Application.Verbose)
	assert.Contains(t, f.out.String(), "dark")
	assert.Equal(t, 1, f.built)
	assert.Equal(t, 1, f.closed)
}

func TestRootCommand_UnsetFlagsKeepConfig(t *testing.T) {
	f := newRootFixture(t, "list")
	f.cfg.Display.PageSize = 42

	require.NoError(t, f.root.Execute())
	assert.Equal(t, 42, f.cfg.Display.PageSize)
	assert.Equal(t, []int{1}, f.mock.pages)
}

func TestRootCommand_InvalidFlagValue(t *testing.T) {
	f := newRootFixture(t, "--page-size", "0", "list")

	err := f.root.Execute()
	require.Error(t, err)

	var configErr *config.ConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.Zero(t, f.built, "store must not be opened for invalid configuration")
}

func TestRootCommand_Subcommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "list page", args: []string{"list", "--page", "2"}, expected: "Page 2 of 3"},
		{name: "list search", args: []string{"list", "todo", "12"}, expected: "todo 12"},
		{name: "show", args: []string{"show", "3"}, expected: "todo 3"},
		{name: "show unknown", args: []string{"show", "300"}, expected: "Page Not Found"},
		{name: "toggle", args: []string{"toggle", "1"}, expected: "Task 1 is now"},
		{name: "theme", args: []string{"theme"}, expected: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRootFixture(t, tt.args...)
			require.NoError(t, f.root.Execute())
			assert.Contains(t, f.out.String(), tt.expected)
		})
	}
}

func TestRootCommand_ShowRequiresID(t *testing.T) {
	f := newRootFixture(t, "show")
	assert.Error(t, f.root.Execute())
	assert.Zero(t, f.built)
}

func TestRootCommand_FactoryError(t *testing.T) {
	f := newRootFixture(t, "serve", "--addr", "127.0.0.1:9999")
	f.buildErr = fmt.Errorf("disk full")

	err := f.root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "127.0.0.1:9999", f.cfg.Server.Addr)
	assert.Zero(t, f.closed)
}

func TestRootCommand_Browse(t *testing.T) {
	f := newRootFixture(t, "browse", "todo")
	prompter := &scriptedPrompter{lines: []string{"n", "q"}}
	f.root.SetPrompterFactory(func(*App) Prompter { return prompter })

	require.NoError(t, f.root.Execute())
	assert.Equal(t, []int{1, 2}, f.mock.pages)
	assert.True(t, prompter.closed)
	assert.Equal(t, 1, f.closed)
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:8080", displayAddr("127.0.0.1:8080"))
}
