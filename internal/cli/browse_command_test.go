package cli

import (
	"context"
	"io"
	"testing"

	"task-viewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter replays fixed input lines and then reports end of input
type scriptedPrompter struct {
	lines   []string
	history []string
	closed  bool
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func (p *scriptedPrompter) Close() error {
	p.closed = true
	return nil
}

func runBrowse(t *testing.T, args []string, lines ...string) (*mockBusinessAPI, string, *scriptedPrompter) {
	t.Helper()
	app, mock, out := setupTestApp(t)
	prompter := &scriptedPrompter{lines: lines}

	err := NewBrowseCommand(app, prompter).Execute(context.Background(), args)
	require.NoError(t, err)
	assert.True(t, prompter.closed)
	return mock, out.String(), prompter
}

func TestBrowseCommand_Navigation(t *testing.T) {
	t.Run("next and previous are inert at the edges", func(t *testing.T) {
		mock, out, _ := runBrowse(t, nil, "p", "n", "n", "n", "p", "q")

		assert.Equal(t, []int{1, 1, 2, 3, 3, 2}, mock.pages)
		assert.Contains(t, out, "Page 3 of 3")
	})

	t.Run("go to page", func(t *testing.T) {
		mock, out, _ := runBrowse(t, nil, "g 3", "g x", "g 0", "q")

		assert.Equal(t, []int{1, 3}, mock.pages)
		assert.Contains(t, out, `invalid page number "x"`)
		assert.Contains(t, out, `invalid page number "0"`)
	})

	t.Run("search resets to the first page", func(t *testing.T) {
		mock, out, _ := runBrowse(t, nil, "n", "/todo 1", "q")

		assert.Equal(t, []int{1, 2, 1}, mock.pages)
		assert.Contains(t, out, `Search: "todo 1"`)
	})

	t.Run("initial arguments form the search", func(t *testing.T) {
		_, out, _ := runBrowse(t, []string{"todo", "11"})
		assert.Contains(t, out, "todo 11")
		assert.NotContains(t, out, "todo 3")
	})

	t.Run("end of input leaves the session", func(t *testing.T) {
		_, _, prompter := runBrowse(t, nil, "help", "", "bogus")
		assert.Equal(t, []string{"help", "bogus"}, prompter.history)
	})
}

func TestBrowseCommand_Actions(t *testing.T) {
	t.Run("toggle persists and redraws", func(t *testing.T) {
		mock, out, _ := runBrowse(t, nil, "t 4", "q")

		assert.Equal(t, true, mock.overrides[4])
		assert.Contains(t, out, "Task 4 is now")
		assert.Len(t, mock.pages, 2)
	})

	t.Run("show unknown task", func(t *testing.T) {
		_, out, _ := runBrowse(t, nil, "s 77", "q")
		assert.Contains(t, out, "Page Not Found")
	})

	t.Run("theme toggles", func(t *testing.T) {
		mock, _, _ := runBrowse(t, nil, "theme", "q")
		assert.Equal(t, domain.ThemeDark, mock.theme)
	})

	t.Run("fetch failure keeps the session alive", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.listErr = assert.AnError
		prompter := &scriptedPrompter{lines: []string{"n", "q"}}

		require.NoError(t, NewBrowseCommand(app, prompter).Execute(context.Background(), nil))
		assert.Contains(t, out.String(), "Error: failed to list tasks")
		assert.Len(t, mock.pages, 2)
	})
}

func TestCompleteBrowse(t *testing.T) {
	assert.Equal(t, []string{"toggle ", "theme"}, completeBrowse("t"))
	assert.Empty(t, completeBrowse("z"))
}
