package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-viewer/internal/api"
	"task-viewer/internal/domain"
)

// Palette holds the colours of one theme.
type Palette struct {
	Heading lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Done    lipgloss.Color
	Pending lipgloss.Color
	Error   lipgloss.Color
}

var (
	LightPalette = Palette{
		Heading: lipgloss.Color("#111827"),
		Text:    lipgloss.Color("#1f2937"),
		Muted:   lipgloss.Color("#4b5563"),
		Accent:  lipgloss.Color("#2563eb"),
		Done:    lipgloss.Color("#16a34a"),
		Pending: lipgloss.Color("#ca8a04"),
		Error:   lipgloss.Color("#b91c1c"),
	}
	DarkPalette = Palette{
		Heading: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#e5e7eb"),
		Muted:   lipgloss.Color("#9ca3af"),
		Accent:  lipgloss.Color("#60a5fa"),
		Done:    lipgloss.Color("#22c55e"),
		Pending: lipgloss.Color("#eab308"),
		Error:   lipgloss.Color("#f87171"),
	}
)

// PaletteFor returns the palette of theme.
func PaletteFor(theme domain.Theme) Palette {
	if theme.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

// Renderer formats views for a terminal. Colour support is detected from the
// writer, so output to a file or buffer is plain text.
type Renderer struct {
	theme   domain.Theme
	heading lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	badge   lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	failure lipgloss.Style
}

// NewRenderer creates a renderer for w using the palette of theme.
func NewRenderer(w io.Writer, theme domain.Theme) *Renderer {
	r := lipgloss.NewRenderer(w)
	p := PaletteFor(theme)
	return &Renderer{
		theme:   theme,
		heading: r.NewStyle().Bold(true).Foreground(p.Heading),
		text:    r.NewStyle().Foreground(p.Text),
		muted:   r.NewStyle().Foreground(p.Muted),
		accent:  r.NewStyle().Bold(true).Foreground(p.Accent),
		badge:   r.NewStyle().Bold(true).Foreground(p.Done),
		done:    r.NewStyle().Bold(true).Foreground(p.Done),
		pending: r.NewStyle().Bold(true).Foreground(p.Pending),
		failure: r.NewStyle().Bold(true).Foreground(p.Error),
	}
}

// TaskList renders one page of the task list with its pager.
func (r *Renderer) TaskList(list *api.TaskList) string {
	var b strings.Builder
	b.WriteString(r.heading.Render("Task List"))
	b.WriteString("\n")
	if list.Search != "" {
		b.WriteString(r.muted.Render(fmt.Sprintf("Search: %q", list.Search)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, task := range list.Page.Items {
		line := r.text.Render(task.Title)
		if task.Completed {
			line += "  " + r.badge.Render("[Done]")
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(r.muted.Render(fmt.Sprintf("  Task ID: %d", task.ID)))
		b.WriteString("\n")
	}

	if list.Page.IsEmpty() {
		b.WriteString(r.muted.Render("No tasks found matching your search."))
		b.WriteString("\n")
	}

	if list.Page.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString(r.Pager(list))
		b.WriteString("\n")
	}
	return b.String()
}

// Pager renders the Previous/Next controls, the page numbers and "Page X of Y".
// Controls that would not move are dimmed.
func (r *Renderer) Pager(list *api.TaskList) string {
	parts := make([]string, 0, len(list.Page.Links)+3)
	parts = append(parts, r.control("< Previous", list.Page.HasPrevious))
	for _, link := range list.Page.Links {
		switch {
		case link.Ellipsis:
			parts = append(parts, r.muted.Render("…"))
		case link.Current:
			parts = append(parts, r.accent.Render(fmt.Sprintf("[%d]", link.Number)))
		default:
			parts = append(parts, r.text.Render(fmt.Sprint(link.Number)))
		}
	}
	parts = append(parts, r.control("Next >", list.Page.HasNext))

	return strings.Join(parts, " ") + "\n" +
		r.muted.Render(fmt.Sprintf("Page %d of %d", list.Page.Number, list.Page.TotalPages))
}

func (r *Renderer) control(label string, enabled bool) string {
	if enabled {
		return r.accent.Render(label)
	}
	return r.muted.Render(label)
}

// TaskDetail renders every field of one task.
func (r *Renderer) TaskDetail(task *domain.Task) string {
	var b strings.Builder
	header := r.heading.Render("Task Details")
	if task.Completed {
		header += "  " + r.badge.Render("✓ Completed")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	field := func(label, value string, style lipgloss.Style) {
		b.WriteString(r.muted.Render(fmt.Sprintf("%-8s", label)))
		b.WriteString(" ")
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}
	field("Task ID", fmt.Sprint(task.ID), r.heading)
	field("Title", task.Title, r.text)
	field("User ID", fmt.Sprint(task.UserID), r.text)
	field("Status", task.Status(), r.statusStyle(task))
	return b.String()
}

// Toggled renders the confirmation after a status change.
func (r *Renderer) Toggled(task *domain.Task) string {
	return r.text.Render(fmt.Sprintf("Task %d is now ", task.ID)) +
		r.statusStyle(task).Render(task.Status()) + "\n"
}

func (r *Renderer) statusStyle(task *domain.Task) lipgloss.Style {
	if task.Completed {
		return r.done
	}
	return r.pending
}

// NotFound renders the view shown for unknown or malformed task ids.
func (r *Renderer) NotFound() string {
	return r.accent.Render("404") + "\n" +
		r.heading.Render("Page Not Found") + "\n" +
		r.muted.Render("The page you're looking for doesn't exist.") + "\n"
}

// Error renders an error banner.
func (r *Renderer) Error(message string) string {
	return r.failure.Render("Error: "+message) + "\n"
}

// Theme renders the active theme name.
func (r *Renderer) Theme(theme domain.Theme) string {
	return r.text.Render("Theme: ") + r.accent.Render(theme.String()) + "\n"
}
