package services

import (
	"strings"

	"task-viewer/internal/domain"
	"task-viewer/internal/errors"
	"task-viewer/internal/validation"
)

// MergeOverrides returns a copy of tasks with each completion flag replaced by
// its override when one exists. Order is preserved and tasks is not modified.
func MergeOverrides(tasks []domain.Task, overrides domain.Overrides) []domain.Task {
	merged := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		merged[i] = overrides.Apply(task)
	}
	return merged
}

// FilterByTitle keeps the tasks whose title contains term, ignoring case.
// An empty term keeps every task.
func FilterByTitle(tasks []domain.Task, term string) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	if term == "" {
		return append(filtered, tasks...)
	}

	needle := strings.ToLower(term)
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// TotalPages returns ceil(count/size)
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// MinPageWindow is the smallest threshold PageLinks works with: the first and
// last pages plus one page either side of the current one.
const MinPageWindow = 5

// Paginate returns the 1-based page of tasks. A page past the end is not
// clamped: it has no items and the navigation flags still describe where the
// user can go.
func Paginate(tasks []domain.Task, page, size int) (domain.Page, error) {
	if err := validation.NewQueryValidator().ValidateListQuery(domain.ListQuery{Page: page, PageSize: size}); err != nil {
		return domain.Page{}, errors.NewValidationError("invalid page request", err)
	}

	totalPages := TotalPages(len(tasks), size)
	items := []domain.Task{}
	// page is checked before multiplying so a huge page cannot overflow start
	if page <= totalPages {
		start := (page - 1) * size
		end := start + size
		if end > len(tasks) {
			end = len(tasks)
		}
		items = append(items, tasks[start:end]...)
	}

	return domain.Page{
		Items:       items,
		Number:      page,
		Size:        size,
		TotalItems:  len(tasks),
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}, nil
}

// PreviousPage returns the page before current; it does nothing on the first page.
func PreviousPage(current int) int {
	if current <= 1 {
		return current
	}
	return current - 1
}

// NextPage returns the page after current; it does nothing on the last page.
func NextPage(current, total int) int {
	if current >= total {
		return current
	}
	return current + 1
}

// PageLinks returns the page-number strip for current out of total pages.
// Up to threshold pages are all listed. Beyond that the strip shows the first
// and last pages and one page either side of current, with ellipses for the
// gaps; near either end threshold-2 consecutive pages touch that end.
// Thresholds below MinPageWindow are raised to it.
func PageLinks(current, total, threshold int) []domain.PageLink {
	if total <= 0 {
		return nil
	}
	if threshold < MinPageWindow {
		threshold = MinPageWindow
	}

	edge := threshold - 2
	var pages []int
	switch {
	case total <= threshold:
		pages = pageRange(1, total)
	case current <= edge-1:
		pages = append(pageRange(1, edge), total)
	case current >= total-edge+2:
		pages = append([]int{1}, pageRange(total-edge+1, total)...)
	default:
		pages = []int{1, current - 1, current, current + 1, total}
	}

	links := make([]domain.PageLink, 0, len(pages)+2)
	for i, n := range pages {
		if i > 0 {
			switch gap := n - pages[i-1]; {
			case gap == 2:
				// an ellipsis would hide a single page, show it instead
				links = append(links, pageLink(n-1, current))
			case gap > 2:
				links = append(links, domain.PageLink{Ellipsis: true})
			}
		}
		links = append(links, pageLink(n, current))
	}
	return links
}

func pageLink(n, current int) domain.PageLink {
	return domain.PageLink{Number: n, Current: n == current}
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		pages = append(pages, n)
	}
	return pages
}
