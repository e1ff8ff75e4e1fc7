package domain

// ListQuery describes which slice of the task list to show.
type ListQuery struct {
	Search   string
	Page     int
	PageSize int
}

// PageLink is one entry of the page-number strip: either a page number or an ellipsis.
type PageLink struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// Page is one page of the filtered task list.
// Number may exceed TotalPages; Items is then empty and HasNext is false.
type Page struct {
	Items       []Task
	Number      int
	Size        int
	TotalItems  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	Links       []PageLink
}

// IsEmpty reports whether the filtered list had no tasks at all.
func (p Page) IsEmpty() bool {
	return p.TotalItems == 0
}
