package validation

import (
	"strconv"

	"task-viewer/internal/domain"
)

// QueryValidator validates list queries
type QueryValidator struct {
	validator *Validator
}

// NewQueryValidator creates a new query validator
func NewQueryValidator() *QueryValidator {
	return &QueryValidator{
		validator: NewValidator(),
	}
}

// ValidatePage validates a 1-based page number
func (qv *QueryValidator) ValidatePage(page int) error {
	if page < 1 {
		ve := NewValidationError()
		ve.AddInvalidRangeError("page", page, "page must be at least 1")
		return ve
	}
	return nil
}

// ValidatePageSize validates the number of tasks per page
func (qv *QueryValidator) ValidatePageSize(size int) error {
	if size < 1 {
		ve := NewValidationError()
		ve.AddInvalidRangeError("page_size", size, "page size must be at least 1")
		return ve
	}
	return nil
}

// ValidateListQuery validates every field of q and reports all problems at once
func (qv *QueryValidator) ValidateListQuery(q domain.ListQuery) error {
	ve := NewValidationError()
	if q.Page < 1 {
		ve.AddInvalidRangeError("page", q.Page, "page must be at least 1")
	}
	if q.PageSize < 1 {
		ve.AddInvalidRangeError("page_size", q.PageSize, "page size must be at least 1")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ParsePage converts a raw page parameter. An empty value means the first page.
func (qv *QueryValidator) ParsePage(raw string) (int, error) {
	if !qv.validator.IsNonEmptyString(raw) {
		return 1, nil
	}
	if !qv.validator.IsPositiveInt(raw) {
		ve := NewValidationError()
		ve.AddInvalidFormatError("page", raw, "a positive integer")
		return 0, ve
	}
	page, _ := strconv.Atoi(qv.validator.TrimAndValidateString(raw))
	return page, nil
}
