package search

import "strings"

const (
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 20

	DefaultSortField = "createdAt"
	SortAsc          = "ASC"
	SortDesc         = "DESC"
)

// sortColumns maps the whitelisted sort field names to their SQL columns.
// Anything outside this map never reaches an ORDER BY clause.
var sortColumns = map[string]string{
	"price":     "price",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"city":      "city",
	"areaSqm":   "area_sqm",
	"roomCount": "room_count",
	"title":     "title",
}

// ValidatePageSize clamps a requested page size to [1,50].
// Absent or out-of-range input falls back to the default of 20.
func ValidatePageSize(size *int) int {
	if size == nil || *size < MinPageSize {
		return DefaultPageSize
	}
	if *size > MaxPageSize {
		return MaxPageSize
	}
	return *size
}

// ValidatePageNumber normalizes a requested zero-based page number.
func ValidatePageNumber(page *int) int {
	if page == nil || *page < 0 {
		return 0
	}
	return *page
}

// ValidateSortDirection normalizes a direction token. Only a case-insensitive
// "ASC" selects ascending order; everything else, including empty input, is DESC.
func ValidateSortDirection(direction string) string {
	if strings.EqualFold(direction, SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// ValidateSortField resolves a caller-supplied sort token against the field
// whitelist, tolerating a few aliases. Unrecognized tokens fall back to createdAt.
func ValidateSortField(sortBy string) string {
	switch strings.ToLower(sortBy) {
	case "price":
		return "price"
	case "createdat", "created_at":
		return "createdAt"
	case "updatedat", "updated_at":
		return "updatedAt"
	case "city":
		return "city"
	case "areasqm", "area":
		return "areaSqm"
	case "roomcount", "rooms":
		return "roomCount"
	case "title":
		return "title"
	default:
		return DefaultSortField
	}
}

// SortColumn returns the SQL column for a validated sort field.
func SortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return sortColumns[DefaultSortField]
}

// PageRequest carries validated paging and sort parameters.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// NewPageRequest validates raw paging input in one call. Nil pointers stand
// for absent parameters.
func NewPageRequest(page, size *int, sortBy, direction string) PageRequest {
	return PageRequest{
		Page:      ValidatePageNumber(page),
		Size:      ValidatePageSize(size),
		SortBy:    ValidateSortField(sortBy),
		Direction: ValidateSortDirection(direction),
	}
}

// Offset returns the row offset for the request.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// TotalPages computes the page count for a result set. An empty result still
// reports one page so that pagination metadata never degenerates.
func TotalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 1
	}
	pages := int((totalElements + int64(size) - 1) / int64(size))
	if pages < 1 {
		return 1
	}
	return pages
}
