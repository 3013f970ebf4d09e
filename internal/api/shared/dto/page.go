package dto

import "math"

// Page is the envelope of every paginated search
type Page[T any] struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageLength int `json:"pageLength"`
	TotalPages int `json:"totalPages"`
	Results    []T `json:"results"`
}

// NewPage builds a page envelope. Results are never nil so they always encode as a list.
func NewPage[T any](results []T, count, page, pageLength int) *Page[T] {
	if results == nil {
		results = []T{}
	}

	return &Page[T]{
		Count:      count,
		Page:       page,
		PageLength: pageLength,
		TotalPages: TotalPages(count, pageLength),
		Results:    results,
	}
}

// TotalPages returns ceil(count / pageLength)
func TotalPages(count, pageLength int) int {
	if count <= 0 || pageLength <= 0 {
		return 0
	}
	return (count + pageLength - 1) / pageLength
}

// Offset returns the number of rows before page, saturating at math.MaxInt so a page far past
// the last one never wraps around to a negative offset
func Offset(page, pageLength int) int {
	if page < 1 || pageLength <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageLength {
		return math.MaxInt
	}
	return (page - 1) * pageLength
}
