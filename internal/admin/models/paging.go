package models

import "maps"

// DefaultPageSize matches the page size the platform's own admin UI requests.
const DefaultPageSize = 10

// Criteria selects one page of a remote collection.
type Criteria struct {
	Search  string
	Filters map[string]string
	Page    int
	Limit   int
}

// NewCriteria returns criteria for the first page with the given page size.
func NewCriteria(limit int) Criteria {
	if limit < 1 {
		limit = DefaultPageSize
	}
	return Criteria{Filters: map[string]string{}, Page: 1, Limit: limit}
}

// Clone returns a copy that shares no map with c.
func (c Criteria) Clone() Criteria {
	out := c
	out.Filters = maps.Clone(c.Filters)
	if out.Filters == nil {
		out.Filters = map[string]string{}
	}
	return out
}

// PagedResult is one page of a remote collection. Page is 1-indexed.
type PagedResult[T any] struct {
	Items      []T
	Page       int
	TotalPages int
}

// ClampPage constrains page into [1, max(1,totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
