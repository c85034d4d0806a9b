// Package query filters and paginates a snapshot of user records.
package query

import (
	"strings"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

// All disables a categorical filter.
const All = "all"

// Params describes one listing request.
type Params struct {
	Search   string
	Status   string
	Profile  string
	Page     int
	PageSize int
	// Reset asks for page 1, sent by the console when a filter or the search changed.
	Reset bool
}

// Normalize maps empty filters to All and applies Reset. The search text is
// matched as typed, surrounding spaces included.
func (p Params) Normalize() Params {
	if p.Reset {
		p.Page = 1
		p.Reset = false
	}
	if p.Status == "" {
		p.Status = All
	}
	if p.Profile == "" {
		p.Profile = All
	}
	return p
}

// Result is the visible page plus counts over the filtered set.
type Result struct {
	Page       []entities.User
	TotalCount int
	TotalPages int
}

// Users returns the page of records matching p. Records keep their input
// order and the input slice is never modified. Page size is not checked
// against the allowed options; that is the caller's contract.
func Users(records []entities.User, p Params) Result {
	matches := make([]entities.User, 0, len(records))
	for _, r := range records {
		if Match(r, p) {
			matches = append(matches, r)
		}
	}

	res := Result{
		Page:       []entities.User{},
		TotalCount: len(matches),
		TotalPages: TotalPages(len(matches), p.PageSize),
	}
	if p.PageSize <= 0 {
		return res
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.PageSize
	if start >= len(matches) {
		return res
	}
	end := start + p.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	res.Page = append(res.Page, matches[start:end]...)
	return res
}

// Match reports whether r passes the search, status and profile predicates of p.
func Match(r entities.User, p Params) bool {
	return matchSearch(r, p.Search) &&
		matchCategory(string(r.Status), p.Status) &&
		matchCategory(string(r.Profile), p.Profile)
}

func matchSearch(r entities.User, search string) bool {
	if search == "" {
		return true
	}
	lower := strings.ToLower(search)
	return strings.Contains(strings.ToLower(r.FullName), lower) ||
		strings.Contains(strings.ToLower(r.Email), lower) ||
		strings.Contains(r.NIT, search) ||
		strings.Contains(r.Phone, search)
}

func matchCategory(value, filter string) bool {
	return filter == "" || filter == All || value == filter
}

// TotalPages is ceil(count/pageSize) with a floor of 1.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage keeps page within [1, totalPages].
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

// Window returns the 1-based positions of the first and last record shown
// on the current page, or zeros when the page is empty.
func Window(res Result, p Params) (first, last int) {
	if len(res.Page) == 0 {
		return 0, 0
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	first = (page-1)*p.PageSize + 1
	return first, first + len(res.Page) - 1
}
