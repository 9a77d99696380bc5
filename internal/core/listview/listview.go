// Package listview holds the pure derivations the pages recompute on
// every render: category/search filtering, page slicing over the
// filtered list, and the page-number window for the pagination widget.
// Nothing here mutates store state; results depend only on the inputs.
package listview

import (
	"slices"
	"strings"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

// Filters mirrors the catalog store's filter state.
type Filters struct {
	Category string
	Search   string
}

// Pagination mirrors the catalog store's pagination settings. Pages are
// 1-based.
type Pagination struct {
	CurrentPage  int
	ItemsPerPage int
}

// MatchesService reports whether s passes both filters: the category
// must equal the filter (or the filter is the "all" pseudo-category),
// and the search text must be a case-insensitive substring of the
// title, the short description, or any tag.
func MatchesService(s domain.Service, f Filters) bool {
	if f.Category != domain.CategoryAll && s.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Description), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterServices returns the subset of services passing f, in order.
func FilterServices(services []domain.Service, f Filters) []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if MatchesService(s, f) {
			out = append(out, s)
		}
	}
	return out
}

// MatchesPost is the blog page's ad hoc filter: case-insensitive
// substring of title or excerpt, plus an exact tag match when tag is
// non-empty.
func MatchesPost(p domain.BlogPost, search, tag string) bool {
	if tag != "" && !slices.Contains(p.Tags, tag) {
		return false
	}
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q)
}

// FilterPosts returns the posts passing the blog page filter, in order.
func FilterPosts(posts []domain.BlogPost, search, tag string) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if MatchesPost(p, search, tag) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages is ceil(count/perPage) with a minimum of one page, so an
// empty result set still renders page 1 of 1.
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	n := (count + perPage - 1) / perPage
	if n < 1 {
		n = 1
	}
	return n
}

// Page slices one page out of an already-filtered list. A page past the
// end yields an empty slice, never an error.
func Page[T any](items []T, p Pagination) []T {
	if p.ItemsPerPage <= 0 {
		return []T{}
	}
	start := (p.CurrentPage - 1) * p.ItemsPerPage
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.ItemsPerPage, len(items))
	return items[start:end]
}

// windowSize is the maximum number of consecutive page buttons rendered
// around the current page.
const windowSize = 5

// Window describes what the pagination widget renders: a run of
// consecutive page numbers, and first/last anchor buttons (with
// ellipsis placeholders) when those pages fall outside the run.
type Window struct {
	Pages []int
	// ShowFirst renders a "1" anchor before Pages; FirstEllipsis puts
	// "..." between that anchor and the run.
	ShowFirst     bool
	FirstEllipsis bool
	// ShowLast and LastEllipsis are the mirrored trailing anchors.
	ShowLast     bool
	LastEllipsis bool
}

// PageWindow computes the widget layout for a current page within
// totalPages. With five or fewer pages everything is rendered directly.
// Otherwise the run starts at max(1, currentPage-2) and is clipped at
// totalPages; anchors appear only when page 1 or totalPages is outside
// the run, so no page number is ever rendered twice.
func PageWindow(currentPage, totalPages int) Window {
	var w Window
	if totalPages <= windowSize {
		for i := 1; i <= totalPages; i++ {
			w.Pages = append(w.Pages, i)
		}
		return w
	}

	start := max(currentPage-2, 1)
	end := min(start+windowSize-1, totalPages)
	for i := start; i <= end; i++ {
		w.Pages = append(w.Pages, i)
	}

	if currentPage > 3 {
		w.ShowFirst = true
		w.FirstEllipsis = currentPage > 4
	}
	if currentPage < totalPages-2 {
		w.ShowLast = true
		w.LastEllipsis = currentPage < totalPages-3
	}
	return w
}
