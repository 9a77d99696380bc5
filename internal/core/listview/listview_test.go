package listview

import (
	"slices"
	"testing"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

func sampleServices() []domain.Service {
	return []domain.Service{
		{ID: 1, Title: "Web Development", Description: "Modern web apps", Category: "development", Tags: []string{"react", "go"}},
		{ID: 2, Title: "Brand Identity", Description: "Logo and style guide", Category: "design", Tags: []string{"branding"}},
		{ID: 3, Title: "SEO Audit", Description: "Search ranking review", Category: "marketing", Tags: []string{"seo", "web"}},
	}
}

func TestMatchesService(t *testing.T) {
	svc := sampleServices()[0]

	cases := []struct {
		name string
		f    Filters
		want bool
	}{
		{"all category, empty search", Filters{Category: domain.CategoryAll}, true},
		{"matching category", Filters{Category: "development"}, true},
		{"other category", Filters{Category: "design"}, false},
		{"title substring", Filters{Category: domain.CategoryAll, Search: "web"}, true},
		{"title case-insensitive", Filters{Category: domain.CategoryAll, Search: "WEB DEV"}, true},
		{"description substring", Filters{Category: domain.CategoryAll, Search: "modern"}, true},
		{"tag substring", Filters{Category: domain.CategoryAll, Search: "react"}, true},
		{"no match", Filters{Category: domain.CategoryAll, Search: "blockchain"}, false},
		{"category and search must both pass", Filters{Category: "design", Search: "web"}, false},
	}
	for _, tc := range cases {
		if got := MatchesService(svc, tc.f); got != tc.want {
			t.Errorf("%s: MatchesService = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterServices_PreservesOrder(t *testing.T) {
	got := FilterServices(sampleServices(), Filters{Category: domain.CategoryAll, Search: "web"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected services 1 and 3 in order, got %+v", got)
	}
}

func TestMatchesPost(t *testing.T) {
	post := domain.BlogPost{Title: "Go for the Frontend Team", Excerpt: "A tour of the backend", Tags: []string{"go", "backend"}}

	cases := []struct {
		name        string
		search, tag string
		want        bool
	}{
		{"empty filter", "", "", true},
		{"title substring", "frontend", "", true},
		{"excerpt substring", "TOUR", "", true},
		{"exact tag", "", "go", true},
		{"tag is exact, not substring", "", "g", false},
		{"search and tag both required", "frontend", "design", false},
		{"no match", "kubernetes", "", false},
	}
	for _, tc := range cases {
		if got := MatchesPost(post, tc.search, tc.tag); got != tc.want {
			t.Errorf("%s: MatchesPost = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, perPage, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.count, tc.perPage); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.perPage, got, tc.want)
		}
	}
}

func TestPage_Slicing(t *testing.T) {
	items := []int{10, 20, 30, 40, 50, 60, 70}

	if got := Page(items, Pagination{CurrentPage: 1, ItemsPerPage: 3}); !slices.Equal(got, []int{10, 20, 30}) {
		t.Fatalf("page 1: got %v", got)
	}
	if got := Page(items, Pagination{CurrentPage: 3, ItemsPerPage: 3}); !slices.Equal(got, []int{70}) {
		t.Fatalf("last partial page: got %v", got)
	}
	if got := Page(items, Pagination{CurrentPage: 4, ItemsPerPage: 3}); len(got) != 0 {
		t.Fatalf("past the end must be empty, got %v", got)
	}
	if got := Page(items, Pagination{CurrentPage: 1, ItemsPerPage: 0}); len(got) != 0 {
		t.Fatalf("zero page size must be empty, got %v", got)
	}
}

// Concatenating every page reproduces the input exactly once.
func TestPage_ConcatReconstructsList(t *testing.T) {
	items := make([]int, 17)
	for i := range items {
		items[i] = i
	}
	p := Pagination{ItemsPerPage: 4}

	var rebuilt []int
	for page := 1; page <= TotalPages(len(items), p.ItemsPerPage); page++ {
		p.CurrentPage = page
		rebuilt = append(rebuilt, Page(items, p)...)
	}
	if !slices.Equal(rebuilt, items) {
		t.Fatalf("pages do not reconstruct the list: %v", rebuilt)
	}
}

func TestPageWindow_FewPages(t *testing.T) {
	w := PageWindow(2, 4)
	if !slices.Equal(w.Pages, []int{1, 2, 3, 4}) {
		t.Fatalf("expected all pages rendered, got %v", w.Pages)
	}
	if w.ShowFirst || w.FirstEllipsis || w.ShowLast || w.LastEllipsis {
		t.Fatalf("no anchors below the window size: %+v", w)
	}
}

func TestPageWindow_MiddleOfLongList(t *testing.T) {
	w := PageWindow(7, 10)
	if !slices.Equal(w.Pages, []int{5, 6, 7, 8, 9}) {
		t.Fatalf("unexpected run: %v", w.Pages)
	}
	if !w.ShowFirst || !w.FirstEllipsis {
		t.Fatalf("expected first anchor with ellipsis: %+v", w)
	}
	if !w.ShowLast || w.LastEllipsis {
		t.Fatalf("page 10 is adjacent to the run, no trailing ellipsis: %+v", w)
	}
}

func TestPageWindow_Edges(t *testing.T) {
	w := PageWindow(1, 10)
	if !slices.Equal(w.Pages, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected run at page 1: %v", w.Pages)
	}
	if w.ShowFirst || w.FirstEllipsis {
		t.Fatalf("page 1 in the run needs no anchor: %+v", w)
	}
	if !w.ShowLast || !w.LastEllipsis {
		t.Fatalf("expected last anchor with ellipsis: %+v", w)
	}

	w = PageWindow(10, 10)
	if !slices.Equal(w.Pages, []int{8, 9, 10}) {
		t.Fatalf("unexpected run at the last page: %v", w.Pages)
	}
	if !w.ShowFirst || !w.FirstEllipsis {
		t.Fatalf("expected first anchor with ellipsis: %+v", w)
	}
	if w.ShowLast || w.LastEllipsis {
		t.Fatalf("last page in the run needs no anchor: %+v", w)
	}
}

func TestPageWindow_EllipsisBoundaries(t *testing.T) {
	// currentPage 4 shows the first anchor without an ellipsis; 5 adds it.
	w := PageWindow(4, 10)
	if !w.ShowFirst || w.FirstEllipsis {
		t.Fatalf("page 4: anchor without ellipsis expected, got %+v", w)
	}
	w = PageWindow(5, 10)
	if !w.ShowFirst || !w.FirstEllipsis {
		t.Fatalf("page 5: anchor with ellipsis expected, got %+v", w)
	}

	// Mirrored at the tail: 7 shows the last anchor without an ellipsis;
	// 6 adds it.
	w = PageWindow(7, 10)
	if !w.ShowLast || w.LastEllipsis {
		t.Fatalf("page 7: anchor without ellipsis expected, got %+v", w)
	}
	w = PageWindow(6, 10)
	if !w.ShowLast || !w.LastEllipsis {
		t.Fatalf("page 6: anchor with ellipsis expected, got %+v", w)
	}
}
