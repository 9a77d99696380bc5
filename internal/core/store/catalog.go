package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/listview"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// defaultItemsPerPage is the catalog grid size.
const defaultItemsPerPage = 6

// CatalogState is the services slice as seen by the view layer.
type CatalogState struct {
	Services   []domain.Service
	Current    *domain.Service
	Loading    bool
	Err        string
	Filters    listview.Filters
	Pagination listview.Pagination
}

// ServiceInput carries the editable fields of a service.
type ServiceInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	Featured        bool     `json:"featured"`
	Tags            []string `json:"tags"`
	Duration        string   `json:"duration"`
}

// CatalogStore owns the service list, the current-item slot, and the
// filter/pagination settings the catalog page renders from.
type CatalogStore struct {
	client ports.ResourceClient
	log    zerolog.Logger

	mu       sync.Mutex
	services []domain.Service
	current  *domain.Service
	loading  bool
	err      string
	filters  listview.Filters
	page     int
	perPage  int
}

func NewCatalogStore(client ports.ResourceClient, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		client:  client,
		log:     log,
		filters: listview.Filters{Category: domain.CategoryAll},
		page:    1,
		perPage: defaultItemsPerPage,
	}
}

// FetchServices replaces the entire local list with the server's. The
// list is the full result of the last successful fetch; between fetches
// the apply functions below patch it optimistically.
func (s *CatalogStore) FetchServices(ctx context.Context) error {
	s.begin()

	var services []domain.Service
	if err := s.client.Get(ctx, "/services", &services); err != nil {
		return s.reject(err, "failed to fetch services")
	}

	s.mu.Lock()
	s.loading = false
	s.services = services
	s.mu.Unlock()
	return nil
}

// FetchServiceByID populates the current-item slot. The list is left
// untouched.
func (s *CatalogStore) FetchServiceByID(ctx context.Context, id int) error {
	var svc domain.Service
	if err := s.client.Get(ctx, fmt.Sprintf("/services/%d", id), &svc); err != nil {
		return s.fail(err, "failed to fetch service")
	}

	s.mu.Lock()
	s.current = &svc
	s.mu.Unlock()
	return nil
}

// CreateService posts the new record (stamping the creation time
// client-side, as the backend stores whatever it is sent) and appends
// the server's copy to the local list.
func (s *CatalogStore) CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	body := struct {
		ServiceInput
		CreatedAt time.Time `json:"createdAt"`
	}{ServiceInput: in, CreatedAt: time.Now().UTC()}

	var created domain.Service
	if err := s.client.Post(ctx, "/services", body, &created); err != nil {
		return nil, s.fail(err, "failed to create service")
	}

	s.applyCreated(created)
	s.log.Info().Int("service_id", created.ID).Msg("service created")
	return &created, nil
}

// UpdateService replaces the record server-side and patches the local
// list with the returned copy.
func (s *CatalogStore) UpdateService(ctx context.Context, id int, in ServiceInput) (*domain.Service, error) {
	var updated domain.Service
	if err := s.client.Put(ctx, fmt.Sprintf("/services/%d", id), in, &updated); err != nil {
		return nil, s.fail(err, "failed to update service")
	}

	s.applyUpdated(updated)
	return &updated, nil
}

// DeleteService deletes server-side, then drops the entry locally.
func (s *CatalogStore) DeleteService(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/services/%d", id)); err != nil {
		return s.fail(err, "failed to delete service")
	}

	s.applyDeleted(id)
	return nil
}

// applyCreated, applyUpdated and applyDeleted are the only mutation
// points for the local list. They patch from the server's returned
// record instead of re-fetching, so the list can drift from server
// truth until the next full fetch; a create resolving while a full
// fetch is in flight may land the new record twice, depending on
// completion order. Replace these to change the reconciliation policy
// without touching call sites.
func (s *CatalogStore) applyCreated(svc domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, svc)
}

func (s *CatalogStore) applyUpdated(svc domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == svc.ID {
			s.services[i] = svc
			return
		}
	}
	// id not in the local list: nothing to patch
}

func (s *CatalogStore) applyDeleted(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = slices.DeleteFunc(s.services, func(svc domain.Service) bool {
		return svc.ID == id
	})
}

// SetFilters replaces both filters and returns to the first page, so a
// narrowed result set can never leave the view pointing past its end.
func (s *CatalogStore) SetFilters(f listview.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
	s.page = 1
}

// SetCategory updates the category filter and resets the page.
func (s *CatalogStore) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Category = category
	s.page = 1
}

// SetSearch updates the search filter and resets the page.
func (s *CatalogStore) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = search
	s.page = 1
}

// SetPage moves within the current result set.
func (s *CatalogStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// ClearCurrent empties the current-item slot when navigating away.
func (s *CatalogStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// State returns a copy of the slice.
func (s *CatalogStore) State() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	var current *domain.Service
	if s.current != nil {
		clone := *s.current
		current = &clone
	}
	return CatalogState{
		Services:   slices.Clone(s.services),
		Current:    current,
		Loading:    s.loading,
		Err:        s.err,
		Filters:    s.filters,
		Pagination: listview.Pagination{CurrentPage: s.page, ItemsPerPage: s.perPage},
	}
}

// PageView derives the visible page and the total page count from a
// snapshot of (list, filters, pagination). Nothing is cached; the
// derivation is repeated from scratch on every call.
func (s *CatalogStore) PageView() ([]domain.Service, int) {
	st := s.State()
	filtered := listview.FilterServices(st.Services, st.Filters)
	page := listview.Page(filtered, st.Pagination)
	return page, listview.TotalPages(len(filtered), st.Pagination.ItemsPerPage)
}

// Categories lists the distinct categories present in the data, in
// first-seen order, prefixed with the "all" pseudo-category. Feeds the
// filter dropdown.
func (s *CatalogStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{domain.CategoryAll}
	for _, svc := range s.services {
		if !slices.Contains(out, svc.Category) {
			out = append(out, svc.Category)
		}
	}
	return out
}

func (s *CatalogStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *CatalogStore) reject(err error, op string) error {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}

// fail records a failure for operations that never toggled the loading
// flag (by-id fetches and mutations; only the full fetch is "loading").
func (s *CatalogStore) fail(err error, op string) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}
