package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// AdminState is the back-office slice as seen by the view layer.
type AdminState struct {
	Requests []domain.ServiceRequest
	Users    []domain.User
	Stats    domain.Stats
	Loading  bool
	Err      string
}

// AdminStore owns the service-request list, the user list, and the
// derived dashboard statistics.
type AdminStore struct {
	client ports.ResourceClient
	log    zerolog.Logger

	mu       sync.Mutex
	requests []domain.ServiceRequest
	users    []domain.User
	stats    domain.Stats
	loading  bool
	err      string
}

func NewAdminStore(client ports.ResourceClient, log zerolog.Logger) *AdminStore {
	return &AdminStore{client: client, log: log}
}

// FetchRequests replaces the local request list wholesale.
func (s *AdminStore) FetchRequests(ctx context.Context) error {
	s.begin()

	var requests []domain.ServiceRequest
	if err := s.client.Get(ctx, "/requests", &requests); err != nil {
		return s.reject(err, "failed to fetch requests")
	}

	s.mu.Lock()
	s.loading = false
	s.requests = requests
	s.mu.Unlock()
	return nil
}

// FetchUsers replaces the local user list wholesale.
func (s *AdminStore) FetchUsers(ctx context.Context) error {
	var users []domain.User
	if err := s.client.Get(ctx, "/users", &users); err != nil {
		return s.fail(err, "failed to fetch users")
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// UpdateRequestStatus patches only the status field and splices the
// server-returned record into the local list by id. All other request
// fields are immutable after creation.
func (s *AdminStore) UpdateRequestStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	body := map[string]domain.RequestStatus{"status": status}
	var updated domain.ServiceRequest
	if err := s.client.Patch(ctx, fmt.Sprintf("/requests/%d", id), body, &updated); err != nil {
		return nil, s.fail(err, "failed to update request status")
	}

	s.mu.Lock()
	for i := range s.requests {
		if s.requests[i].ID == updated.ID {
			s.requests[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.log.Info().Int("request_id", id).Str("status", string(status)).Msg("request status updated")
	return &updated, nil
}

// FetchStats fans out four concurrent reads (services, posts, users,
// requests) and recomputes the counts from the fresh responses. The
// result is never cached across operations, and a failure of any one
// read fails the whole operation with the stored stats untouched.
func (s *AdminStore) FetchStats(ctx context.Context) error {
	var (
		services []domain.Service
		posts    []domain.BlogPost
		users    []domain.User
		requests []domain.ServiceRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.client.Get(gctx, "/services", &services) })
	g.Go(func() error { return s.client.Get(gctx, "/posts", &posts) })
	g.Go(func() error { return s.client.Get(gctx, "/users", &users) })
	g.Go(func() error { return s.client.Get(gctx, "/requests", &requests) })
	if err := g.Wait(); err != nil {
		return s.fail(err, "failed to fetch stats")
	}

	pending := 0
	for _, r := range requests {
		if r.Status == domain.StatusPending {
			pending++
		}
	}

	s.mu.Lock()
	s.stats = domain.Stats{
		TotalServices:   len(services),
		TotalPosts:      len(posts),
		TotalUsers:      len(users),
		PendingRequests: pending,
	}
	s.mu.Unlock()
	return nil
}

// State returns a copy of the slice.
func (s *AdminStore) State() AdminState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AdminState{
		Requests: slices.Clone(s.requests),
		Users:    slices.Clone(s.users),
		Stats:    s.stats,
		Loading:  s.loading,
		Err:      s.err,
	}
}

func (s *AdminStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AdminStore) reject(err error, op string) error {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}

func (s *AdminStore) fail(err error, op string) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}
