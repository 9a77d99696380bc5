package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// ContentState is the blog slice as seen by the view layer. Unlike the
// catalog, the blog keeps no filter or pagination state here; the page
// filters its copy ad hoc.
type ContentState struct {
	Posts   []domain.BlogPost
	Current *domain.BlogPost
	Loading bool
	Err     string
}

// PostInput carries the editable fields of a blog post.
type PostInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	Author   string   `json:"author"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// ContentStore owns the blog post list and its current-item slot.
type ContentStore struct {
	client ports.ResourceClient
	log    zerolog.Logger

	mu      sync.Mutex
	posts   []domain.BlogPost
	current *domain.BlogPost
	loading bool
	err     string
}

func NewContentStore(client ports.ResourceClient, log zerolog.Logger) *ContentStore {
	return &ContentStore{client: client, log: log}
}

// FetchPosts replaces the entire local list with the server's.
func (s *ContentStore) FetchPosts(ctx context.Context) error {
	s.begin()

	var posts []domain.BlogPost
	if err := s.client.Get(ctx, "/posts", &posts); err != nil {
		return s.reject(err, "failed to fetch posts")
	}

	s.mu.Lock()
	s.loading = false
	s.posts = posts
	s.mu.Unlock()
	return nil
}

// FetchPostByID populates the current-item slot; the list is untouched.
func (s *ContentStore) FetchPostByID(ctx context.Context, id int) error {
	var post domain.BlogPost
	if err := s.client.Get(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return s.fail(err, "failed to fetch post")
	}

	s.mu.Lock()
	s.current = &post
	s.mu.Unlock()
	return nil
}

// CreatePost posts the new record with a client-side publication stamp
// and appends the server's copy to the local list.
func (s *ContentStore) CreatePost(ctx context.Context, in PostInput) (*domain.BlogPost, error) {
	body := struct {
		PostInput
		PublishedAt time.Time `json:"publishedAt"`
	}{PostInput: in, PublishedAt: time.Now().UTC()}

	var created domain.BlogPost
	if err := s.client.Post(ctx, "/posts", body, &created); err != nil {
		return nil, s.fail(err, "failed to create post")
	}

	s.applyCreated(created)
	s.log.Info().Int("post_id", created.ID).Msg("post created")
	return &created, nil
}

// UpdatePost replaces the record server-side and patches the local list
// with the returned copy; unknown ids are a local no-op.
func (s *ContentStore) UpdatePost(ctx context.Context, id int, in PostInput) (*domain.BlogPost, error) {
	var updated domain.BlogPost
	if err := s.client.Put(ctx, fmt.Sprintf("/posts/%d", id), in, &updated); err != nil {
		return nil, s.fail(err, "failed to update post")
	}

	s.applyUpdated(updated)
	return &updated, nil
}

// DeletePost deletes server-side, then drops the entry locally.
func (s *ContentStore) DeletePost(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/posts/%d", id)); err != nil {
		return s.fail(err, "failed to delete post")
	}

	s.applyDeleted(id)
	return nil
}

// Optimistic patch points, same policy (and same caveats) as the
// catalog store's.
func (s *ContentStore) applyCreated(post domain.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
}

func (s *ContentStore) applyUpdated(post domain.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return
		}
	}
}

func (s *ContentStore) applyDeleted(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = slices.DeleteFunc(s.posts, func(p domain.BlogPost) bool {
		return p.ID == id
	})
}

// ClearCurrent empties the current-item slot when navigating away.
func (s *ContentStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// State returns a copy of the slice.
func (s *ContentStore) State() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	var current *domain.BlogPost
	if s.current != nil {
		clone := *s.current
		current = &clone
	}
	return ContentState{
		Posts:   slices.Clone(s.posts),
		Current: current,
		Loading: s.loading,
		Err:     s.err,
	}
}

func (s *ContentStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *ContentStore) reject(err error, op string) error {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}

func (s *ContentStore) fail(err error, op string) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}
