package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

type PostRepository struct {
	mu     sync.RWMutex
	nextID int
	posts  []domain.BlogPost
}

func NewPostRepository() *PostRepository {
	return &PostRepository{nextID: 1}
}

func (r *PostRepository) List(_ context.Context) ([]domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.posts), nil
}

func (r *PostRepository) Get(_ context.Context, id int) (*domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *PostRepository) Create(_ context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := *p
	record.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, record)
	clone := record
	return &clone, nil
}

func (r *PostRepository) Replace(_ context.Context, id int, p *domain.BlogPost) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			record := *p
			record.ID = id
			r.posts[i] = record
			clone := record
			return &clone, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *PostRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}
