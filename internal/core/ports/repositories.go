package ports

import (
	"context"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

// The repositories back the mock resource API. They behave like a
// generic REST resource store keyed by numeric ids: whole records in,
// whole records out, no transactions, no server-side validation.

// ServiceRepository stores catalog services.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id int) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Replace(ctx context.Context, id int, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int) error
}

// PostRepository stores blog posts.
type PostRepository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id int) (*domain.BlogPost, error)
	Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	Replace(ctx context.Context, id int, p *domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int) error
}

// RequestRepository stores contact requests. Status is the only field
// mutable after creation.
type RequestRepository interface {
	List(ctx context.Context) ([]domain.ServiceRequest, error)
	Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error)
}

// UserRepository stores accounts. Only name and email are patchable.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error)
}
