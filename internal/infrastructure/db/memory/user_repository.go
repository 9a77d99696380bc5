package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int
	users  []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users), nil
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := *u
	record.ID = r.nextID
	r.nextID++
	r.users = append(r.users, record)
	clone := record
	return &clone, nil
}

// UpdateProfile patches name and email, the only client-writable fields
// after creation. Role in particular never changes.
func (r *UserRepository) UpdateProfile(_ context.Context, id int, name, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = name
			r.users[i].Email = email
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
