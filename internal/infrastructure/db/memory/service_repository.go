// Package memory implements the backend's resource repositories as
// plain in-memory tables with auto-incremented numeric ids. The backend
// keeps no persistence; a restart starts over from the seed data.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

type ServiceRepository struct {
	mu       sync.RWMutex
	nextID   int
	services []domain.Service
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{nextID: 1}
}

func (r *ServiceRepository) List(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.services), nil
}

func (r *ServiceRepository) Get(_ context.Context, id int) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			clone := s
			return &clone, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *ServiceRepository) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := *s
	record.ID = r.nextID
	r.nextID++
	r.services = append(r.services, record)
	clone := record
	return &clone, nil
}

// Replace swaps the whole record; the path id wins over any id in the
// body.
func (r *ServiceRepository) Replace(_ context.Context, id int, s *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.services {
		if r.services[i].ID == id {
			record := *s
			record.ID = id
			r.services[i] = record
			clone := record
			return &clone, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *ServiceRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return domain.ErrServiceNotFound
}
